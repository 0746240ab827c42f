package i18n

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"
	"text/template"
)

//go:embed locales/*.json
var embeddedLocales embed.FS

// Service gerencia traduções carregadas de arquivos <idioma>.json
type Service struct {
	mu              sync.RWMutex
	messages        map[string]map[string]string // [language][key]message
	templates       map[string]*template.Template
	defaultLanguage string
}

// NewEmbeddedService carrega os locales embutidos no binário
func NewEmbeddedService(defaultLang string) (*Service, error) {
	locales, err := fs.Sub(embeddedLocales, "locales")
	if err != nil {
		return nil, err
	}
	return NewService(locales, defaultLang)
}

// NewService carrega todos os *.json da raiz de fsys.
// defaultLang é o idioma de fallback e precisa existir.
func NewService(fsys fs.FS, defaultLang string) (*Service, error) {
	s := &Service{
		messages:        make(map[string]map[string]string),
		templates:       make(map[string]*template.Template),
		defaultLanguage: defaultLang,
	}

	files, err := fs.Glob(fsys, "*.json")
	if err != nil {
		return nil, fmt.Errorf("failed to find locale files: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no locale files found")
	}

	for _, file := range files {
		lang := strings.TrimSuffix(path.Base(file), ".json")

		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("failed to read locale file %s: %w", file, err)
		}

		var messages map[string]string
		if err := json.Unmarshal(data, &messages); err != nil {
			return nil, fmt.Errorf("failed to parse locale file %s: %w", file, err)
		}

		for key, msg := range messages {
			if !strings.Contains(msg, "{{") {
				continue
			}
			tmpl, err := template.New(key).Option("missingkey=zero").Parse(msg)
			if err != nil {
				return nil, fmt.Errorf("invalid template for %s in %s: %w", key, file, err)
			}
			s.templates[lang+"|"+key] = tmpl
		}

		s.messages[lang] = messages
	}

	if _, ok := s.messages[defaultLang]; !ok {
		return nil, fmt.Errorf("default language %s not found in locale files", defaultLang)
	}

	return s, nil
}

// T traduz key para lang, com fallback para o idioma padrão e depois para a própria chave.
// Parâmetros são interpolados como template Go ({{.Max}}, {{.Allowed}}).
func (s *Service) T(lang, key string, params ...map[string]interface{}) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	resolved := lang
	message, ok := s.lookup(lang, key)
	if !ok {
		resolved = s.defaultLanguage
		message, ok = s.lookup(s.defaultLanguage, key)
	}
	if !ok {
		return key
	}

	tmpl, isTemplate := s.templates[resolved+"|"+key]
	if !isTemplate || len(params) == 0 {
		return message
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, params[0]); err != nil {
		return message
	}
	return buf.String()
}

func (s *Service) lookup(lang, key string) (string, bool) {
	messages, ok := s.messages[lang]
	if !ok {
		return "", false
	}
	msg, ok := messages[key]
	return msg, ok
}

// Match escolhe o melhor idioma suportado para um header Accept-Language.
// Tenta cada entrada na ordem e, em seguida, a variação sem região. Retorna "" se nenhuma servir.
func (s *Service) Match(acceptLanguage string) string {
	for _, entry := range strings.Split(acceptLanguage, ",") {
		lang := strings.TrimSpace(entry)
		if idx := strings.Index(lang, ";"); idx != -1 {
			lang = strings.TrimSpace(lang[:idx])
		}
		if lang == "" {
			continue
		}
		if s.IsLanguageSupported(lang) {
			return lang
		}
		if idx := strings.Index(lang, "-"); idx != -1 && s.IsLanguageSupported(lang[:idx]) {
			return lang[:idx]
		}
	}
	return ""
}

// GetDefaultLanguage retorna o idioma padrão configurado
func (s *Service) GetDefaultLanguage() string {
	return s.defaultLanguage
}

// GetSupportedLanguages retorna os idiomas carregados em ordem alfabética
func (s *Service) GetSupportedLanguages() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	langs := make([]string, 0, len(s.messages))
	for lang := range s.messages {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// IsLanguageSupported verifica se um idioma foi carregado
func (s *Service) IsLanguageSupported(lang string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.messages[lang]
	return ok
}
