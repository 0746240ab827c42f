package i18n

import (
	"encoding/json"
	"io/fs"
	"sync"
	"testing"
	"testing/fstest"
)

// testLocales monta um FS em memória com três idiomas
func testLocales() fstest.MapFS {
	return fstest.MapFS{
		"en.json": {Data: []byte(`{
  "welcome": "Welcome, {{.Name}}!",
  "deal_created": "Deal created successfully",
  "error.deal_not_found": "Deal not found"
}`)},
		"pt-BR.json": {Data: []byte(`{
  "welcome": "Bem-vindo, {{.Name}}!",
  "deal_created": "Deal criado com sucesso",
  "error.deal_not_found": "Deal não encontrado"
}`)},
		"es.json": {Data: []byte(`{
  "welcome": "¡Bienvenido, {{.Name}}!",
  "deal_created": "Deal creado exitosamente"
}`)},
	}
}

func TestNewService(t *testing.T) {
	t.Run("carrega traduções com sucesso", func(t *testing.T) {
		service, err := NewService(testLocales(), "en")
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}

		if service.GetDefaultLanguage() != "en" {
			t.Errorf("esperava idioma padrão 'en', obteve '%s'", service.GetDefaultLanguage())
		}

		langs := service.GetSupportedLanguages()
		if len(langs) != 3 || langs[0] != "en" || langs[1] != "es" || langs[2] != "pt-BR" {
			t.Errorf("esperava [en es pt-BR], obteve %v", langs)
		}
	})

	t.Run("erro quando não há arquivos", func(t *testing.T) {
		_, err := NewService(fstest.MapFS{}, "en")
		if err == nil {
			t.Error("esperava erro, obteve sucesso")
		}
	})

	t.Run("erro quando idioma padrão não existe", func(t *testing.T) {
		_, err := NewService(testLocales(), "fr")
		if err == nil {
			t.Error("esperava erro para idioma padrão inexistente, obteve sucesso")
		}
	})

	t.Run("erro com JSON inválido", func(t *testing.T) {
		_, err := NewService(fstest.MapFS{"en.json": {Data: []byte(`{`)}}, "en")
		if err == nil {
			t.Error("esperava erro de parse, obteve sucesso")
		}
	})

	t.Run("erro com template inválido", func(t *testing.T) {
		_, err := NewService(fstest.MapFS{"en.json": {Data: []byte(`{"x": "{{.Name"}`)}}, "en")
		if err == nil {
			t.Error("esperava erro de template, obteve sucesso")
		}
	})
}

func TestService_T(t *testing.T) {
	service, err := NewService(testLocales(), "en")
	if err != nil {
		t.Fatalf("falha ao inicializar serviço: %v", err)
	}

	tests := []struct {
		name     string
		lang     string
		key      string
		params   []map[string]interface{}
		expected string
	}{
		{"mensagem simples em inglês", "en", "deal_created", nil, "Deal created successfully"},
		{"mensagem simples em português", "pt-BR", "deal_created", nil, "Deal criado com sucesso"},
		{"mensagem com parâmetros", "en", "welcome", []map[string]interface{}{{"Name": "John"}}, "Welcome, John!"},
		{"parâmetros em português", "pt-BR", "welcome", []map[string]interface{}{{"Name": "João"}}, "Bem-vindo, João!"},
		{"fallback para idioma desconhecido", "fr", "deal_created", nil, "Deal created successfully"},
		{"fallback para chave ausente no idioma", "es", "error.deal_not_found", nil, "Deal not found"},
		{"retorna a chave quando não há tradução", "en", "chave.inexistente", nil, "chave.inexistente"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := service.T(tt.lang, tt.key, tt.params...)
			if result != tt.expected {
				t.Errorf("esperava '%s', obteve '%s'", tt.expected, result)
			}
		})
	}
}

func TestService_Match(t *testing.T) {
	service, err := NewService(testLocales(), "en")
	if err != nil {
		t.Fatalf("falha ao inicializar serviço: %v", err)
	}

	tests := []struct {
		name       string
		acceptLang string
		expected   string
	}{
		{"idioma único suportado", "pt-BR", "pt-BR"},
		{"primeiro suportado vence", "es,pt-BR;q=0.9,en;q=0.8", "es"},
		{"pula idioma não suportado", "fr,pt-BR;q=0.9", "pt-BR"},
		{"usa idioma base da região", "es-AR,fr", "es"},
		{"nenhum suportado", "fr,de;q=0.9", ""},
		{"header vazio", "", ""},
		{"base sem região não casa com pt-BR", "pt", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := service.Match(tt.acceptLang); got != tt.expected {
				t.Errorf("esperava '%s', obteve '%s'", tt.expected, got)
			}
		})
	}
}

func TestEmbeddedLocales(t *testing.T) {
	service, err := NewEmbeddedService("en")
	if err != nil {
		t.Fatalf("falha ao carregar locales embutidos: %v", err)
	}

	t.Run("todos os idiomas têm as mesmas chaves", func(t *testing.T) {
		keys := map[string]map[string]string{}
		for _, lang := range []string{"en", "pt-BR", "es"} {
			data, err := fs.ReadFile(embeddedLocales, "locales/"+lang+".json")
			if err != nil {
				t.Fatalf("falha ao ler %s: %v", lang, err)
			}
			var messages map[string]string
			if err := json.Unmarshal(data, &messages); err != nil {
				t.Fatalf("falha ao decodificar %s: %v", lang, err)
			}
			keys[lang] = messages
		}

		for key := range keys["en"] {
			for _, lang := range []string{"pt-BR", "es"} {
				if _, ok := keys[lang][key]; !ok {
					t.Errorf("chave '%s' ausente em %s", key, lang)
				}
			}
		}
	})

	t.Run("interpola lista de valores permitidos", func(t *testing.T) {
		got := service.T("pt-BR", "validation.platform", map[string]interface{}{"Allowed": "instagram, youtube"})
		if got != "Deve ser um de: instagram, youtube" {
			t.Errorf("tradução inesperada: '%s'", got)
		}
	})
}

func TestService_ThreadSafety(t *testing.T) {
	service, err := NewService(testLocales(), "en")
	if err != nil {
		t.Fatalf("falha ao inicializar serviço: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(3)

		go func() {
			defer wg.Done()
			_ = service.T("en", "welcome", map[string]interface{}{"Name": "Test"})
		}()

		go func() {
			defer wg.Done()
			_ = service.T("pt-BR", "deal_created")
		}()

		go func() {
			defer wg.Done()
			_ = service.Match("es-MX,en;q=0.5")
		}()
	}

	wg.Wait()
}
