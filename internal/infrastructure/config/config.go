package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config contém todas as configurações da aplicação
type Config struct {
	Env      string
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Storage  StorageConfig
	Logging  LoggingConfig
	CORS     CORSConfig
}

type ServerConfig struct {
	Port    string
	Host    string
	BaseURL string // URL base da API para construir URIs RFC 7807
}

type DatabaseConfig struct {
	URL         string // DATABASE_URL tem prioridade sobre os campos individuais
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	MaxConns    int
	MinConns    int
	MaxIdleTime int
	AutoMigrate bool
}

type JWTConfig struct {
	Secret string
}

// StorageConfig aponta para um object storage compatível com S3 (Supabase Storage, MinIO, AWS)
type StorageConfig struct {
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	Bucket    string
	PublicURL string // prefixo das URLs públicas, ex: https://<proj>.supabase.co/storage/v1/object/public
}

type LoggingConfig struct {
	Level  string
	Format string
}

type CORSConfig struct {
	FrontendURL string
}

// AllowedOrigins retorna a URL do frontend e o dev server local, sem duplicatas
func (c CORSConfig) AllowedOrigins() []string {
	origins := []string{}
	for _, o := range strings.Split(c.FrontendURL, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	for _, o := range origins {
		if o == defaultFrontendURL {
			return origins
		}
	}
	return append(origins, defaultFrontendURL)
}

const defaultFrontendURL = "http://localhost:3000"

// Load carrega as configurações do ambiente, com .env opcional
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	config := &Config{
		Env: v.GetString("ENV"),
		Server: ServerConfig{
			Port:    v.GetString("PORT"),
			Host:    v.GetString("HOST"),
			BaseURL: v.GetString("API_BASE_URL"),
		},
		Database: DatabaseConfig{
			URL:         v.GetString("DATABASE_URL"),
			Host:        v.GetString("DB_HOST"),
			Port:        v.GetInt("DB_PORT"),
			User:        v.GetString("DB_USER"),
			Password:    v.GetString("DB_PASS"),
			DBName:      v.GetString("DB_NAME"),
			SSLMode:     v.GetString("DB_SSL_MODE"),
			MaxConns:    v.GetInt("DB_MAX_CONNS"),
			MinConns:    v.GetInt("DB_MIN_CONNS"),
			MaxIdleTime: v.GetInt("DB_MAX_IDLE_TIME"),
			AutoMigrate: v.GetBool("DB_AUTO_MIGRATE"),
		},
		JWT: JWTConfig{
			Secret: v.GetString("JWT_SECRET"),
		},
		Storage: StorageConfig{
			Endpoint:  v.GetString("STORAGE_ENDPOINT"),
			Region:    v.GetString("STORAGE_REGION"),
			AccessKey: v.GetString("STORAGE_ACCESS_KEY"),
			SecretKey: v.GetString("STORAGE_SECRET_KEY"),
			Bucket:    v.GetString("STORAGE_BUCKET"),
			PublicURL: strings.TrimRight(v.GetString("STORAGE_PUBLIC_URL"), "/"),
		},
		Logging: LoggingConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
		CORS: CORSConfig{
			FrontendURL: v.GetString("FRONTEND_URL"),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", "development")
	v.SetDefault("HOST", "0.0.0.0")
	v.SetDefault("PORT", "8000")
	v.SetDefault("API_BASE_URL", "http://localhost:8000")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_MIN_CONNS", 2)
	v.SetDefault("DB_MAX_IDLE_TIME", 300)
	v.SetDefault("DB_AUTO_MIGRATE", true)
	v.SetDefault("STORAGE_REGION", "us-east-1")
	v.SetDefault("STORAGE_BUCKET", "contracts")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("FRONTEND_URL", defaultFrontendURL)
}

// Validate verifica as chaves obrigatórias
func (c *Config) Validate() error {
	var missing []string
	if c.Database.DSN() == "" {
		missing = append(missing, "DATABASE_URL")
	}
	if c.JWT.Secret == "" {
		missing = append(missing, "JWT_SECRET")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}
	return nil
}

// IsProduction indica ambiente de produção
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// DSN retorna a connection string do PostgreSQL
func (d *DatabaseConfig) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	if d.Host == "" {
		return ""
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}
