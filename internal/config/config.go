package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	DB     DBConfig
	LLM    LLMConfig
	Prompt PromptConfig
	CORS   CORSConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// LLMConfig holds completion provider settings. The API key is injected here
// once at startup; nothing else in the codebase reads the environment.
type LLMConfig struct {
	APIKey      string `mapstructure:"api_key"`
	Model       string `mapstructure:"model"`
	Endpoint    string `mapstructure:"endpoint"`
	TimeoutSecs int    `mapstructure:"timeout_secs"`
}

// PromptConfig holds per-flow document snippet budgets (characters of decoded
// text included per document).
type PromptConfig struct {
	AnalysisSnippetChars int `mapstructure:"analysis_snippet_chars"`
	ChatSnippetChars     int `mapstructure:"chat_snippet_chars"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Load reads configuration from environment variables with the HAQQMITRA_
// prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("HAQQMITRA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "120s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "haqqmitra")
	v.SetDefault("db.password", "haqqmitra_secret")
	v.SetDefault("db.name", "haqqmitra_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// LLM defaults
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.model", "sonar-pro")
	v.SetDefault("llm.endpoint", "https://api.perplexity.ai/chat/completions")
	v.SetDefault("llm.timeout_secs", 120)

	// Prompt defaults: analysis flows carry larger snippets than chat flows.
	v.SetDefault("prompt.analysis_snippet_chars", 500)
	v.SetDefault("prompt.chat_snippet_chars", 300)

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000,http://localhost:9002,http://127.0.0.1:9002")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                   "HAQQMITRA_SERVER_PORT",
		"server.read_timeout":           "HAQQMITRA_SERVER_READ_TIMEOUT",
		"server.write_timeout":          "HAQQMITRA_SERVER_WRITE_TIMEOUT",
		"server.environment":            "HAQQMITRA_SERVER_ENVIRONMENT",
		"db.host":                       "HAQQMITRA_DB_HOST",
		"db.port":                       "HAQQMITRA_DB_PORT",
		"db.user":                       "HAQQMITRA_DB_USER",
		"db.password":                   "HAQQMITRA_DB_PASSWORD",
		"db.name":                       "HAQQMITRA_DB_NAME",
		"db.sslmode":                    "HAQQMITRA_DB_SSLMODE",
		"db.max_open":                   "HAQQMITRA_DB_MAX_OPEN",
		"db.max_idle":                   "HAQQMITRA_DB_MAX_IDLE",
		"llm.api_key":                   "HAQQMITRA_LLM_API_KEY",
		"llm.model":                     "HAQQMITRA_LLM_MODEL",
		"llm.endpoint":                  "HAQQMITRA_LLM_ENDPOINT",
		"llm.timeout_secs":              "HAQQMITRA_LLM_TIMEOUT_SECS",
		"prompt.analysis_snippet_chars": "HAQQMITRA_PROMPT_ANALYSIS_SNIPPET_CHARS",
		"prompt.chat_snippet_chars":     "HAQQMITRA_PROMPT_CHAT_SNIPPET_CHARS",
		"cors.allowed_origins":          "HAQQMITRA_CORS_ALLOWED_ORIGINS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if HAQQMITRA_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("HAQQMITRA_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}

	// The frontend historically configured the key as PERPLEXITY_API_KEY;
	// honor it when the prefixed variable is not set.
	apiKey := v.GetString("llm.api_key")
	if apiKey == "" {
		apiKey = os.Getenv("PERPLEXITY_API_KEY")
	}
	cfg.LLM = LLMConfig{
		APIKey:      apiKey,
		Model:       v.GetString("llm.model"),
		Endpoint:    v.GetString("llm.endpoint"),
		TimeoutSecs: v.GetInt("llm.timeout_secs"),
	}

	cfg.Prompt = PromptConfig{
		AnalysisSnippetChars: v.GetInt("prompt.analysis_snippet_chars"),
		ChatSnippetChars:     v.GetInt("prompt.chat_snippet_chars"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	return cfg, nil
}
