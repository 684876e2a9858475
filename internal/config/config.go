package config

import (
	"log/slog"

	"github.com/caarlos0/env/v10"
)

// Config holds minimal runtime configuration. Extend as needed.
type Config struct {
	// Server
	Port     int    `env:"PORT" envDefault:"5000"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Model
	ModelProvider  string `env:"MODEL_PROVIDER" envDefault:"ollama"` // "ollama" (local runtime) or "openai" (hosted API)
	ModelName      string `env:"MODEL_NAME" envDefault:"paraphrase-multilingual-MiniLM-L12-v2"`
	ModelDimension int    `env:"MODEL_DIMENSION" envDefault:"384"`
	OllamaURL      string `env:"OLLAMA_URL" envDefault:"http://localhost:11434"`
	OpenAIKey      string `env:"OPENAI_API_KEY"`

	// Cache
	CacheProvider string `env:"CACHE_PROVIDER" envDefault:"none"` // "redis" or "none" (pass-through)
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	CacheTTL      int    `env:"CACHE_TTL" envDefault:"3600"` // seconds
}

// Load reads configuration from environment variables with defaults.
func Load() Config {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		slog.Warn("failed to parse env; using defaults where set", "err", err)
	}
	return cfg
}
