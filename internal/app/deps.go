package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/joho/godotenv"

	"embed-service/internal/cache"
	"embed-service/internal/config"
	"embed-service/internal/logger"
	"embed-service/internal/model"
	"embed-service/internal/service"
)

// Deps bundles common runtime dependencies for the service.
type Deps struct {
	Config    config.Config
	Log       *slog.Logger
	Model     model.Model
	Cache     cache.Cache
	Embedding *service.Embedding
}

// Build loads env, config, and shared components. The model handle is
// created once here and shared read-only by all request handlers.
func Build() (Deps, error) {
	// .env is optional; real env vars take precedence either way
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.New(cfg.LogLevel)

	m, err := buildModel(cfg, log)
	if err != nil {
		return Deps{}, fmt.Errorf("failed to initialize model: %w", err)
	}
	c, err := buildCache(cfg, log)
	if err != nil {
		return Deps{}, fmt.Errorf("failed to initialize cache: %w", err)
	}

	ttl := time.Duration(cfg.CacheTTL) * time.Second
	return Deps{
		Config:    cfg,
		Log:       log,
		Model:     m,
		Cache:     c,
		Embedding: service.NewEmbedding(m, c, ttl, log),
	}, nil
}

func buildModel(cfg config.Config, log *slog.Logger) (model.Model, error) {
	switch cfg.ModelProvider {
	case "ollama":
		m, err := model.NewOllama(cfg.OllamaURL, cfg.ModelName, cfg.ModelDimension)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize model runtime client: %w", err)
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		log.Info("waiting for model runtime", "url", cfg.OllamaURL, "model", cfg.ModelName)
		if err := m.WaitReady(ctx, 6, time.Second); err != nil {
			return nil, err
		}
		log.Info("model runtime ready", "model", cfg.ModelName, "dimension", cfg.ModelDimension)
		return m, nil
	case "openai":
		if cfg.OpenAIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required when MODEL_PROVIDER=openai")
		}
		m, err := model.NewOpenAI(cfg.OpenAIKey, cfg.ModelName, cfg.ModelDimension)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize OpenAI model: %w", err)
		}
		log.Info("using OpenAI embeddings", "model", cfg.ModelName)
		return m, nil
	default:
		return nil, fmt.Errorf("invalid MODEL_PROVIDER: %s (valid options: ollama, openai)", cfg.ModelProvider)
	}
}

func buildCache(cfg config.Config, log *slog.Logger) (cache.Cache, error) {
	switch cfg.CacheProvider {
	case "redis":
		if cfg.RedisAddr == "" {
			return nil, fmt.Errorf("REDIS_ADDR is required when CACHE_PROVIDER=redis")
		}
		c, err := cache.NewRedisCache(cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		log.Info("using Redis vector cache", "addr", cfg.RedisAddr)
		return c, nil
	case "none":
		return cache.NewNoOpCache(), nil
	default:
		return nil, fmt.Errorf("invalid CACHE_PROVIDER: %s (valid options: redis, none)", cfg.CacheProvider)
	}
}
