package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"embed-service/internal/cache"
	"embed-service/internal/model"
)

// Embedding computes embeddings for text. It short-circuits empty input
// to the zero-vector sentinel and consults the cache before the model.
type Embedding struct {
	model model.Model
	cache cache.Cache
	ttl   time.Duration
	log   *slog.Logger
}

// NewEmbedding wires an embedding service over the given model and cache.
func NewEmbedding(m model.Model, c cache.Cache, ttl time.Duration, log *slog.Logger) *Embedding {
	return &Embedding{
		model: m,
		cache: c,
		ttl:   ttl,
		log:   log,
	}
}

// Embed returns the vector for text. Empty input yields a vector of
// Dimension() zeros without touching the model or the cache.
func (s *Embedding) Embed(ctx context.Context, text string) (model.Vector, error) {
	if text == "" {
		return model.Zero(s.model.Dimension()), nil
	}

	key := cache.Key(s.model.Name(), text)
	if vec, err := s.cache.GetVector(ctx, key); err != nil {
		s.log.Warn("cache lookup failed", "err", err)
	} else if vec != nil {
		return vec, nil
	}

	vec, err := s.model.Embed(ctx, text)
	if err != nil {
		return nil, err
	}
	if len(vec) != s.model.Dimension() {
		return nil, fmt.Errorf("model returned %d dimensions, expected %d", len(vec), s.model.Dimension())
	}

	// Cache write failures must not fail the request
	if err := s.cache.SetVector(ctx, key, vec, s.ttl); err != nil {
		s.log.Warn("failed to cache vector", "err", err)
	}

	return vec, nil
}

// ModelName returns the name of the loaded model.
func (s *Embedding) ModelName() string {
	return s.model.Name()
}
