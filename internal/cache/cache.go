package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"embed-service/internal/model"
)

// Cache provides embedding vector caching
type Cache interface {
	// GetVector retrieves a cached vector by key
	// Returns nil if not found
	GetVector(ctx context.Context, key string) (model.Vector, error)

	// SetVector stores a vector with TTL
	SetVector(ctx context.Context, key string, vec model.Vector, ttl time.Duration) error

	// Close closes the cache connection
	Close() error
}

// Key derives a cache key from the model name and input text. Embeddings
// are deterministic for fixed input, so the pair fully identifies a vector.
func Key(modelName, text string) string {
	h := sha256.New()
	h.Write([]byte(modelName))
	h.Write([]byte{0})
	h.Write([]byte(text))
	return hex.EncodeToString(h.Sum(nil))
}
