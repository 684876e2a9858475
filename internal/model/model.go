package model

import "context"

// Vector is a fixed-length embedding, one float per model dimension.
type Vector []float32

// Model is a process-wide handle to a pretrained sentence-embedding model.
// Implementations are loaded once at startup, are read-only, and are safe
// for concurrent use.
type Model interface {
	// Embed encodes text into a vector of exactly Dimension() floats.
	Embed(ctx context.Context, text string) (Vector, error)

	// Name returns the identifying name of the loaded model.
	Name() string

	// Dimension returns the fixed length of every vector the model produces.
	Dimension() int
}

// Zero returns the all-zeros sentinel vector of the given dimension.
func Zero(dim int) Vector {
	return make(Vector, dim)
}
