package model

import "testing"

func TestZero(t *testing.T) {
	vec := Zero(384)

	if len(vec) != 384 {
		t.Fatalf("expected 384 dimensions, got %d", len(vec))
	}
	for i, v := range vec {
		if v != 0 {
			t.Fatalf("expected zero at index %d, got %f", i, v)
		}
	}
}

func TestZeroEmptyDimension(t *testing.T) {
	vec := Zero(0)
	if len(vec) != 0 {
		t.Errorf("expected empty vector, got %d dimensions", len(vec))
	}
}
