package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"embed-service/internal/app"
	"embed-service/internal/cache"
	"embed-service/internal/config"
	"embed-service/internal/model"
	"embed-service/internal/service"
)

func newTestDeps(m model.Model) app.Deps {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	c := cache.NewNoOpCache()
	return app.Deps{
		Config:    config.Config{Port: 5000},
		Log:       log,
		Model:     m,
		Cache:     c,
		Embedding: service.NewEmbedding(m, c, time.Hour, log),
	}
}

func TestEmbedHandler(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    string
		setup          func(*model.MockModel)
		wantStatusCode int
		checkResponse  func(*testing.T, *http.Response)
	}{
		{
			name:        "non-empty text returns model vector",
			requestBody: `{"text": "hello world"}`,
			setup: func(m *model.MockModel) {
				m.On("Name").Return("test-model")
				m.On("Dimension").Return(3)
				m.On("Embed", mock.Anything, "hello world").
					Return(model.Vector{0.1, 0.2, 0.3}, nil).Once()
			},
			wantStatusCode: http.StatusOK,
			checkResponse: func(t *testing.T, resp *http.Response) {
				var result struct {
					Vector []float32 `json:"vector"`
				}
				if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
					t.Fatalf("Failed to decode response: %v", err)
				}
				if len(result.Vector) != 3 {
					t.Errorf("Expected 3 dimensions, got %d", len(result.Vector))
				}
			},
		},
		{
			name:        "empty text returns zero vector without inference",
			requestBody: `{"text": ""}`,
			setup: func(m *model.MockModel) {
				m.On("Dimension").Return(384)
			},
			wantStatusCode: http.StatusOK,
			checkResponse: func(t *testing.T, resp *http.Response) {
				var result struct {
					Vector []float32 `json:"vector"`
				}
				if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
					t.Fatalf("Failed to decode response: %v", err)
				}
				if len(result.Vector) != 384 {
					t.Fatalf("Expected 384 dimensions, got %d", len(result.Vector))
				}
				for i, v := range result.Vector {
					if v != 0 {
						t.Fatalf("Expected zero at index %d, got %f", i, v)
					}
				}
			},
		},
		{
			name:        "inference failure returns 500 with detail",
			requestBody: `{"text": "hello"}`,
			setup: func(m *model.MockModel) {
				m.On("Name").Return("test-model")
				m.On("Embed", mock.Anything, "hello").
					Return(nil, errors.New("internal library fault")).Once()
			},
			wantStatusCode: http.StatusInternalServerError,
			checkResponse: func(t *testing.T, resp *http.Response) {
				var result map[string]string
				if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
					t.Fatalf("Failed to decode response: %v", err)
				}
				if result["detail"] != "internal library fault" {
					t.Errorf("Expected underlying failure description, got %q", result["detail"])
				}
			},
		},
		{
			name:           "missing text field returns 400",
			requestBody:    `{}`,
			setup:          func(m *model.MockModel) {},
			wantStatusCode: http.StatusBadRequest,
			checkResponse:  func(t *testing.T, resp *http.Response) {},
		},
		{
			name:           "invalid JSON payload returns 400",
			requestBody:    `{invalid json}`,
			setup:          func(m *model.MockModel) {},
			wantStatusCode: http.StatusBadRequest,
			checkResponse:  func(t *testing.T, resp *http.Response) {},
		},
		{
			name:           "wrong type for text returns 400",
			requestBody:    `{"text": 42}`,
			setup:          func(m *model.MockModel) {},
			wantStatusCode: http.StatusBadRequest,
			checkResponse:  func(t *testing.T, resp *http.Response) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := new(model.MockModel)
			tt.setup(m)

			deps := newTestDeps(m)
			handler := embedHandler(deps)

			req := httptest.NewRequest(http.MethodPost, "/embed", bytes.NewBufferString(tt.requestBody))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			resp := rec.Result()
			defer resp.Body.Close()

			if resp.StatusCode != tt.wantStatusCode {
				t.Errorf("Expected status %d, got %d", tt.wantStatusCode, resp.StatusCode)
			}
			tt.checkResponse(t, resp)
			m.AssertExpectations(t)
		})
	}
}

func TestEmbedHandlerDeterminism(t *testing.T) {
	vec := model.Vector{0.5, -0.25, 0.125}
	m := new(model.MockModel)
	m.On("Name").Return("test-model")
	m.On("Dimension").Return(3)
	m.On("Embed", mock.Anything, "hello world").Return(vec, nil).Twice()

	deps := newTestDeps(m)
	handler := embedHandler(deps)

	var got [2][]float32
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/embed", bytes.NewBufferString(`{"text": "hello world"}`))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", rec.Code)
		}
		var result struct {
			Vector []float32 `json:"vector"`
		}
		if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		got[i] = result.Vector
	}

	if len(got[0]) != len(got[1]) {
		t.Fatalf("Vectors differ in length: %d vs %d", len(got[0]), len(got[1]))
	}
	for i := range got[0] {
		if got[0][i] != got[1][i] {
			t.Fatalf("Vectors differ at index %d: %f vs %f", i, got[0][i], got[1][i])
		}
	}
}

func TestHealthHandler(t *testing.T) {
	m := new(model.MockModel)
	m.On("Name").Return("paraphrase-multilingual-MiniLM-L12-v2")

	deps := newTestDeps(m)
	handler := healthHandler(deps)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	var result map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if result["status"] != "ok" {
		t.Errorf("Expected status 'ok', got %q", result["status"])
	}
	if result["model"] != "paraphrase-multilingual-MiniLM-L12-v2" {
		t.Errorf("Expected model name, got %q", result["model"])
	}
}
