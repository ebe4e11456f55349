package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/scribe-cli/internal/core/ports/driven"
)

// newTestService points a Service at a stub completions endpoint.
func newTestService(t *testing.T, handler http.HandlerFunc) *Service {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	svc, err := NewService(Config{
		APIKey:  "test-key",
		BaseURL: server.URL,
	})
	require.NoError(t, err)
	return svc
}

// TestNewService_RequiresAPIKey tests constructor validation
func TestNewService_RequiresAPIKey(t *testing.T) {
	_, err := NewService(Config{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key")
}

// TestNewService_Defaults tests default configuration
func TestNewService_Defaults(t *testing.T) {
	svc, err := NewService(Config{APIKey: "k"})

	require.NoError(t, err)
	assert.Equal(t, DefaultModel, svc.ModelName())
	assert.Equal(t, DefaultBaseURL, svc.baseURL)
}

// TestService_Generate tests a successful completion round trip
func TestService_Generate(t *testing.T) {
	var gotBody chatCompletionRequest
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": "a rewrite"}},
			},
		})
	})

	result, err := svc.Generate(context.Background(), "Edit this: foo", driven.GenerateOptions{})

	require.NoError(t, err)
	assert.Equal(t, "a rewrite", result)
	require.Len(t, gotBody.Messages, 1)
	assert.Equal(t, "user", gotBody.Messages[0].Role)
	assert.Equal(t, "Edit this: foo", gotBody.Messages[0].Content)
}

// TestService_Generate_APIError tests backend error payloads
func TestService_Generate_APIError(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"message": "bad key", "type": "auth"},
		})
	})

	_, err := svc.Generate(context.Background(), "x", driven.GenerateOptions{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad key")
}

// TestService_Generate_NoChoices tests degenerate responses
func TestService_Generate_NoChoices(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	})

	_, err := svc.Generate(context.Background(), "x", driven.GenerateOptions{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no response choices")
}

// TestService_Generate_ContextCancelled tests request cancellation
func TestService_Generate_ContextCancelled(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Generate(ctx, "x", driven.GenerateOptions{})

	require.Error(t, err)
}
