package recipe_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"fridgesmart/pkg/recipe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func geminiStub(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	t.Setenv("GEMINI_API_URL", server.URL)
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("GEMINI_MODEL", "gemini-2.5-flash")
	return server
}

func TestGenerateTextParsesCandidates(t *testing.T) {
	geminiStub(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.URL.Path, "gemini-2.5-flash")
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Contains(t, body, "contents")
		assert.Contains(t, body, "generationConfig")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"candidates": [{"content": {"parts": [{"text": "[{\"name\": \"Test\"}]"}]}}],
			"usageMetadata": {"totalTokenCount": 321}
		}`))
	})

	gateway := recipe.NewGeminiTextGateway()
	text, tokens, err := gateway.GenerateText(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, `[{"name": "Test"}]`, text)
	assert.Equal(t, 321, tokens)
}

func TestGenerateTextServerError(t *testing.T) {
	geminiStub(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	})

	gateway := recipe.NewGeminiTextGateway()
	_, _, err := gateway.GenerateText(context.Background(), "prompt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gemini API error")
}

func TestGenerateTextNoCandidates(t *testing.T) {
	geminiStub(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates": []}`))
	})

	gateway := recipe.NewGeminiTextGateway()
	_, _, err := gateway.GenerateText(context.Background(), "prompt")
	assert.Error(t, err)
}

func TestGenerateTextMissingAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	gateway := recipe.NewGeminiTextGateway()
	_, _, err := gateway.GenerateText(context.Background(), "prompt")
	assert.Error(t, err)
}
