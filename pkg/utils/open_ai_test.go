package utils

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStubOpenAIClient(t *testing.T, handler http.HandlerFunc) *OpenAICompletionClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := openai.DefaultConfig("test-key")
	cfg.BaseURL = srv.URL + "/v1"
	return &OpenAICompletionClient{
		client: openai.NewClientWithConfig(cfg),
		models: []string{"gpt-5"},
	}
}

func TestCompleteSendsMaxCompletionTokens(t *testing.T) {
	var body map[string]interface{}
	client := newStubOpenAIClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"### Day 1"}}]}`))
	})

	text, err := client.Complete(context.Background(), "gpt-5", "system", "user", 2200)

	require.NoError(t, err)
	assert.Equal(t, "### Day 1", text)
	assert.Equal(t, float64(2200), body["max_completion_tokens"])
	assert.NotContains(t, body, "max_tokens", "gpt-5 class models reject max_tokens")
}

func TestCompleteEmptyContentIsAnError(t *testing.T) {
	client := newStubOpenAIClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"   "}}]}`))
	})

	_, err := client.Complete(context.Background(), "gpt-5", "system", "user", 10)

	assert.ErrorIs(t, err, ErrEmptyCompletion)
}

func TestCompleteWrapsAPIFailure(t *testing.T) {
	client := newStubOpenAIClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"invalid api key","type":"invalid_request_error"}}`))
	})

	_, err := client.Complete(context.Background(), "gpt-5", "system", "user", 10)

	assert.ErrorIs(t, err, ErrUpstream)
}
