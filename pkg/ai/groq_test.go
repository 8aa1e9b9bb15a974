package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/minutes-generator/pkg/config"
)

func TestGroqSummarize_Success(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/openai/v1/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var payload ChatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Zero(t, payload.Temperature)
		assert.Equal(t, 180, payload.MaxTokens)

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": "  The team agreed on the release plan.  "}},
			},
		})
	}))
	defer ts.Close()

	client := NewGroqClient(&config.GroqConfig{APIKey: "test-key", BaseURL: ts.URL})

	summary, err := client.Summarize(context.Background(), "long transcript", 180, 30)
	require.NoError(t, err)
	assert.Equal(t, "The team agreed on the release plan.", summary)
}

func TestGroqSummarize_ServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	client := NewGroqClient(&config.GroqConfig{APIKey: "test-key", BaseURL: ts.URL})

	_, err := client.Summarize(context.Background(), "text", 180, 30)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestGroqSummarize_EmptyChoices(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"choices": []interface{}{}})
	}))
	defer ts.Close()

	client := NewGroqClient(&config.GroqConfig{APIKey: "test-key", BaseURL: ts.URL})

	_, err := client.Summarize(context.Background(), "text", 180, 30)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty response")
}
