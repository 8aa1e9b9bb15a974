package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/minutes-generator/internal/domain/entities"
	"github.com/johnquangdev/minutes-generator/pkg/config"
)

func newStubNLPServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req textRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		switch r.URL.Path {
		case "/segment":
			json.NewEncoder(w).Encode(map[string]interface{}{
				"sentences": []string{"First sentence.", "Second sentence."},
			})
		case "/entities":
			json.NewEncoder(w).Encode(map[string]interface{}{
				"entities": []map[string]string{
					{"label": "PERSON", "text": "Alice"},
					{"label": "DATE", "text": "Friday"},
				},
			})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func TestNLPClient_SegmentSentences(t *testing.T) {
	ts := newStubNLPServer(t)
	defer ts.Close()

	client := NewNLPClient(&config.NLPConfig{BaseURL: ts.URL})

	sentences, err := client.SegmentSentences(context.Background(), "First sentence. Second sentence.")
	require.NoError(t, err)
	assert.Equal(t, []string{"First sentence.", "Second sentence."}, sentences)
}

func TestNLPClient_TagEntities(t *testing.T) {
	ts := newStubNLPServer(t)
	defer ts.Close()

	client := NewNLPClient(&config.NLPConfig{BaseURL: ts.URL})

	ents, err := client.TagEntities(context.Background(), "Alice will report by Friday.")
	require.NoError(t, err)
	require.Len(t, ents, 2)
	assert.Equal(t, entities.Entity{Label: "PERSON", Text: "Alice"}, ents[0])
	assert.Equal(t, entities.Entity{Label: "DATE", Text: "Friday"}, ents[1])
}

func TestNLPClient_ServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer ts.Close()

	client := NewNLPClient(&config.NLPConfig{BaseURL: ts.URL})

	_, err := client.SegmentSentences(context.Background(), "text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")
}
