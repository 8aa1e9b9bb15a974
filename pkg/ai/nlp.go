package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/johnquangdev/minutes-generator/internal/domain/entities"
	"github.com/johnquangdev/minutes-generator/pkg/config"
)

// NLPClient talks to the linguistic sidecar service that provides sentence
// segmentation and named-entity tagging.
type NLPClient struct {
	baseURL string
	client  *http.Client
}

// NewNLPClient creates a client for the NLP sidecar.
func NewNLPClient(cfg *config.NLPConfig) *NLPClient {
	base := "http://localhost:8090"
	if cfg != nil && cfg.BaseURL != "" {
		base = cfg.BaseURL
	}
	return &NLPClient{
		baseURL: base,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

type textRequest struct {
	Text string `json:"text"`
}

type segmentResponse struct {
	Sentences []string `json:"sentences"`
}

type entitiesResponse struct {
	Entities []entities.Entity `json:"entities"`
}

// SegmentSentences splits text into sentences in document order.
func (n *NLPClient) SegmentSentences(ctx context.Context, text string) ([]string, error) {
	var out segmentResponse
	if err := n.post(ctx, "/segment", textRequest{Text: text}, &out); err != nil {
		return nil, err
	}
	return out.Sentences, nil
}

// TagEntities returns the named entities of a single sentence in the order
// the tagging model emits them.
func (n *NLPClient) TagEntities(ctx context.Context, sentence string) ([]entities.Entity, error) {
	var out entitiesResponse
	if err := n.post(ctx, "/entities", textRequest{Text: sentence}, &out); err != nil {
		return nil, err
	}
	return out.Entities, nil
}

func (n *NLPClient) post(ctx context.Context, path string, payload interface{}, out interface{}) error {
	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", n.baseURL+path, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("nlp service returned status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
