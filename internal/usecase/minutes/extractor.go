package minutes

import (
	"context"
	"fmt"
	"strings"

	"github.com/johnquangdev/minutes-generator/internal/domain/entities"
)

// triggerWords flags candidate action sentences. Matching is exact lowercase
// token equality, no stemming or partial-word matching.
var triggerWords = map[string]struct{}{
	"will":   {},
	"shall":  {},
	"should": {},
	"need":   {},
	"must":   {},
	"ensure": {},
}

// tokenPunct is stripped from token edges before trigger comparison, so a
// sentence-final "must." still matches the way a linguistic tokenizer would
// tokenize it.
const tokenPunct = ".,!?;:()[]{}\"'…“”‘’"

// Extractor scans transcript sentences for action items.
type Extractor struct {
	tagger LanguageTagger
}

// NewExtractor creates an Extractor backed by the given tagger.
func NewExtractor(tagger LanguageTagger) *Extractor {
	return &Extractor{tagger: tagger}
}

// Extract returns the action items of a transcript in document order.
// An empty transcript yields an empty result, not an error.
func (e *Extractor) Extract(ctx context.Context, transcript string) ([]entities.ActionItem, error) {
	actions := make([]entities.ActionItem, 0)
	if strings.TrimSpace(transcript) == "" {
		return actions, nil
	}

	sentences, err := e.tagger.SegmentSentences(ctx, transcript)
	if err != nil {
		return nil, fmt.Errorf("segment sentences: %w", err)
	}

	for _, sentence := range sentences {
		if !containsTrigger(sentence) {
			continue
		}

		item := entities.ActionItem{Task: strings.TrimSpace(sentence)}

		ents, err := e.tagger.TagEntities(ctx, sentence)
		if err != nil {
			return nil, fmt.Errorf("tag entities: %w", err)
		}
		for _, ent := range ents {
			// Last matching entity of each kind wins.
			switch ent.Label {
			case entities.EntityLabelPerson:
				item.Person = ent.Text
			case entities.EntityLabelDate:
				item.Deadline = ent.Text
			}
		}

		actions = append(actions, item)
	}

	return actions, nil
}

// ExtractFromFragments joins text fragments with a single space and extracts
// from the result. Sentence boundaries spanning fragment joins are whatever
// the segmentation capability decides.
func (e *Extractor) ExtractFromFragments(ctx context.Context, fragments []string) ([]entities.ActionItem, error) {
	parts := make([]string, 0, len(fragments))
	for _, f := range fragments {
		if f != "" {
			parts = append(parts, f)
		}
	}
	return e.Extract(ctx, strings.Join(parts, " "))
}

func containsTrigger(sentence string) bool {
	for _, field := range strings.Fields(sentence) {
		token := strings.ToLower(strings.Trim(field, tokenPunct))
		if _, ok := triggerWords[token]; ok {
			return true
		}
	}
	return false
}
