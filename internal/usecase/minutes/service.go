package minutes

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/johnquangdev/minutes-generator/errors"
	"github.com/johnquangdev/minutes-generator/internal/domain/entities"
)

// Default summary output length bounds, matching the public API defaults.
const (
	DefaultSummaryMaxLen = 180
	DefaultSummaryMinLen = 30
)

// SummaryOptions bounds the summary output length. Zero values fall back to
// the defaults; the pair is otherwise forwarded unvalidated.
type SummaryOptions struct {
	MaxLen int
	MinLen int
}

func (o SummaryOptions) withDefaults() SummaryOptions {
	if o.MaxLen == 0 {
		o.MaxLen = DefaultSummaryMaxLen
	}
	if o.MinLen == 0 {
		o.MinLen = DefaultSummaryMinLen
	}
	return o
}

// Service runs the minutes-generation pipeline.
type Service interface {
	GenerateMinutes(ctx context.Context, path string, participants []string, opts SummaryOptions) (*entities.MinutesResult, error)
}

type minutesService struct {
	transcriber Transcriber
	converter   AudioConverter
	summarizer  Summarizer
	extractor   *Extractor
	logger      *zap.Logger
	now         func() time.Time
}

// NewService constructs the pipeline with explicit capability handles.
func NewService(
	transcriber Transcriber,
	converter AudioConverter,
	summarizer Summarizer,
	tagger LanguageTagger,
	logger *zap.Logger,
) Service {
	return &minutesService{
		transcriber: transcriber,
		converter:   converter,
		summarizer:  summarizer,
		extractor:   NewExtractor(tagger),
		logger:      logger,
		now:         time.Now,
	}
}

// GenerateMinutes runs read -> summarize -> extract -> format. Stages run
// strictly sequentially; any stage failure aborts the pipeline with no
// partial result. Extraction runs against the same transcript as
// summarization, never the summary.
func (s *minutesService) GenerateMinutes(ctx context.Context, path string, participants []string, opts SummaryOptions) (*entities.MinutesResult, error) {
	opts = opts.withDefaults()

	transcript, err := s.readArtifact(ctx, path)
	if err != nil {
		return nil, err
	}

	if s.logger != nil {
		s.logger.Info("artifact read",
			zap.String("path", path),
			zap.Int("transcript_chars", len(transcript)))
	}

	summary, err := s.summarize(ctx, transcript, opts)
	if err != nil {
		return nil, err
	}

	actions, err := s.extractor.Extract(ctx, transcript)
	if err != nil {
		return nil, errors.ErrExtractionFailed(err)
	}

	title := s.now().Format("2006-01-02 15:04")
	minutesText := FormatMinutes(title, summary, actions, participants)

	if s.logger != nil {
		s.logger.Info("minutes generated",
			zap.String("title", title),
			zap.Int("action_items", len(actions)))
	}

	return &entities.MinutesResult{
		Title:        title,
		Summary:      summary,
		Participants: participants,
		Minutes:      minutesText,
		Actions:      actions,
	}, nil
}

func (s *minutesService) summarize(ctx context.Context, transcript string, opts SummaryOptions) (string, error) {
	if strings.TrimSpace(transcript) == "" {
		return "", errors.ErrSummarizationFailed(entities.ErrEmptyTranscript)
	}

	summary, err := s.summarizer.Summarize(ctx, transcript, opts.MaxLen, opts.MinLen)
	if err != nil {
		return "", errors.ErrSummarizationFailed(err)
	}
	if strings.TrimSpace(summary) == "" {
		return "", errors.ErrSummarizationFailed(fmt.Errorf("summarizer returned empty output"))
	}
	return summary, nil
}

// ParseParticipants splits a comma-separated participants string, trimming
// whitespace and discarding empty entries. Order is preserved and duplicates
// are kept.
func ParseParticipants(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
