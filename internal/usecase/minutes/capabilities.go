package minutes

import (
	"context"

	"github.com/johnquangdev/minutes-generator/internal/domain/entities"
)

// Capability handles the pipeline depends on. They are constructed by the
// caller and injected, so tests substitute stubs and nothing is loaded as
// hidden process-wide state. All of them may block for model-load and
// inference time; cancellation policy belongs to the caller's ctx.

// Transcriber converts an audio file into text.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (string, error)
}

// AudioConverter converts an audio artifact into a WAV file and returns the
// produced path. The caller owns deletion of the returned file.
type AudioConverter interface {
	ConvertToWav(ctx context.Context, sourcePath string) (string, error)
}

// Summarizer produces an abstractive summary bounded by maxLen/minLen. The
// bounds are forwarded unvalidated.
type Summarizer interface {
	Summarize(ctx context.Context, text string, maxLen, minLen int) (string, error)
}

// LanguageTagger provides sentence segmentation and named-entity tagging.
type LanguageTagger interface {
	SegmentSentences(ctx context.Context, text string) ([]string, error)
	TagEntities(ctx context.Context, sentence string) ([]entities.Entity, error)
}
