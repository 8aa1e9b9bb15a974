package minutes

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/johnquangdev/minutes-generator/errors"
	"github.com/johnquangdev/minutes-generator/internal/domain/entities"
)

// readArtifact classifies the input file by extension and produces a plain
// text transcript. No text normalization is performed; whitespace and casing
// pass through untouched.
func (s *minutesService) readArtifact(ctx context.Context, path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".txt":
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return "", errors.ErrNotFound(entities.ErrArtifactNotFound)
			}
			return "", errors.ErrInternal(err)
		}
		return string(data), nil

	case ".wav":
		text, err := s.transcriber.Transcribe(ctx, path)
		if err != nil {
			return "", errors.ErrTranscriptionFailed(err)
		}
		return text, nil

	case ".mp3":
		wavPath, err := s.converter.ConvertToWav(ctx, path)
		if err != nil {
			return "", errors.ErrConversionFailed(err)
		}
		// The temp wav is removed on every exit path, transcription
		// success or failure alike.
		defer func() {
			if rmErr := os.Remove(wavPath); rmErr != nil && !os.IsNotExist(rmErr) {
				if s.logger != nil {
					s.logger.Warn("failed to remove temp wav",
						zap.String("path", wavPath),
						zap.Error(rmErr))
				}
			}
		}()

		text, err := s.transcriber.Transcribe(ctx, wavPath)
		if err != nil {
			return "", errors.ErrTranscriptionFailed(err)
		}
		return text, nil

	default:
		return "", errors.ErrUnsupportedFormat(ext)
	}
}
