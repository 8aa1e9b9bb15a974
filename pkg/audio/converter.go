package audio

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/johnquangdev/minutes-generator/pkg/executor"
)

// FFmpegConverter converts audio artifacts to WAV using ffmpeg. Output paths
// carry a per-request unique suffix so concurrent requests never collide.
type FFmpegConverter struct {
	exec    executor.Executor
	tempDir string
}

// NewFFmpegConverter creates a converter writing temp WAV files into tempDir.
func NewFFmpegConverter(exec executor.Executor, tempDir string) *FFmpegConverter {
	return &FFmpegConverter{exec: exec, tempDir: tempDir}
}

// ConvertToWav converts the source audio file to 16kHz mono PCM WAV and
// returns the path of the produced file. The caller owns deletion of the
// returned file.
func (c *FFmpegConverter) ConvertToWav(ctx context.Context, sourcePath string) (string, error) {
	wavPath := filepath.Join(c.tempDir, fmt.Sprintf("convert-%s.wav", uuid.NewString()))

	// -vn: audio only
	// -ar 16000 -ac 1 -c:a pcm_s16le: 16kHz mono PCM, what speech models expect
	args := []string{
		"-i", sourcePath,
		"-vn",
		"-ar", "16000",
		"-ac", "1",
		"-c:a", "pcm_s16le",
		"-y",
		wavPath,
	}

	if _, err := c.exec.Execute(ctx, "ffmpeg", args...); err != nil {
		return "", fmt.Errorf("ffmpeg convert to wav: %w", err)
	}

	return wavPath, nil
}
