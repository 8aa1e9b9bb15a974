package audio

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExecutor struct {
	calls [][]string
	err   error
}

func (f *fakeExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	f.calls = append(f.calls, append([]string{name}, args...))
	return "", f.err
}

func TestConvertToWav_BuildsFFmpegCommand(t *testing.T) {
	exec := &fakeExecutor{}
	conv := NewFFmpegConverter(exec, t.TempDir())

	wavPath, err := conv.ConvertToWav(context.Background(), "/data/meeting.mp3")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(wavPath, ".wav"))

	require.Len(t, exec.calls, 1)
	call := exec.calls[0]
	assert.Equal(t, "ffmpeg", call[0])
	assert.Contains(t, call, "/data/meeting.mp3")
	assert.Contains(t, call, "pcm_s16le")
	assert.Contains(t, call, wavPath)
}

func TestConvertToWav_UniquePaths(t *testing.T) {
	exec := &fakeExecutor{}
	conv := NewFFmpegConverter(exec, t.TempDir())

	first, err := conv.ConvertToWav(context.Background(), "/data/a.mp3")
	require.NoError(t, err)
	second, err := conv.ConvertToWav(context.Background(), "/data/a.mp3")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestConvertToWav_FFmpegFailure(t *testing.T) {
	exec := &fakeExecutor{err: fmt.Errorf("exit status 1")}
	conv := NewFFmpegConverter(exec, t.TempDir())

	_, err := conv.ConvertToWav(context.Background(), "/data/broken.mp3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ffmpeg convert to wav")
}
