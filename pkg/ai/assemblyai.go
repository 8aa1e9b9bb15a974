package ai

import (
	"context"
	"fmt"
	"os"
	"time"

	aai "github.com/AssemblyAI/assemblyai-go-sdk"
	backoff "github.com/cenkalti/backoff/v4"

	"github.com/johnquangdev/minutes-generator/pkg/config"
)

// AssemblyAIClient transcribes local audio files through AssemblyAI.
// It uploads the file, submits a transcription job and polls until the job
// reaches a terminal status.
type AssemblyAIClient struct {
	client       *aai.Client
	pollInterval time.Duration
	pollTimeout  time.Duration
}

// NewAssemblyAIClient creates an AssemblyAI client using the provided config.
// If cfg is nil, falls back to environment variables.
func NewAssemblyAIClient(cfg *config.AssemblyAIConfig) *AssemblyAIClient {
	var apiKey string
	pollInterval := 3 * time.Second
	pollTimeout := 15 * time.Minute
	if cfg != nil {
		apiKey = cfg.APIKey
		if cfg.PollInterval > 0 {
			pollInterval = cfg.PollInterval
		}
		if cfg.PollTimeout > 0 {
			pollTimeout = cfg.PollTimeout
		}
	}
	if apiKey == "" {
		apiKey = os.Getenv("ASSEMBLYAI_API_KEY")
	}
	return &AssemblyAIClient{
		client:       aai.NewClient(apiKey),
		pollInterval: pollInterval,
		pollTimeout:  pollTimeout,
	}
}

// Transcribe uploads a local audio file and returns the transcript text.
// The call blocks for model inference time; cancellation is the caller's
// responsibility via ctx.
func (c *AssemblyAIClient) Transcribe(ctx context.Context, audioPath string) (string, error) {
	f, err := os.Open(audioPath)
	if err != nil {
		return "", fmt.Errorf("open audio file: %w", err)
	}
	defer f.Close()

	uploadURL, err := c.client.Upload(ctx, f)
	if err != nil {
		return "", fmt.Errorf("upload to assemblyai: %w", err)
	}

	submitted, err := c.client.Transcripts.SubmitFromURL(ctx, uploadURL, nil)
	if err != nil {
		return "", fmt.Errorf("submit transcription: %w", err)
	}
	if submitted.ID == nil {
		return "", fmt.Errorf("assemblyai returned no transcript id")
	}
	transcriptID := *submitted.ID

	// Poll until the job completes. A job in "error" status is terminal and
	// must not be retried.
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = c.pollInterval
	bo.MaxInterval = 30 * time.Second
	bo.MaxElapsedTime = c.pollTimeout

	var text string
	poll := func() error {
		transcript, err := c.client.Transcripts.Get(ctx, transcriptID)
		if err != nil {
			return err
		}
		switch transcript.Status {
		case aai.TranscriptStatusCompleted:
			if transcript.Text != nil {
				text = *transcript.Text
			}
			return nil
		case aai.TranscriptStatusError:
			msg := "unknown error"
			if transcript.Error != nil {
				msg = *transcript.Error
			}
			return backoff.Permanent(fmt.Errorf("assemblyai reported error: %s", msg))
		default:
			return fmt.Errorf("transcript %s not ready (status %s)", transcriptID, transcript.Status)
		}
	}

	if err := backoff.Retry(poll, backoff.WithContext(bo, ctx)); err != nil {
		return "", err
	}

	return text, nil
}
