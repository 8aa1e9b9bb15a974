package executor

import "context"

// Executor runs external commands. Injected so the audio converter can be
// stubbed in tests.
type Executor interface {
	Execute(ctx context.Context, name string, args ...string) (string, error)
}
