package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

type implWatcher struct {
	inputDir      string
	handler       EventHandler
	logger        *zap.Logger
	watcher       *fsnotify.Watcher
	maxConcurrent int
	semaphore     chan struct{}
	wg            sync.WaitGroup
}

// Start begins monitoring the input directory for new meeting artifacts.
// Each file is handled in its own goroutine, bounded by the semaphore.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info("file watcher started",
		zap.String("dir", w.inputDir),
		zap.Int("max_concurrent", w.maxConcurrent))

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("waiting for ongoing processing to complete")
			w.wg.Wait()
			w.logger.Info("file watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}

			if event.Op&fsnotify.Create != fsnotify.Create {
				continue
			}
			if !w.isArtifactFile(event.Name) {
				w.logger.Debug("ignoring file", zap.String("path", event.Name))
				continue
			}

			w.logger.Info("new artifact detected", zap.String("path", event.Name))

			// Small delay to ensure the file is fully written
			time.Sleep(500 * time.Millisecond)

			select {
			case w.semaphore <- struct{}{}:
				w.wg.Add(1)
				go func(filePath string) {
					defer w.wg.Done()
					defer func() { <-w.semaphore }()

					if err := w.handler(ctx, filePath); err != nil {
						w.logger.Error("failed to process artifact",
							zap.String("path", filePath),
							zap.Error(err))
					}
				}(event.Name)
			case <-ctx.Done():
				return ctx.Err()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error("watcher error", zap.Error(err))
		}
	}
}

// Stop closes the file watcher
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

// isArtifactFile checks for a supported transcript or audio extension
func (w *implWatcher) isArtifactFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".wav", ".mp3":
		return true
	}
	return false
}
