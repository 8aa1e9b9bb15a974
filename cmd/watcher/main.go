package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"go.uber.org/zap"

	minutesuse "github.com/johnquangdev/minutes-generator/internal/usecase/minutes"
	"github.com/johnquangdev/minutes-generator/internal/watcher"
	pkgai "github.com/johnquangdev/minutes-generator/pkg/ai"
	"github.com/johnquangdev/minutes-generator/pkg/audio"
	"github.com/johnquangdev/minutes-generator/pkg/config"
	"github.com/johnquangdev/minutes-generator/pkg/executor"
)

func main() {
	configPath := flag.String("config", "watcher.yaml", "path to watcher config file")
	flag.Parse()

	// Env config carries the AI credentials, yaml carries the folder layout
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	watchCfg, err := config.LoadWatcherConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load watcher config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	if err := ensureDirectories(watchCfg); err != nil {
		log.Fatalf("Failed to create directories: %v", err)
	}

	// Initialize pipeline
	log.Println("🤖 Initializing AI components...")
	asmClient := pkgai.NewAssemblyAIClient(&cfg.Assembly)
	groqClient := pkgai.NewGroqClient(&cfg.Groq)
	nlpClient := pkgai.NewNLPClient(&cfg.NLP)
	converter := audio.NewFFmpegConverter(executor.New(), cfg.Upload.TempDir)

	svc := minutesuse.NewService(asmClient, converter, groqClient, nlpClient, logger)
	runner := &pipelineRunner{svc: svc, cfg: watchCfg, logger: logger}

	w, err := watcher.New(watchCfg.Paths.Input, runner.Process, logger, watchCfg.Performance.MaxConcurrent)
	if err != nil {
		log.Fatalf("Failed to create watcher: %v", err)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	log.Printf("🚀 Watching %s for meeting artifacts", watchCfg.Paths.Input)
	log.Printf("📝 Minutes written to %s", watchCfg.Paths.Output)

	select {
	case <-sigChan:
		log.Println("🛑 Shutdown signal received")
	case err := <-errChan:
		log.Printf("❌ Watcher error: %v", err)
	}

	cancel()
	log.Println("✅ Watcher stopped")
}

// pipelineRunner turns detected artifacts into minutes files on disk.
type pipelineRunner struct {
	svc    minutesuse.Service
	cfg    *config.WatcherConfig
	logger *zap.Logger
}

// Process runs the pipeline for one artifact, writes the minutes document
// and moves the artifact into the archived directory.
func (r *pipelineRunner) Process(ctx context.Context, filePath string) error {
	opts := minutesuse.SummaryOptions{
		MaxLen: r.cfg.Summary.MaxLen,
		MinLen: r.cfg.Summary.MinLen,
	}

	result, err := r.svc.GenerateMinutes(ctx, filePath, r.cfg.Summary.Participants, opts)
	if err != nil {
		return fmt.Errorf("generate minutes for %s: %w", filePath, err)
	}

	base := strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
	outPath := filepath.Join(r.cfg.Paths.Output, base+".minutes.txt")
	if err := os.WriteFile(outPath, []byte(result.Minutes), 0o644); err != nil {
		return fmt.Errorf("write minutes file: %w", err)
	}

	archivedPath := filepath.Join(r.cfg.Paths.Archived, filepath.Base(filePath))
	if err := os.Rename(filePath, archivedPath); err != nil {
		return fmt.Errorf("archive artifact: %w", err)
	}

	r.logger.Info("minutes written",
		zap.String("artifact", filePath),
		zap.String("minutes", outPath),
		zap.Int("action_items", len(result.Actions)))

	return nil
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.WatcherConfig) error {
	dirs := []string{
		cfg.Paths.Input,
		cfg.Paths.Output,
		cfg.Paths.Archived,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
