package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"git.home.luguber.info/inful/llmstxt/internal/config"
	"git.home.luguber.info/inful/llmstxt/internal/watch"
)

// WatchCmd implements the 'watch' command: regenerate the artifacts whenever
// the docs tree changes, until interrupted.
type WatchCmd struct {
	DocsDir     string        `name:"docs-dir" short:"d" help:"Path to the documentation directory" default:"docs"`
	Output      string        `short:"o" help:"Output directory for the generated files" default:"."`
	QuietWindow time.Duration `name:"quiet-window" help:"How long the docs tree must stay quiet before rebuilding" default:"2s"`
	MaxDelay    time.Duration `name:"max-delay" help:"Maximum time a rebuild can be postponed by continuous changes" default:"10s"`
	Interval    time.Duration `name:"interval" help:"Optional periodic rebuild interval (0 disables)" default:"0"`
}

func (w *WatchCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.LoadOrDefault(root.Config)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	docsDir := resolveDir(w.DocsDir, "docs", cfg.DocsDir)
	outputDir := resolveDir(w.Output, ".", cfg.OutputDir)

	if _, err := os.Stat(docsDir); os.IsNotExist(err) {
		return fmt.Errorf("docs directory does not exist: %s", docsDir)
	}

	service, err := watch.NewService(watch.Options{
		DocsDir:     docsDir,
		QuietWindow: w.QuietWindow,
		MaxDelay:    w.MaxDelay,
		Interval:    w.Interval,
	}, func(_ context.Context, _ string) error {
		return RunGenerate(cfg, docsDir, outputDir)
	})
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	fmt.Printf("Watching %s (Ctrl+C to stop)\n", docsDir)
	return service.Run(ctx)
}
