// Package watch regenerates the llms.txt artifacts whenever the docs tree
// changes. Change bursts are debounced; an optional interval schedules
// unconditional rebuilds on top of the event-driven ones.
package watch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
)

// BuildFunc runs one full regeneration.
type BuildFunc func(ctx context.Context, reason string) error

// Options configures the watch service.
type Options struct {
	DocsDir     string
	QuietWindow time.Duration
	MaxDelay    time.Duration
	Interval    time.Duration // optional periodic rebuild, 0 disables
}

// Service watches a docs directory and triggers debounced rebuilds.
type Service struct {
	opts  Options
	build BuildFunc
}

// NewService creates a watch service. Zero debounce durations get defaults.
func NewService(opts Options, build BuildFunc) (*Service, error) {
	if opts.DocsDir == "" {
		return nil, errors.New("docs directory is required")
	}
	if build == nil {
		return nil, errors.New("build function is required")
	}
	if opts.QuietWindow <= 0 {
		opts.QuietWindow = 2 * time.Second
	}
	if opts.MaxDelay <= 0 {
		opts.MaxDelay = 10 * time.Second
	}
	return &Service{opts: opts, build: build}, nil
}

// Run performs an initial build, then blocks processing filesystem events
// until the context is cancelled. Build failures are logged and do not stop
// the service.
func (s *Service) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create file watcher: %w", err)
	}
	defer func() {
		if err := watcher.Close(); err != nil {
			slog.Warn("Failed to close file watcher", "error", err)
		}
	}()

	if err := addRecursive(watcher, s.opts.DocsDir); err != nil {
		return fmt.Errorf("watch docs directory %s: %w", s.opts.DocsDir, err)
	}

	debouncer, err := NewDebouncer(DebouncerConfig{
		QuietWindow: s.opts.QuietWindow,
		MaxDelay:    s.opts.MaxDelay,
	}, func(reason string) {
		s.runBuild(ctx, reason)
	})
	if err != nil {
		return err
	}
	go func() {
		_ = debouncer.Run(ctx)
	}()

	if s.opts.Interval > 0 {
		scheduler, err := gocron.NewScheduler()
		if err != nil {
			return fmt.Errorf("create scheduler: %w", err)
		}
		_, err = scheduler.NewJob(
			gocron.DurationJob(s.opts.Interval),
			gocron.NewTask(func() { debouncer.Request("scheduled rebuild") }),
			gocron.WithName("periodic-rebuild"),
		)
		if err != nil {
			return fmt.Errorf("schedule periodic rebuild: %w", err)
		}
		scheduler.Start()
		defer func() {
			if err := scheduler.Shutdown(); err != nil {
				slog.Warn("Failed to shut down scheduler", "error", err)
			}
		}()
		slog.Info("Periodic rebuild scheduled", "interval", s.opts.Interval)
	}

	s.runBuild(ctx, "startup")

	slog.Info("Watching documentation for changes",
		"docs_dir", s.opts.DocsDir,
		"quiet_window", s.opts.QuietWindow,
		"max_delay", s.opts.MaxDelay)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			s.handleEvent(watcher, debouncer, event)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("File watcher error", "error", err)
		}
	}
}

func (s *Service) handleEvent(watcher *fsnotify.Watcher, debouncer *Debouncer, event fsnotify.Event) {
	// New directories must be added to the watch set before their contents
	// produce events.
	if event.Op.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := addRecursive(watcher, event.Name); err != nil {
				slog.Warn("Failed to watch new directory", "path", event.Name, "error", err)
			}
			return
		}
	}

	if !isMarkdown(event.Name) {
		return
	}
	if event.Op.Has(fsnotify.Create) || event.Op.Has(fsnotify.Write) ||
		event.Op.Has(fsnotify.Remove) || event.Op.Has(fsnotify.Rename) {
		slog.Debug("Documentation change detected", "path", event.Name, "op", event.Op.String())
		debouncer.Request(fmt.Sprintf("%s %s", strings.ToLower(event.Op.String()), filepath.Base(event.Name)))
	}
}

func (s *Service) runBuild(ctx context.Context, reason string) {
	buildID := uuid.NewString()
	slog.Info("Rebuilding llms.txt artifacts", "build_id", buildID, "reason", reason)

	start := time.Now()
	if err := s.build(ctx, reason); err != nil {
		slog.Error("Rebuild failed", "build_id", buildID, "error", err)
		return
	}
	slog.Info("Rebuild completed", "build_id", buildID, "duration", time.Since(start))
}

// addRecursive watches dir and every subdirectory beneath it.
func addRecursive(watcher *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
}

func isMarkdown(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".md")
}
