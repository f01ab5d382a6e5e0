package commands

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
)

// Global context passed to subcommands if we need to share global state later.
type Global struct {
	Logger *slog.Logger
}

// CLI definition & global flags - used by commands that need access to root config.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"llmstxt.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Generate GenerateCmd `cmd:"" default:"withargs" help:"Generate llms.txt and llms-full.txt from the docs directory"`
	Init     InitCmd     `cmd:"" help:"Initialize a new configuration file"`
	Lint     LintCmd     `cmd:"" help:"Check the configured documentation set for problems"`
	Watch    WatchCmd    `cmd:"" help:"Watch the docs directory and regenerate on changes"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// resolveDir determines a directory from CLI flag and config.
// Priority: explicit CLI flag > config value > CLI default.
func resolveDir(cliValue, cliDefault, cfgValue string) string {
	if cliValue != "" && cliValue != cliDefault {
		return cliValue
	}
	if cfgValue != "" {
		return cfgValue
	}
	return cliValue
}
