package commands

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/llmstxt/internal/config"
	"git.home.luguber.info/inful/llmstxt/internal/docs"
	"git.home.luguber.info/inful/llmstxt/internal/llms"
)

// GenerateCmd implements the 'generate' command: one full regenerate-and-
// overwrite run of both artifacts.
type GenerateCmd struct {
	DocsDir string `name:"docs-dir" short:"d" help:"Path to the documentation directory" default:"docs"`
	Output  string `short:"o" help:"Output directory for the generated files" default:"."`
}

func (g *GenerateCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.LoadOrDefault(root.Config)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	docsDir := resolveDir(g.DocsDir, "docs", cfg.DocsDir)
	outputDir := resolveDir(g.Output, ".", cfg.OutputDir)

	fmt.Println("Generating llms.txt files")
	return RunGenerate(cfg, docsDir, outputDir)
}

// RunGenerate executes the fixed pipeline: load and clean the configured
// documents, build the navigation index, build the full dump, write both.
// Shared with the watch command.
func RunGenerate(cfg *config.Config, docsDir, outputDir string) error {
	slog.Info("Starting llms.txt generation",
		"docs_dir", docsDir,
		"output", outputDir,
		"documents", len(cfg.Docs))

	if _, err := os.Stat(docsDir); os.IsNotExist(err) {
		return fmt.Errorf("docs directory does not exist: %s", docsDir)
	}

	loader := docs.NewLoader(docsDir)
	files := loader.LoadAll(cfg.Docs)
	if len(files) == 0 {
		slog.Warn("No documentation files found", "docs_dir", docsDir)
	}

	generator := llms.NewGenerator(cfg, outputDir)
	if err := generator.Generate(files); err != nil {
		return err
	}

	fmt.Printf("Generated %s and %s\n",
		filepath.Join(outputDir, llms.IndexFileName),
		filepath.Join(outputDir, llms.FullFileName))
	return nil
}
