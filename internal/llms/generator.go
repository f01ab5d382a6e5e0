// Package llms builds the two aggregated artifacts: the curated navigation
// index (llms.txt) and the full-content dump (llms-full.txt).
package llms

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/llmstxt/internal/config"
	"git.home.luguber.info/inful/llmstxt/internal/docs"
)

// Output file names, relative to the output directory.
const (
	IndexFileName = "llms.txt"
	FullFileName  = "llms-full.txt"
)

// Generator writes the llms.txt artifacts for one generation run.
type Generator struct {
	cfg       *config.Config
	outputDir string
}

// NewGenerator creates a generator writing into outputDir.
func NewGenerator(cfg *config.Config, outputDir string) *Generator {
	return &Generator{cfg: cfg, outputDir: outputDir}
}

// Generate builds both artifacts from the loaded documents and writes them,
// overwriting any existing files. Phases run in fixed order: index first,
// then the full dump. A write failure aborts the run; there is no partial
// output guarantee beyond files already written.
func (g *Generator) Generate(files []docs.DocFile) error {
	slog.Info("Generating navigation index", "file", IndexFileName)
	index := BuildIndex(g.cfg.Title, files)
	if err := g.writeFile(IndexFileName, index); err != nil {
		return fmt.Errorf("write %s: %w", IndexFileName, err)
	}

	slog.Info("Generating full content dump", "file", FullFileName, "documents", len(files))
	full := BuildFullDump(g.cfg.Title, files)
	if err := g.writeFile(FullFileName, full); err != nil {
		return fmt.Errorf("write %s: %w", FullFileName, err)
	}

	return nil
}

func (g *Generator) writeFile(name, content string) error {
	return os.WriteFile(filepath.Join(g.outputDir, name), []byte(content), 0o644)
}
