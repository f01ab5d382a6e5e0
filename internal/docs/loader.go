package docs

import (
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"git.home.luguber.info/inful/llmstxt/internal/clean"
	"git.home.luguber.info/inful/llmstxt/internal/config"
)

// Loader reads the documents named by the configuration table from a docs
// directory.
type Loader struct {
	docsDir string
}

// NewLoader creates a loader rooted at the given docs directory.
func NewLoader(docsDir string) *Loader {
	return &Loader{docsDir: docsDir}
}

// LoadAll processes the document table in order. Missing files are skipped
// silently; a read failure on an existing file is logged as a warning and
// contributes a record with empty content (the run continues). The returned
// collection is sorted ascending by priority, ties broken by table order.
func (l *Loader) LoadAll(entries []config.DocEntry) []DocFile {
	files := make([]DocFile, 0, len(entries))

	for _, entry := range entries {
		fullPath := filepath.Join(l.docsDir, filepath.FromSlash(entry.Path))

		if _, err := os.Stat(fullPath); err != nil {
			slog.Debug("Documentation file not found, skipping", "path", entry.Path)
			continue
		}

		content, err := l.readFile(fullPath)
		if err != nil {
			slog.Warn("Failed to read documentation file", "path", entry.Path, "error", err)
			content = ""
		}

		files = append(files, DocFile{
			Path:        entry.Path,
			Title:       entry.Title,
			Description: entry.Description,
			Content:     content,
			Priority:    entry.Priority,
		})
		slog.Info("Documentation file loaded", "path", entry.Path, "priority", entry.Priority)
	}

	// Stable: entries sharing a priority keep their table order.
	sort.SliceStable(files, func(i, j int) bool {
		return files[i].Priority < files[j].Priority
	})

	return files
}

// readFile reads a markdown file and cleans its content.
func (l *Loader) readFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return clean.Content(string(data)), nil
}
