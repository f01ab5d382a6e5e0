package docs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/llmstxt/internal/config"
)

func writeDoc(t *testing.T, docsDir, relPath, content string) {
	t.Helper()
	fullPath := filepath.Join(docsDir, filepath.FromSlash(relPath))
	require.NoError(t, os.MkdirAll(filepath.Dir(fullPath), 0o755))
	require.NoError(t, os.WriteFile(fullPath, []byte(content), 0o644))
}

func TestLoadAllSkipsMissingFiles(t *testing.T) {
	docsDir := t.TempDir()
	writeDoc(t, docsDir, "README.md", "# Readme\n\nContent.")

	entries := []config.DocEntry{
		{Path: "README.md", Title: "Readme", Description: "d", Priority: 1},
		{Path: "missing.md", Title: "Missing", Description: "d", Priority: 2},
	}

	files := NewLoader(docsDir).LoadAll(entries)

	require.Len(t, files, 1)
	assert.Equal(t, "README.md", files[0].Path)
	// A missing file produces no record at all, not an empty one.
	for _, f := range files {
		assert.NotEqual(t, "missing.md", f.Path)
	}
}

func TestLoadAllSortsByPriorityStable(t *testing.T) {
	docsDir := t.TempDir()
	writeDoc(t, docsDir, "spec.md", "# Spec")
	writeDoc(t, docsDir, "a.md", "# A")
	writeDoc(t, docsDir, "b.md", "# B")
	writeDoc(t, docsDir, "intro.md", "# Intro")

	entries := []config.DocEntry{
		{Path: "spec.md", Title: "Spec", Description: "d", Priority: 5},
		{Path: "a.md", Title: "A", Description: "d", Priority: 2},
		{Path: "b.md", Title: "B", Description: "d", Priority: 2},
		{Path: "intro.md", Title: "Intro", Description: "d", Priority: 1},
	}

	files := NewLoader(docsDir).LoadAll(entries)

	require.Len(t, files, 4)
	assert.Equal(t, "intro.md", files[0].Path)
	// Same priority: table order decides.
	assert.Equal(t, "a.md", files[1].Path)
	assert.Equal(t, "b.md", files[2].Path)
	assert.Equal(t, "spec.md", files[3].Path)
}

func TestLoadAllReadFailureYieldsEmptyContent(t *testing.T) {
	docsDir := t.TempDir()
	// A directory with a markdown name exists but cannot be read as a file.
	require.NoError(t, os.MkdirAll(filepath.Join(docsDir, "broken.md"), 0o755))

	entries := []config.DocEntry{
		{Path: "broken.md", Title: "Broken", Description: "d", Priority: 1},
	}

	files := NewLoader(docsDir).LoadAll(entries)

	// The record is still produced; the run continues.
	require.Len(t, files, 1)
	assert.Equal(t, "broken.md", files[0].Path)
	assert.Empty(t, files[0].Content)
}

func TestLoadAllCleansContent(t *testing.T) {
	docsDir := t.TempDir()
	writeDoc(t, docsDir, "guide.md", "# Guide\n\n<!-- hidden -->\n\n## 🎯 Table of Contents\n- [x](#x)\n\n## Usage\n\nText.\n\n\n\nEnd.\n")

	entries := []config.DocEntry{
		{Path: "guide.md", Title: "Guide", Description: "d", Priority: 1},
	}

	files := NewLoader(docsDir).LoadAll(entries)

	require.Len(t, files, 1)
	content := files[0].Content
	assert.NotContains(t, content, "<!--")
	assert.NotContains(t, content, "Table of Contents")
	assert.NotContains(t, content, "\n\n\n")
	assert.Contains(t, content, "## Usage")
}

func TestLoadAllSubdirectoryPaths(t *testing.T) {
	docsDir := t.TempDir()
	writeDoc(t, docsDir, "services/README.md", "# Services\n\nOverview.")

	entries := []config.DocEntry{
		{Path: "services/README.md", Title: "Services", Description: "d", Priority: 2},
	}

	files := NewLoader(docsDir).LoadAll(entries)

	require.Len(t, files, 1)
	// The record keeps the forward-slash relative path as its key.
	assert.Equal(t, "services/README.md", files[0].Path)
}
