package lint

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

func TestLinterFlagsMissingDocuments(t *testing.T) {
	docsDir := t.TempDir()
	writeDoc(t, docsDir, "README.md", "# Readme\n\nText.")

	entries := []config.DocEntry{
		{Path: "README.md", Title: "Readme", Priority: 1},
		{Path: "missing.md", Title: "Missing", Priority: 2},
	}

	issues := NewLinter(docsDir).Run(entries)

	require.Len(t, issues, 1)
	assert.Equal(t, "missing.md", issues[0].Path)
	assert.Equal(t, SeverityWarning, issues[0].Severity)
}

func TestLinterFlagsMissingTopHeading(t *testing.T) {
	docsDir := t.TempDir()
	writeDoc(t, docsDir, "no-heading.md", "Just text without a title.\n")

	issues := NewLinter(docsDir).Run([]config.DocEntry{
		{Path: "no-heading.md", Title: "No Heading", Priority: 1},
	})

	require.Len(t, issues, 1)
	assert.Contains(t, issues[0].Message, "top-level heading")
}

func TestLinterFlagsEmptyDocuments(t *testing.T) {
	docsDir := t.TempDir()
	writeDoc(t, docsDir, "empty.md", "   \n")

	issues := NewLinter(docsDir).Run([]config.DocEntry{
		{Path: "empty.md", Title: "Empty", Priority: 1},
	})

	require.Len(t, issues, 1)
	assert.Contains(t, issues[0].Message, "empty")
}

func TestLinterFlagsBrokenRelativeLinks(t *testing.T) {
	docsDir := t.TempDir()
	writeDoc(t, docsDir, "guide.md", "# Guide\n\nSee [setup](setup.md) and [arch](sub/arch.md).\n")
	writeDoc(t, docsDir, "sub/arch.md", "# Arch\n")

	issues := NewLinter(docsDir).Run([]config.DocEntry{
		{Path: "guide.md", Title: "Guide", Priority: 1},
	})

	require.Len(t, issues, 1)
	assert.Equal(t, SeverityError, issues[0].Severity)
	assert.Contains(t, issues[0].Message, "setup.md")
}

func TestLinterResolvesLinksRelativeToDocument(t *testing.T) {
	docsDir := t.TempDir()
	writeDoc(t, docsDir, "services/README.md", "# Services\n\nSee [database](database.md) and [top](../architecture.md).\n")
	writeDoc(t, docsDir, "services/database.md", "# Database\n")
	writeDoc(t, docsDir, "architecture.md", "# Architecture\n")

	issues := NewLinter(docsDir).Run([]config.DocEntry{
		{Path: "services/README.md", Title: "Services", Priority: 1},
	})

	assert.Empty(t, issues)
}

func TestLinterIgnoresExternalAndAnchorLinks(t *testing.T) {
	docsDir := t.TempDir()
	writeDoc(t, docsDir, "links.md", "# Links\n\n"+
		"[site](https://example.com) "+
		"[mail](mailto:team@example.com) "+
		"[anchor](#section) "+
		"[absolute](/assets/logo.png)\n\n"+
		"## Section\n\nText.\n")

	issues := NewLinter(docsDir).Run([]config.DocEntry{
		{Path: "links.md", Title: "Links", Priority: 1},
	})

	assert.Empty(t, issues)
}

func TestLinterStripsFragmentsBeforeResolving(t *testing.T) {
	docsDir := t.TempDir()
	writeDoc(t, docsDir, "a.md", "# A\n\n[jump](b.md#details)\n")
	writeDoc(t, docsDir, "b.md", "# B\n\n## Details\n\nText.\n")

	issues := NewLinter(docsDir).Run([]config.DocEntry{
		{Path: "a.md", Title: "A", Priority: 1},
	})

	assert.Empty(t, issues)
}

func TestErrorsCountsOnlyErrorSeverity(t *testing.T) {
	issues := []Issue{
		{Severity: SeverityWarning},
		{Severity: SeverityError},
		{Severity: SeverityError},
	}
	assert.Equal(t, 2, Errors(issues))
	assert.Zero(t, Errors(nil))
}
