// Package lint checks the configured documentation set for problems that
// would degrade the generated artifacts: table entries missing from disk,
// documents without a top-level heading, and broken relative links.
package lint

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/llmstxt/internal/config"
)

type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue is a single lint finding.
type Issue struct {
	Path     string   // document path relative to the docs directory
	Severity Severity
	Message  string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s: %s", i.Severity, i.Path, i.Message)
}

// Linter validates the documents named by the configuration table.
type Linter struct {
	docsDir string
}

// NewLinter creates a linter rooted at the given docs directory.
func NewLinter(docsDir string) *Linter {
	return &Linter{docsDir: docsDir}
}

// Run checks every table entry and returns the findings in table order.
func (l *Linter) Run(entries []config.DocEntry) []Issue {
	var issues []Issue

	for _, entry := range entries {
		fullPath := filepath.Join(l.docsDir, filepath.FromSlash(entry.Path))

		if _, err := os.Stat(fullPath); err != nil {
			issues = append(issues, Issue{
				Path:     entry.Path,
				Severity: SeverityWarning,
				Message:  "listed in the document table but missing from disk",
			})
			continue
		}

		body, err := os.ReadFile(fullPath)
		if err != nil {
			issues = append(issues, Issue{
				Path:     entry.Path,
				Severity: SeverityError,
				Message:  fmt.Sprintf("unreadable: %v", err),
			})
			continue
		}

		if strings.TrimSpace(string(body)) == "" {
			issues = append(issues, Issue{
				Path:     entry.Path,
				Severity: SeverityWarning,
				Message:  "document is empty",
			})
			continue
		}

		if !hasTopHeading(body) {
			issues = append(issues, Issue{
				Path:     entry.Path,
				Severity: SeverityWarning,
				Message:  "no top-level heading",
			})
		}

		issues = append(issues, l.checkLinks(entry.Path, body)...)
	}

	return issues
}

// checkLinks flags relative link targets that do not exist on disk.
func (l *Linter) checkLinks(docPath string, body []byte) []Issue {
	var issues []Issue

	docDir := filepath.Dir(filepath.Join(l.docsDir, filepath.FromSlash(docPath)))

	for _, link := range extractLinks(body) {
		if link.Kind == LinkKindAuto {
			continue
		}
		dest := link.Destination
		if dest == "" || strings.HasPrefix(dest, "#") {
			continue
		}
		if strings.Contains(dest, "://") || strings.HasPrefix(dest, "mailto:") {
			continue
		}
		// Site-absolute destinations cannot be resolved against the docs tree.
		if strings.HasPrefix(dest, "/") {
			continue
		}

		// Drop fragment and query before resolving.
		if idx := strings.IndexAny(dest, "#?"); idx >= 0 {
			dest = dest[:idx]
		}
		if dest == "" {
			continue
		}

		target := filepath.Join(docDir, filepath.FromSlash(dest))
		if _, err := os.Stat(target); err != nil {
			issues = append(issues, Issue{
				Path:     docPath,
				Severity: SeverityError,
				Message:  fmt.Sprintf("broken relative link: %s", link.Destination),
			})
		}
	}

	return issues
}

// Errors counts findings with error severity.
func Errors(issues []Issue) int {
	n := 0
	for _, issue := range issues {
		if issue.Severity == SeverityError {
			n++
		}
	}
	return n
}
