package llms

import (
	_ "embed"
	"fmt"
	"strings"

	"git.home.luguber.info/inful/llmstxt/internal/clean"
	"git.home.luguber.info/inful/llmstxt/internal/docs"
)

//go:embed assets/quick-reference.md
var quickReference string

const fullDumpOverview = `> A comprehensive Flutter application framework for rapid development with adaptive UI, service architecture, state management, and cloud synchronization capabilities. This document contains the complete framework documentation optimized for large language model consumption.

## Framework Overview

Flutter App Shell provides a zero-configuration foundation for Flutter applications with:

- **Service-Oriented Architecture**: Dependency injection with GetIt, reactive services, health monitoring
- **Adaptive UI System**: Complete runtime switching between Material, Cupertino, and ForUI design systems
- **Reactive State Management**: Signals-based reactivity with granular UI updates and automatic persistence
- **Responsive Navigation**: Automatic layout adaptation (bottom tabs → navigation rail → sidebar)
- **Offline-First Data**: Local Isar database with automatic Supabase cloud sync and conflict resolution
- **30+ Built-in Services**: Authentication, database, networking, file storage, preferences, and more

`

// BuildFullDump assembles the complete-content artifact (llms-full.txt).
// Documents appear in priority order; records whose cleaned content is empty
// are skipped entirely, header included. The static quick reference appendix
// is appended verbatim, then the whole text gets a final blank-line collapse.
func BuildFullDump(title string, files []docs.DocFile) string {
	var b strings.Builder
	b.WriteString("# " + title + " - Complete Documentation\n\n")
	b.WriteString(fullDumpOverview)

	for _, doc := range files {
		if strings.TrimSpace(doc.Content) == "" {
			continue
		}
		fmt.Fprintf(&b, "\n---\n\n## %s\n\n", doc.Title)
		fmt.Fprintf(&b, "*%s*\n\n", doc.Description)
		b.WriteString(doc.Content)
		b.WriteString("\n\n")
	}

	b.WriteString(quickReference)

	return clean.CollapseBlankLines(b.String())
}
