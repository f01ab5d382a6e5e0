package llms

import (
	"fmt"
	"strings"

	"git.home.luguber.info/inful/llmstxt/internal/docs"
)

// docsPrefix is stripped from link targets before matching them against
// loaded document paths, which are relative to the docs directory.
const docsPrefix = "docs/"

const indexSummary = `> A comprehensive Flutter application framework for rapid development with adaptive UI, service architecture, state management, and cloud synchronization capabilities. Zero-configuration setup with 30+ built-in services, complete UI system switching (Material/Cupertino/ForUI), offline-first architecture with cloud sync, and reactive state management using Signals.

Key Features:
- 🚀 **5-minute app creation** - Single function call creates fully-featured app
- 🎨 **Complete UI system switching** - Entire app adapts between Material, Cupertino, and ForUI design systems
- 🔧 **30+ built-in services** - Authentication, database, networking, file storage, preferences, and more
- 📱 **Responsive navigation** - Automatic adaptation: bottom tabs → navigation rail → sidebar
- ☁️ **Offline-first architecture** - Local database with automatic cloud sync via Supabase
- 🔄 **Reactive state management** - Signals-based reactivity with granular UI updates
- 🛠️ **Service inspector** - Real-time debugging and monitoring of all services

`

// BuildIndex assembles the navigation index (llms.txt). A curated link is
// emitted only when a loaded document matches its target; section headers are
// always emitted, even when every link in the section was pruned.
func BuildIndex(title string, files []docs.DocFile) string {
	loaded := make(map[string]struct{}, len(files))
	for _, f := range files {
		loaded[f.Path] = struct{}{}
	}

	var b strings.Builder
	b.WriteString("# " + title + "\n\n")
	b.WriteString(indexSummary)

	for _, section := range indexSections() {
		b.WriteString(section.Title + "\n")
		for _, link := range section.Links {
			if _, ok := loaded[strings.TrimPrefix(link.Path, docsPrefix)]; !ok {
				continue
			}
			fmt.Fprintf(&b, "- [%s](%s) - %s\n", link.Title, link.Path, link.Description)
		}
		b.WriteString("\n")
	}

	return b.String()
}
