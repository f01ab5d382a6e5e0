package llms

// IndexLink is one curated entry in the navigation index.
type IndexLink struct {
	Title       string
	Path        string // link target as emitted, including the docs/ prefix
	Description string
}

// IndexSection groups curated links under a fixed heading. The section list
// is defined here in source, not derived from the document table: the index
// is an editorial artifact, the table only decides which links survive.
type IndexSection struct {
	Title string
	Links []IndexLink
}

func indexSections() []IndexSection {
	return []IndexSection{
		{
			Title: "## Getting Started",
			Links: []IndexLink{
				{"Getting Started Guide", "docs/getting-started.md", "Step-by-step tutorial to build your first app in 5-10 minutes with working code examples"},
				{"Installation & Setup", "docs/installation.md", "Detailed installation instructions and project setup"},
			},
		},
		{
			Title: "## Architecture & Core Concepts",
			Links: []IndexLink{
				{"Architecture Overview", "docs/architecture.md", "Service-oriented architecture, dependency injection, adaptive UI factory pattern, and reactive state management"},
				{"Services Documentation", "docs/services/README.md", "Complete guide to 30+ built-in services including database, authentication, networking, and file storage"},
				{"Framework Specification", "docs/flutter_app_shell_spec.md", "Comprehensive technical specification covering all framework components and design decisions"},
			},
		},
		{
			Title: "## UI & Design Systems",
			Links: []IndexLink{
				{"Adaptive UI Systems", "docs/ui-systems/README.md", "Complete guide to Material, Cupertino, and ForUI with factory pattern implementation and visual examples"},
				{"Component Library", "docs/ui-systems/components.md", "30+ adaptive widgets with platform-specific implementations and usage examples"},
			},
		},
		{
			Title: "## Implementation Guides",
			Links: []IndexLink{
				{"Common Patterns", "docs/examples/patterns.md", "Real-world code examples for authentication flows, data management, UI composition, navigation, and performance optimization"},
				{"Best Practices", "docs/reference/best-practices.md", "Guidelines for maintainable, performant code with common pitfalls to avoid and recommended patterns"},
				{"Migration Guide", "docs/migration-guide.md", "Comprehensive guide for migrating existing Flutter apps with incremental adoption strategies"},
			},
		},
		{
			Title: "## Optional",
			Links: []IndexLink{
				{"Database Service", "docs/services/database.md", "NoSQL document database with Isar backend, reactive queries, cloud sync, and conflict resolution"},
				{"API Reference", "docs/api/README.md", "Complete API documentation for all services and components"},
				{"Advanced Topics", "docs/advanced/README.md", "Custom services, performance optimization, and extending the framework"},
			},
		},
	}
}
