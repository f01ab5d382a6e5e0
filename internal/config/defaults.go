package config

// Defaults for the zero-config invocation. The document table mirrors the
// curated App Shell documentation set; adding a file on disk without a table
// entry has no effect on the generated artifacts.
const (
	DefaultTitle     = "Flutter App Shell"
	DefaultDocsDir   = "docs"
	DefaultOutputDir = "."
	DefaultPriority  = 5
)

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Title:     DefaultTitle,
		DocsDir:   DefaultDocsDir,
		OutputDir: DefaultOutputDir,
		Docs:      DefaultDocs(),
	}
}

// DefaultDocs returns the built-in document table. Order matters: it breaks
// ties between entries sharing a priority value.
func DefaultDocs() []DocEntry {
	return []DocEntry{
		{
			Path:        "README.md",
			Title:       "Documentation Index",
			Description: "Complete navigation hub for all Flutter App Shell documentation",
			Priority:    1,
		},
		{
			Path:        "getting-started.md",
			Title:       "Getting Started Guide",
			Description: "Step-by-step tutorial to build your first app in 5-10 minutes",
			Priority:    1,
		},
		{
			Path:        "architecture.md",
			Title:       "Architecture Overview",
			Description: "Service-oriented architecture, adaptive UI, and reactive state management principles",
			Priority:    2,
		},
		{
			Path:        "ui-systems/README.md",
			Title:       "Adaptive UI Systems",
			Description: "Complete guide to Material, Cupertino, and ForUI with implementation details",
			Priority:    2,
		},
		{
			Path:        "services/README.md",
			Title:       "Services Documentation",
			Description: "Overview of all 30+ services with architecture patterns and integration guide",
			Priority:    2,
		},
		{
			Path:        "examples/patterns.md",
			Title:       "Common Patterns & Examples",
			Description: "Real-world code examples for authentication, data management, UI patterns, and performance",
			Priority:    3,
		},
		{
			Path:        "migration-guide.md",
			Title:       "Migration Guide",
			Description: "Comprehensive guide for migrating existing Flutter apps with proven strategies",
			Priority:    3,
		},
		{
			Path:        "reference/best-practices.md",
			Title:       "Best Practices & Guidelines",
			Description: "Guidelines for maintainable, performant code with common pitfalls to avoid",
			Priority:    3,
		},
		{
			Path:        "services/database.md",
			Title:       "Database Service",
			Description: "NoSQL document database with reactive queries, cloud sync, and offline-first architecture",
			Priority:    4,
		},
		{
			Path:        "flutter_app_shell_spec.md",
			Title:       "Framework Specification",
			Description: "Comprehensive technical specification and design document",
			Priority:    5,
		},
	}
}
