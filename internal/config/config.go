package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	Title     string     `yaml:"title,omitempty"`
	DocsDir   string     `yaml:"docs_dir,omitempty"`
	OutputDir string     `yaml:"output_dir,omitempty"`
	Docs      []DocEntry `yaml:"docs,omitempty"`
}

// DocEntry describes one documentation file the generator considers.
// Files outside this table are never picked up, even when present on disk.
type DocEntry struct {
	Path        string `yaml:"path"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Priority    int    `yaml:"priority,omitempty"` // lower = more important
}

// Load loads configuration from the specified file.
func Load(configPath string) (*Config, error) {
	// Load .env file if it exists; existing process env wins.
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Note: .env file couldn't be loaded: %v\n", err)
		}
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("configuration file not found: %s", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Expand environment variables in the YAML content
	expandedData := os.ExpandEnv(string(data))

	// Decode into a fresh config: yaml.v3 merges sequences into pre-existing
	// slice elements, which would leak default table fields into custom entries.
	config := &Config{}
	if err := yaml.Unmarshal([]byte(expandedData), config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// LoadOrDefault loads the configuration file when present and falls back to
// the built-in defaults when it is not. The zero-config invocation therefore
// behaves identically whether or not a config file exists.
func LoadOrDefault(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(configPath)
}

// applyDefaults fills in zero values left by a partial config file.
func (c *Config) applyDefaults() {
	if c.Title == "" {
		c.Title = DefaultTitle
	}
	if c.DocsDir == "" {
		c.DocsDir = DefaultDocsDir
	}
	if c.OutputDir == "" {
		c.OutputDir = DefaultOutputDir
	}
	if len(c.Docs) == 0 {
		c.Docs = DefaultDocs()
	}
	for i := range c.Docs {
		if c.Docs[i].Priority == 0 {
			c.Docs[i].Priority = DefaultPriority
		}
	}
}

// Validate checks the document table for inconsistencies that would silently
// corrupt the generated artifacts.
func (c *Config) Validate() error {
	seen := make(map[string]struct{}, len(c.Docs))
	for _, doc := range c.Docs {
		if doc.Path == "" {
			return fmt.Errorf("document entry missing path (title: %q)", doc.Title)
		}
		if doc.Title == "" {
			return fmt.Errorf("document entry missing title: %s", doc.Path)
		}
		if doc.Priority < 1 {
			return fmt.Errorf("document %s has invalid priority %d (must be >= 1)", doc.Path, doc.Priority)
		}
		if _, dup := seen[doc.Path]; dup {
			return fmt.Errorf("duplicate document path: %s", doc.Path)
		}
		seen[doc.Path] = struct{}{}
	}
	return nil
}

// Init creates a new configuration file with the built-in document table as
// example content.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", configPath)
	}

	data, err := yaml.Marshal(Default())
	if err != nil {
		return fmt.Errorf("failed to marshal example config: %w", err)
	}

	header := "# llmstxt configuration\n# Documents are emitted in ascending priority order (1 = most important).\n"
	if err := os.WriteFile(configPath, append([]byte(header), data...), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
