package commands

import (
	"fmt"
	"os"

	"git.home.luguber.info/inful/llmstxt/internal/config"
	"git.home.luguber.info/inful/llmstxt/internal/lint"
)

// LintCmd implements the 'lint' command.
type LintCmd struct {
	DocsDir string `name:"docs-dir" short:"d" help:"Path to the documentation directory" default:"docs"`
	Quiet   bool   `short:"q" help:"Quiet mode: only show errors, suppress warnings"`
}

func (l *LintCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.LoadOrDefault(root.Config)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	docsDir := resolveDir(l.DocsDir, "docs", cfg.DocsDir)
	if _, err := os.Stat(docsDir); os.IsNotExist(err) {
		return fmt.Errorf("docs directory does not exist: %s", docsDir)
	}

	issues := lint.NewLinter(docsDir).Run(cfg.Docs)
	for _, issue := range issues {
		if l.Quiet && issue.Severity != lint.SeverityError {
			continue
		}
		fmt.Println(issue.String())
	}

	if n := lint.Errors(issues); n > 0 {
		return fmt.Errorf("lint found %d error(s)", n)
	}
	fmt.Printf("Checked %d document(s), no errors\n", len(cfg.Docs))
	return nil
}
