package commands

import (
	"fmt"
	"path/filepath"

	"git.home.luguber.info/inful/llmstxt/internal/config"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force  bool   `help:"Overwrite existing configuration file"`
	Output string `short:"o" name:"output" help:"Output directory for generated config file"`
}

func (i *InitCmd) Run(_ *Global, root *CLI) error {
	// If the user specified an output directory, place the config there as "llmstxt.yaml".
	if i.Output != "" {
		return runInit(filepath.Join(i.Output, "llmstxt.yaml"), i.Force)
	}
	return runInit(root.Config, i.Force)
}

func runInit(configPath string, force bool) error {
	fmt.Printf("Writing configuration to %s\n", configPath)
	if err := config.Init(configPath, force); err != nil {
		return err
	}
	fmt.Println("Initialized successfully")
	return nil
}
