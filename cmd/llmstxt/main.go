package main

import (
	"log/slog"

	"git.home.luguber.info/inful/llmstxt/cmd/llmstxt/commands"
	"git.home.luguber.info/inful/llmstxt/internal/version"
	"github.com/alecthomas/kong"
)

func main() {
	cli := commands.CLI{}
	ctx := kong.Parse(&cli,
		kong.Name("llmstxt"),
		kong.Description("Generate llms.txt artifacts from project documentation"),
		kong.UsageOnError(),
		kong.Vars{"version": version.Version},
	)

	err := ctx.Run(&commands.Global{Logger: slog.Default()}, &cli)
	ctx.FatalIfErrorf(err)
}
