package main

import (
	"github.com/alecthomas/kong"

	"github.com/kxue43/project-creator/config"
	"github.com/kxue43/project-creator/scaffold"
	"github.com/kxue43/project-creator/tui"
	"github.com/kxue43/project-creator/version"
)

type CLI struct {
	Version kong.VersionFlag       `name:"version" help:"Show version information and quit."`
	New     scaffold.NewProjectCmd `cmd:"" name:"new" help:"Create a project non-interactively."`
	Form    tui.FormCmd            `cmd:"" name:"form" default:"1" help:"Fill in the project form in the terminal (default)."`
}

func main() {
	var cli CLI

	options := []kong.Option{
		kong.Name("project-creator"),
		kong.Description("Create a Python project with a git repository, a remote origin and a virtual environment."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Vars{"version": version.FromBuildInfo()},
	}

	if path := config.DefaultPath(); path != "" {
		options = append(options, kong.Configuration(config.TOML, path))
	}

	ctx := kong.Parse(&cli, options...)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
