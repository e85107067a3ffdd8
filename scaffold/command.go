package scaffold

import (
	"context"
	"io"
	"log"
	"os"
	"strings"

	"github.com/kxue43/project-creator/runner"
)

type (
	NewProjectCmd struct {
		Settings    Settings `embed:""`
		RemoteURL   string   `arg:"" required:"" name:"RemoteURL" help:"URL of the remote repository. Registered as origin."`
		Name        string   `name:"name" short:"n" help:"Project name. Derived from RemoteURL when omitted."`
		BasePath    string   `name:"base-path" type:"existingdir" default:"." help:"Folder to create the project directory in."`
		Output      string   `name:"output" short:"o" enum:"text,yaml" default:"text" help:"Format of the success report (text, yaml)."`
		FirstCommit bool     `name:"first-commit" default:"true" negatable:"" help:"Commit the scaffolded files and push them to origin."`
	}
)

func (c *NewProjectCmd) AfterApply() error {
	if c.Name == "" {
		c.Name = DeriveProjectName(strings.TrimSpace(c.RemoteURL))
	}

	return nil
}

func (c *NewProjectCmd) Request() Request {
	return Request{
		ProjectName:   strings.TrimSpace(c.Name),
		LocalBasePath: c.BasePath,
		RemoteURL:     strings.TrimSpace(c.RemoteURL),
		InitialCommit: c.FirstCommit,
	}
}

func (c *NewProjectCmd) Run() error {
	logger := log.New(os.Stderr, "project-creator: ", 0)

	return c.run(context.Background(), runner.Exec{}, logger, os.Stdout)
}

func (c *NewProjectCmd) run(ctx context.Context, r runner.Runner, logger Logger, out io.Writer) error {
	s, err := New(r, logger, c.Settings)
	if err != nil {
		return err
	}

	report, err := s.Scaffold(ctx, c.Request())
	if err != nil {
		return err
	}

	return report.Write(out, c.Output)
}
