package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kxue43/project-creator/console"
	"github.com/kxue43/project-creator/runner"
	"github.com/kxue43/project-creator/scaffold"
)

type (
	FormCmd struct {
		Settings     scaffold.Settings `embed:""`
		BasePath     string            `name:"base-path" type:"existingdir" default:"." help:"Starting value of the local base path field."`
		DumpMessages string            `name:"dump-messages" type:"path" help:"Dump every terminal UI message into this file for debugging."`
		FirstCommit  bool              `name:"first-commit" default:"true" negatable:"" help:"Starting state of the first commit checkbox."`
	}
)

func (c *FormCmd) InitialState() State {
	return State{BasePath: c.BasePath, FirstCommit: c.FirstCommit}
}

// Run blocks until the form is closed. Scaffolding diagnostics are printed to stderr afterwards.
func (c *FormCmd) Run() (err error) {
	logs := console.NewBuffer("project-creator: ", 0)

	defer func() {
		err = errors.Join(err, logs.FlushTo(os.Stderr))
	}()

	s, err := scaffold.New(runner.Exec{}, logs, c.Settings)
	if err != nil {
		return err
	}

	var dump io.Writer

	if c.DumpMessages != "" {
		fd, err := os.OpenFile(filepath.Clean(c.DumpMessages), os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
		if err != nil {
			return fmt.Errorf("failed to open %q for message dumps: %w", c.DumpMessages, err)
		}

		defer func() { _ = fd.Close() }()

		dump = fd
	}

	p := tea.NewProgram(NewModel(s, c.InitialState(), dump))
	if _, err = p.Run(); err != nil {
		return fmt.Errorf("terminal UI failed: %w", err)
	}

	return nil
}
