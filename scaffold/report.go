package scaffold

import (
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
)

type (
	Report struct {
		ProjectName string `yaml:"project"`
		ProjectPath string `yaml:"path"`
		RemoteURL   string `yaml:"remote"`
		Branch      string `yaml:"branch,omitempty"`
		VenvCreated bool   `yaml:"venv_created"`
		Pushed      bool   `yaml:"pushed"`
	}
)

const (
	OutputText = "text"
	OutputYAML = "yaml"
)

func (r Report) Message() string {
	var msg string

	if r.Pushed {
		msg = fmt.Sprintf("Project '%s' has been created and pushed to the remote repository %s.", r.ProjectName, r.RemoteURL)
	} else {
		msg = fmt.Sprintf("Project '%s' has been created at %s with remote origin %s.", r.ProjectName, r.ProjectPath, r.RemoteURL)
	}

	if !r.VenvCreated {
		msg += " The virtual environment could not be created."
	}

	return msg
}

// Write renders the report as [OutputText] or [OutputYAML].
func (r Report) Write(w io.Writer, format string) error {
	switch format {
	case OutputYAML:
		contents, err := yaml.Marshal(r)
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}

		_, err = w.Write(contents)

		return err
	case OutputText, "":
		_, err := fmt.Fprintln(w, r.Message())

		return err
	default:
		return fmt.Errorf("unknown report format %q", format)
	}
}
