package tui

import (
	"strings"

	"github.com/kxue43/project-creator/scaffold"
)

type (
	Field int

	// State is everything the form knows. It only changes through its methods, each returning
	// the next state with derived values already recomputed.
	State struct {
		ProjectName string
		BasePath    string
		RemoteURL   string
		FirstCommit bool
	}
)

const (
	ProjectName Field = iota
	BasePath
	RemoteURL
	fieldCount
)

// Set changes one field. A non-empty RemoteURL also replaces ProjectName with the name derived from it.
func (s State) Set(f Field, value string) State {
	switch f {
	case ProjectName:
		s.ProjectName = value
	case BasePath:
		s.BasePath = value
	case RemoteURL:
		s.RemoteURL = value

		if value != "" {
			s.ProjectName = scaffold.DeriveProjectName(value)
		}
	}

	return s
}

func (s State) Get(f Field) string {
	switch f {
	case ProjectName:
		return s.ProjectName
	case BasePath:
		return s.BasePath
	case RemoteURL:
		return s.RemoteURL
	default:
		return ""
	}
}

func (s State) ToggleFirstCommit() State {
	s.FirstCommit = !s.FirstCommit

	return s
}

func (s State) SubmitEnabled() bool {
	return strings.TrimSpace(s.ProjectName) != "" && strings.TrimSpace(s.RemoteURL) != ""
}

func (s State) Request() scaffold.Request {
	return scaffold.Request{
		ProjectName:   strings.TrimSpace(s.ProjectName),
		LocalBasePath: strings.TrimSpace(s.BasePath),
		RemoteURL:     strings.TrimSpace(s.RemoteURL),
		InitialCommit: s.FirstCommit,
	}
}
