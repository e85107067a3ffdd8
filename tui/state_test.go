package tui

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kxue43/project-creator/scaffold"
)

func TestStateDerivesProjectName(t *testing.T) {
	var s State

	for _, prefix := range []string{"h", "https://example.com/foo/b", "https://example.com/foo/bar.g"} {
		s = s.Set(RemoteURL, prefix)
	}

	assert.Equal(t, "bar.g", s.ProjectName, "every keystroke re-derives the name")

	s = s.Set(RemoteURL, "https://example.com/foo/bar.git")
	assert.Equal(t, "bar", s.ProjectName)

	s = s.Set(ProjectName, "custom")
	assert.Equal(t, "custom", s.ProjectName)
	assert.Equal(t, "https://example.com/foo/bar.git", s.RemoteURL)

	s = s.Set(RemoteURL, "https://example.com/foo/baz")
	assert.Equal(t, "baz", s.ProjectName, "editing the URL overwrites a hand-typed name")

	s = s.Set(RemoteURL, "")
	assert.Equal(t, "baz", s.ProjectName, "clearing the URL keeps the last name")
}

func TestStateSubmitEnabled(t *testing.T) {
	values := map[string]string{
		"empty":     "",
		"blank":     "  ",
		"non-blank": "x",
	}

	for nameKind, name := range values {
		for urlKind, url := range values {
			t.Run(fmt.Sprintf("name %s url %s", nameKind, urlKind), func(t *testing.T) {
				s := State{ProjectName: name, RemoteURL: url}

				assert.Equal(t, nameKind == "non-blank" && urlKind == "non-blank", s.SubmitEnabled())
			})
		}
	}
}

func TestStateRequest(t *testing.T) {
	s := State{BasePath: " /src ", FirstCommit: true}.
		Set(RemoteURL, " https://example.com/foo/bar.git").
		ToggleFirstCommit().
		ToggleFirstCommit()

	assert.Equal(t, scaffold.Request{
		ProjectName:   "bar",
		LocalBasePath: "/src",
		RemoteURL:     "https://example.com/foo/bar.git",
		InitialCommit: true,
	}, s.Request())

	assert.False(t, s.ToggleFirstCommit().Request().InitialCommit)
}
