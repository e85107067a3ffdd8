package tui

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kxue43/project-creator/scaffold"
)

type MockScaffolder struct {
	err      error
	requests []scaffold.Request
}

func (m *MockScaffolder) Scaffold(_ context.Context, req scaffold.Request) (scaffold.Report, error) {
	m.requests = append(m.requests, req)

	if m.err != nil {
		return scaffold.Report{}, m.err
	}

	return scaffold.Report{
		ProjectName: req.ProjectName,
		ProjectPath: req.ProjectPath(),
		RemoteURL:   req.RemoteURL,
		VenvCreated: true,
		Pushed:      req.InitialCommit,
	}, nil
}

func press(t *testing.T, m Model, msgs ...tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()

	var (
		next tea.Model
		cmd  tea.Cmd
	)

	for _, msg := range msgs {
		next, cmd = m.Update(msg)

		var ok bool

		m, ok = next.(Model)
		require.True(t, ok, "Update should return a Model")
	}

	return m, cmd
}

func typeText(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	tab      = tea.KeyMsg{Type: tea.KeyTab}
	shiftTab = tea.KeyMsg{Type: tea.KeyShiftTab}
	enter    = tea.KeyMsg{Type: tea.KeyEnter}
	esc      = tea.KeyMsg{Type: tea.KeyEsc}
	clearKey = tea.KeyMsg{Type: tea.KeyCtrlX}
	tick     = typeText("x")
)

func TestModelDerivesNameWhileTyping(t *testing.T) {
	m := NewModel(&MockScaffolder{}, State{BasePath: "/src", FirstCommit: true}, nil)

	m, _ = press(t, m, tab, tab, typeText("https://example.com/foo/bar"))
	assert.Equal(t, "bar", m.State().ProjectName)
	assert.Equal(t, "bar", m.inputs[ProjectName].Value(), "the name input follows the state")

	m, _ = press(t, m, typeText(".git"))
	assert.Equal(t, "bar", m.State().ProjectName)
	assert.Equal(t, "https://example.com/foo/bar.git", m.State().RemoteURL)
}

func TestModelSubmitDisabledUntilFilled(t *testing.T) {
	scaffolder := &MockScaffolder{}
	m := NewModel(scaffolder, State{BasePath: "/src", FirstCommit: true}, nil)

	// Jump straight to the submit button.
	m, cmd := press(t, m, shiftTab, enter)
	assert.Nil(t, cmd)
	assert.False(t, m.working)
	assert.Contains(t, m.View(), "[ Create Project ]")

	m, cmd = press(t, m, tab, typeText("demo"), shiftTab, enter)
	assert.Nil(t, cmd)
	assert.Empty(t, scaffolder.requests, "a name alone does not enable submit")

	assert.Equal(t, "demo", m.State().ProjectName)
	assert.False(t, m.State().SubmitEnabled())
}

func TestModelSubmit(t *testing.T) {
	scaffolder := &MockScaffolder{}
	m := NewModel(scaffolder, State{BasePath: "/src", FirstCommit: true}, nil)

	m, _ = press(t, m, tab, tab, typeText("https://example.com/foo/bar.git"), tab, tick, tab)
	require.False(t, m.State().FirstCommit)

	m, cmd := press(t, m, enter)
	require.NotNil(t, cmd, "submit should start scaffolding")
	assert.True(t, m.working)

	// Keys other than quit are ignored while working.
	m, next := press(t, m, shiftTab)
	assert.Nil(t, next)
	assert.Equal(t, focusSubmit, m.focus)

	msg := cmd()

	next2, _ := m.Update(msg)
	m = next2.(Model)

	assert.False(t, m.working)
	assert.False(t, m.failed)
	assert.Equal(t, []scaffold.Request{{
		ProjectName:   "bar",
		LocalBasePath: "/src",
		RemoteURL:     "https://example.com/foo/bar.git",
		InitialCommit: false,
	}}, scaffolder.requests)
	assert.Contains(t, m.View(), "Project 'bar' has been created at /src/bar")
}

func TestModelSubmitFailure(t *testing.T) {
	scaffolder := &MockScaffolder{err: fmt.Errorf("%w: git remote add origin exited with code 3", scaffold.ErrRemoteAdd)}
	m := NewModel(scaffolder, State{BasePath: "/src", RemoteURL: "https://example.com/foo/bar.git", ProjectName: "bar"}, nil)

	m, cmd := press(t, m, shiftTab, enter)
	require.NotNil(t, cmd)

	next, _ := m.Update(cmd())
	m = next.(Model)

	assert.True(t, m.failed)
	assert.True(t, errors.Is(scaffolder.err, scaffold.ErrRemoteAdd))
	assert.Contains(t, m.View(), "failed to add remote repository")
}

func TestModelClearField(t *testing.T) {
	m := NewModel(&MockScaffolder{}, State{ProjectName: "bar", RemoteURL: "https://example.com/foo/bar.git"}, nil)

	m, _ = press(t, m, clearKey)
	assert.Empty(t, m.State().ProjectName)
	assert.False(t, m.State().SubmitEnabled())

	m, _ = press(t, m, tab, tab, clearKey)
	assert.Empty(t, m.State().RemoteURL)
	assert.Empty(t, m.inputs[RemoteURL].Value())
}

func TestModelFocusWraps(t *testing.T) {
	m := NewModel(&MockScaffolder{}, State{}, nil)

	m, _ = press(t, m, shiftTab)
	assert.Equal(t, focusSubmit, m.focus)

	m, _ = press(t, m, tab)
	assert.Equal(t, 0, m.focus)
	assert.True(t, m.inputs[ProjectName].Focused())

	m, _ = press(t, m, enter)
	assert.Equal(t, int(BasePath), m.focus, "enter in a field moves to the next one")
	assert.False(t, m.inputs[ProjectName].Focused())
	assert.True(t, m.inputs[BasePath].Focused())
}

func TestModelPicker(t *testing.T) {
	dir := t.TempDir()
	m := NewModel(&MockScaffolder{}, State{BasePath: dir}, nil)

	m, cmd := press(t, m, tab, tea.KeyMsg{Type: tea.KeyCtrlO})
	assert.True(t, m.picking)
	assert.NotNil(t, cmd)
	assert.Equal(t, dir, m.picker.CurrentDirectory)
	assert.Contains(t, m.View(), "Choose the local base path")

	m, _ = press(t, m, esc)
	assert.False(t, m.picking, "esc closes the picker")

	_, cmd = press(t, m, esc)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd(), "esc on the form quits")
}

func TestModelDumpsMessages(t *testing.T) {
	var dump bytes.Buffer

	m := NewModel(&MockScaffolder{}, State{}, &dump)

	_, _ = press(t, m, typeText("a"))

	assert.Contains(t, dump.String(), "tea.KeyMsg")
}

func TestModelPickerChoosesCurrentDirectory(t *testing.T) {
	dir := t.TempDir()
	m := NewModel(&MockScaffolder{}, State{BasePath: dir}, nil)

	m, _ = press(t, m, tab, tea.KeyMsg{Type: tea.KeyCtrlO})
	require.True(t, m.picking)
	assert.Contains(t, m.View(), "use this folder")

	m.picker.CurrentDirectory = filepath.Dir(dir)

	m, cmd := press(t, m, typeText("."))
	assert.Nil(t, cmd)
	assert.False(t, m.picking)
	assert.Equal(t, filepath.Dir(dir), m.State().BasePath)
	assert.Equal(t, filepath.Dir(dir), m.inputs[BasePath].Value())
	assert.Equal(t, int(BasePath), m.focus)
}
