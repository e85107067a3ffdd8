// Package tui is the interactive front end: a form with the project name, the local base
// path, the remote repository URL and a first-commit checkbox.
package tui

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"github.com/kxue43/project-creator/scaffold"
)

type (
	Scaffolder interface {
		Scaffold(context.Context, scaffold.Request) (scaffold.Report, error)
	}

	Model struct {
		scaffolder Scaffolder
		dump       io.Writer
		help       help.Model
		picker     filepicker.Model
		inputs     [fieldCount]textinput.Model
		status     string
		state      State
		focus      int
		failed     bool
		picking    bool
		working    bool
	}

	doneMsg struct {
		err    error
		report scaffold.Report
	}

	fieldKeyMap struct {
		pick bool
	}

	buttonKeyMap struct {
		toggle bool
	}

	pickerKeyMap struct{}
)

const (
	focusCheckbox = int(fieldCount)
	focusSubmit   = focusCheckbox + 1
	focusCount    = focusSubmit + 1
)

var (
	keys = struct {
		next   key.Binding
		prev   key.Binding
		pick   key.Binding
		clear  key.Binding
		toggle key.Binding
		submit key.Binding
		close  key.Binding
		here   key.Binding
		help   key.Binding
		quit   key.Binding
	}{
		next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab/↓", "next"),
		),
		prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab/↑", "previous"),
		),
		pick: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "choose folder"),
		),
		clear: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("ctrl+x", "clear"),
		),
		toggle: key.NewBinding(
			key.WithKeys("x", " "),
			key.WithHelp("x/space", "tick/untick"),
		),
		submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("↵", "create project"),
		),
		close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close picker"),
		),
		here: key.NewBinding(
			key.WithKeys("."),
			key.WithHelp(".", "use this folder"),
		),
		help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}

	labels = [fieldCount]string{
		ProjectName: "Project Name:    ",
		BasePath:    "Local Base Path: ",
		RemoteURL:   "Remote Repo URL: ",
	}

	palette = struct {
		magenta lipgloss.Color
		gray    lipgloss.Color
		red     lipgloss.Color
		green   lipgloss.Color
	}{
		magenta: lipgloss.Color("212"),
		gray:    lipgloss.Color("240"),
		red:     lipgloss.Color("9"),
		green:   lipgloss.Color("10"),
	}

	highlightedStyle = lipgloss.NewStyle().Foreground(palette.magenta)
	disabledStyle    = lipgloss.NewStyle().Foreground(palette.gray)
	errorStyle       = lipgloss.NewStyle().Foreground(palette.red)
	successStyle     = lipgloss.NewStyle().Foreground(palette.green)
	titleStyle       = lipgloss.NewStyle().Bold(true)
)

func (km fieldKeyMap) ShortHelp() []key.Binding {
	if km.pick {
		return []key.Binding{keys.next, keys.pick, keys.quit}
	}

	return []key.Binding{keys.next, keys.clear, keys.quit}
}

func (km fieldKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{km.ShortHelp()}
}

func (km buttonKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{keys.help, keys.quit}
}

func (km buttonKeyMap) FullHelp() [][]key.Binding {
	action := keys.submit
	if km.toggle {
		action = keys.toggle
	}

	return [][]key.Binding{
		{keys.next, keys.prev, action},
		{keys.help, keys.quit},
	}
}

func (pickerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{keys.here, keys.close}
}

func (km pickerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{km.ShortHelp()}
}

// NewModel builds the form with initial as its starting state.
// When dump is not nil every message the model receives is dumped into it.
func NewModel(s Scaffolder, initial State, dump io.Writer) Model {
	m := Model{
		scaffolder: s,
		dump:       dump,
		help:       help.New(),
		picker:     filepicker.New(),
		state:      initial,
	}

	m.picker.DirAllowed = true
	m.picker.FileAllowed = false

	for i := range m.inputs {
		ti := textinput.New()
		ti.CharLimit = 512
		ti.Width = 50
		ti.Prompt = " "
		ti.SetValue(initial.Get(Field(i)))

		m.inputs[i] = ti
	}

	m.inputs[RemoteURL].Placeholder = "https://github.com/owner/repo.git"
	m.inputs[ProjectName].Placeholder = "derived from the remote URL"
	m.inputs[ProjectName].Focus()

	return m
}

func (m Model) State() State {
	return m.state
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) focusedField() (Field, bool) {
	if m.focus < int(fieldCount) {
		return Field(m.focus), true
	}

	return 0, false
}

// apply pushes the edited input into the state and refreshes every input from the result.
func (m *Model) apply(f Field) {
	m.state = m.state.Set(f, m.inputs[f].Value())

	for i := range m.inputs {
		if v := m.state.Get(Field(i)); m.inputs[i].Value() != v {
			m.inputs[i].SetValue(v)
		}
	}
}

func (m *Model) moveFocus(delta int) tea.Cmd {
	if f, ok := m.focusedField(); ok {
		m.inputs[f].Blur()
	}

	m.focus = (m.focus + delta + focusCount) % focusCount
	m.help.ShowAll = false

	if f, ok := m.focusedField(); ok {
		return m.inputs[f].Focus()
	}

	return nil
}

func (m *Model) openPicker() tea.Cmd {
	dir := strings.TrimSpace(m.state.BasePath)

	if info, err := os.Stat(dir); dir == "" || err != nil || !info.IsDir() {
		dir = "."

		if home, err := os.UserHomeDir(); err == nil {
			dir = home
		}
	}

	m.picker.CurrentDirectory = dir
	m.picker.Path = ""
	m.picking = true

	return m.picker.Init()
}

func (m Model) scaffoldCmd(req scaffold.Request) tea.Cmd {
	s := m.scaffolder

	return func() tea.Msg {
		report, err := s.Scaffold(context.Background(), req)

		return doneMsg{report: report, err: err}
	}
}

func (m *Model) choose(dir string) {
	m.inputs[BasePath].SetValue(dir)
	m.apply(BasePath)
	m.picking = false
}

func (m *Model) pickerUpdate(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.close):
		m.picking = false

		return nil
	case key.Matches(msg, keys.here):
		m.choose(m.picker.CurrentDirectory)

		return nil
	}

	var cmd tea.Cmd

	m.picker, cmd = m.picker.Update(msg)

	if m.picker.Path != "" {
		m.choose(m.picker.Path)
	}

	return cmd
}

func (m *Model) buttonUpdate(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.help):
		m.help.ShowAll = !m.help.ShowAll
	case m.focus == focusCheckbox && key.Matches(msg, keys.toggle):
		m.state = m.state.ToggleFirstCommit()
	case m.focus == focusSubmit && key.Matches(msg, keys.submit) && m.state.SubmitEnabled():
		m.working = true
		m.failed = false
		m.status = "Creating project ..."

		return m.scaffoldCmd(m.state.Request())
	}

	return nil
}

func (m *Model) fieldUpdate(f Field, msg tea.KeyMsg) tea.Cmd {
	switch {
	case f == BasePath && key.Matches(msg, keys.pick):
		return m.openPicker()
	case key.Matches(msg, keys.clear):
		m.inputs[f].SetValue("")
		m.apply(f)

		return nil
	case key.Matches(msg, keys.submit):
		return m.moveFocus(1)
	}

	var cmd tea.Cmd

	m.inputs[f], cmd = m.inputs[f].Update(msg)
	m.apply(f)

	return cmd
}

func (m *Model) keyUpdate(msg tea.KeyMsg) tea.Cmd {
	switch {
	case m.picking && msg.Type != tea.KeyCtrlC:
		return m.pickerUpdate(msg)
	case key.Matches(msg, keys.quit):
		return tea.Quit
	case m.working:
		return nil
	case key.Matches(msg, keys.next):
		return m.moveFocus(1)
	case key.Matches(msg, keys.prev):
		return m.moveFocus(-1)
	}

	if f, ok := m.focusedField(); ok {
		return m.fieldUpdate(f, msg)
	}

	return m.buttonUpdate(msg)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.dump != nil {
		spew.Fdump(m.dump, msg)
	}

	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		m.picker, cmd = m.picker.Update(msg)

		return m, cmd
	case doneMsg:
		m.working = false
		m.failed = msg.err != nil

		if m.failed {
			m.status = msg.err.Error()
		} else {
			m.status = msg.report.Message()
		}

		return m, nil
	case tea.KeyMsg:
		cmd = m.keyUpdate(msg)

		return m, cmd
	}

	// Directory listings for the picker and cursor blinks.
	cmds := make([]tea.Cmd, 0, 2)

	m.picker, cmd = m.picker.Update(msg)
	cmds = append(cmds, cmd)

	if f, ok := m.focusedField(); ok {
		m.inputs[f], cmd = m.inputs[f].Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) cursor(focus int) string {
	if m.focus == focus {
		return highlightedStyle.Render("> ")
	}

	return "  "
}

func (m Model) View() string {
	var b strings.Builder

	if m.picking {
		b.WriteString(titleStyle.Render("Choose the local base path"))
		b.WriteString("\n\n")
		b.WriteString(m.picker.View())
		b.WriteString("\n")
		b.WriteString(m.help.View(pickerKeyMap{}))
		b.WriteRune('\n')

		return b.String()
	}

	b.WriteString(titleStyle.Render("Create a new project"))
	b.WriteString("\n\n")

	for i := range m.inputs {
		b.WriteString(m.cursor(i))
		b.WriteString(labels[i])
		b.WriteString(m.inputs[i].View())
		b.WriteRune('\n')
	}

	b.WriteRune('\n')

	box := "[ ]"
	if m.state.FirstCommit {
		box = "[x]"
	}

	b.WriteString(m.cursor(focusCheckbox))
	b.WriteString(box + " Perform first commit")
	b.WriteString("\n\n")

	b.WriteString(m.cursor(focusSubmit))

	button := "[ Create Project ]"

	switch {
	case m.working || !m.state.SubmitEnabled():
		b.WriteString(disabledStyle.Render(button))
	case m.focus == focusSubmit:
		b.WriteString(highlightedStyle.Render(button))
	default:
		b.WriteString(button)
	}

	b.WriteString("\n\n")

	if m.status != "" {
		if m.failed {
			b.WriteString(errorStyle.Render(m.status))
		} else {
			b.WriteString(successStyle.Render(m.status))
		}

		b.WriteString("\n\n")
	}

	f, ok := m.focusedField()

	switch {
	case ok:
		b.WriteString(m.help.View(fieldKeyMap{pick: f == BasePath}))
	default:
		b.WriteString(m.help.View(buttonKeyMap{toggle: m.focus == focusCheckbox}))
	}

	b.WriteRune('\n')

	return b.String()
}
