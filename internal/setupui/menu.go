// Package setupui implements the interactive setup menu: a small
// terminal UI for the occasional maintenance tasks (switching the
// targeted engine version, renaming the plugin, preparing an export)
// that do not warrant memorizing subcommand flags.
package setupui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Action is what the user picked from the menu.
type Action int

const (
	ActionNone Action = iota
	ActionVersion
	ActionRename
	ActionExport
)

// Result is the outcome of one menu session.
type Result struct {
	Action Action

	// Input is the free-form value entered for actions that need one:
	// the branch for ActionVersion, the new name for ActionRename.
	Input string
}

type item struct {
	label  string
	action Action
	prompt string // non-empty when the action needs text input
}

var items = []item{
	{label: "Change Godot target version", action: ActionVersion, prompt: "godot-cpp branch (e.g. 4.3): "},
	{label: "Rename plugin", action: ActionRename, prompt: "new plugin name: "},
	{label: "Prepare for export", action: ActionExport},
	{label: "Quit"},
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	faintStyle    = lipgloss.NewStyle().Faint(true)
)

// Model is the bubbletea model for the setup menu.
type Model struct {
	pluginName   string
	godotVersion string

	cursor   int
	entering bool
	input    []rune
	res      Result
}

// New returns a menu showing the current project state in its header.
func New(pluginName, godotVersion string) Model {
	return Model{pluginName: pluginName, godotVersion: godotVersion}
}

// Result returns what the session decided. Zero Action means the user quit.
func (m Model) Result() Result { return m.res }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.entering {
		return m.updateInput(key)
	}

	switch key.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(items)-1 {
			m.cursor++
		}
	case "enter":
		it := items[m.cursor]
		if it.action == ActionNone {
			return m, tea.Quit
		}
		if it.prompt == "" {
			m.res = Result{Action: it.action}
			return m, tea.Quit
		}
		m.entering = true
		m.input = nil
	}
	return m, nil
}

func (m Model) updateInput(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.entering = false
	case tea.KeyEnter:
		value := strings.TrimSpace(string(m.input))
		if value == "" {
			m.entering = false
			return m, nil
		}
		m.res = Result{Action: items[m.cursor].action, Input: value}
		return m, tea.Quit
	case tea.KeyBackspace:
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
	case tea.KeyRunes, tea.KeySpace:
		m.input = append(m.input, key.Runes...)
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("gdxbuild setup") + "\n\n")
	b.WriteString("Plugin: " + m.pluginName + "\n")
	b.WriteString("Godot version: " + m.godotVersion + "\n\n")

	if m.entering {
		b.WriteString(items[m.cursor].prompt + string(m.input) + "█\n")
		b.WriteString(faintStyle.Render("enter to confirm, esc to cancel") + "\n")
		return b.String()
	}

	for i, it := range items {
		line := "  " + it.label
		if i == m.cursor {
			line = selectedStyle.Render("> " + it.label)
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n" + faintStyle.Render("↑/↓ to move, enter to select, q to quit") + "\n")
	return b.String()
}

// Run drives one menu session on the terminal.
func Run(pluginName, godotVersion string) (Result, error) {
	final, err := tea.NewProgram(New(pluginName, godotVersion)).Run()
	if err != nil {
		return Result{}, err
	}
	return final.(Model).Result(), nil
}
