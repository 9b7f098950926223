package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrCanceled is returned when the user aborts an interactive prompt.
var ErrCanceled = errors.New("canceled")

// confirmModel is a minimal y/n prompt.
type confirmModel struct {
	question string
	answer   bool
}

func (m confirmModel) Init() tea.Cmd { return nil }

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "y", "Y":
			m.answer = true
			return m, tea.Quit
		case "n", "N", "esc", "ctrl+c", "q":
			m.answer = false
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m confirmModel) View() string {
	return promptStyle.Render(m.question) + subtleStyle.Render(" [y/N] ") + "\n"
}

// ConfirmOverwrite asks whether to scaffold into a non-empty destination.
func ConfirmOverwrite(root string) (bool, error) {
	m := confirmModel{question: "Destination " + root + " is not empty. Overwrite existing files?"}
	out, err := tea.NewProgram(m).Run()
	if err != nil {
		return false, err
	}
	return out.(confirmModel).answer, nil
}

// nameModel wraps a textinput for the project name wizard step.
type nameModel struct {
	input    textinput.Model
	done     bool
	canceled bool
}

func newNameModel() nameModel {
	ti := textinput.New()
	ti.Placeholder = "Project Name"
	ti.CharLimit = 50
	ti.Width = 40
	ti.Focus()
	return nameModel{input: ti}
}

func (m nameModel) Init() tea.Cmd { return textinput.Blink }

func (m nameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			m.done = true
			return m, tea.Quit
		case "esc", "ctrl+c":
			m.canceled = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m nameModel) View() string {
	return promptStyle.Render("Name your project") + "\n" + m.input.View() + "\n"
}

// PromptProjectName runs the interactive name prompt and returns the entered
// name, trimmed. Returns ErrCanceled if the user backs out.
func PromptProjectName() (string, error) {
	out, err := tea.NewProgram(newNameModel()).Run()
	if err != nil {
		return "", err
	}
	m := out.(nameModel)
	if m.canceled {
		return "", ErrCanceled
	}
	return strings.TrimSpace(m.input.Value()), nil
}
