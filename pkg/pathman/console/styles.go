// Package console holds the interactive prompts pathman shows on a terminal.
package console

import (
	"errors"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	constants "github.com/ImGajeed76/pathman/internal"
)

// ErrCancelled is returned when the user leaves a prompt with esc or ctrl+c.
var ErrCancelled = errors.New("input cancelled")

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(constants.Theme.PrimaryColor)).
			Bold(true)

	activeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(constants.Theme.PrimaryColor)).
			Bold(true)

	textStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(constants.Theme.SecondaryColor))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(constants.Theme.TertiaryColor))

	hintStyle = dimStyle.Italic(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(constants.Theme.ErrorColor)).
			Italic(true)

	// nameStyle pads key names into a column.
	nameStyle = textStyle.Width(16)
)

// Streams redirects a prompt away from the process terminal. Nil fields keep the
// bubbletea defaults.
type Streams struct {
	In  io.Reader
	Out io.Writer
}

func (s Streams) run(model tea.Model) (tea.Model, error) {
	var opts []tea.ProgramOption
	if s.In != nil {
		opts = append(opts, tea.WithInput(s.In))
	}
	if s.Out != nil {
		opts = append(opts, tea.WithOutput(s.Out))
	}
	return tea.NewProgram(model, opts...).Run()
}

const unset = "(unset)"

// display renders a stored value for a listing. Secrets never show their content.
func display(value string, secret bool) string {
	switch {
	case value == "":
		return unset
	case secret:
		return strings.Repeat("•", 8)
	}
	return value
}
