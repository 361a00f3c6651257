package console

import (
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Choice is one stored key together with what is remembered for it.
type Choice struct {
	Key    string
	Value  string
	Secret bool
}

// PickOptions configure the key picker.
type PickOptions struct {
	Streams
	Title   string
	Choices []Choice
}

// PickKey shows every key next to its remembered value and returns the index of
// the one the user picked. The cursor wraps around at both ends.
func PickKey(opts PickOptions) (int, error) {
	if len(opts.Choices) == 0 {
		return -1, errors.New("nothing to pick from")
	}

	m, err := opts.run(pickModel{opts: opts})
	if err != nil {
		return -1, err
	}

	final := m.(pickModel)
	if final.cancelled {
		return -1, ErrCancelled
	}
	return final.cursor, nil
}

type pickModel struct {
	opts      PickOptions
	cursor    int
	cancelled bool
}

func (m pickModel) Init() tea.Cmd {
	return nil
}

func (m pickModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	n := len(m.opts.Choices)
	switch key.String() {
	case "up", "k", "shift+tab":
		m.cursor = (m.cursor + n - 1) % n
	case "down", "j", "tab":
		m.cursor = (m.cursor + 1) % n
	case "enter":
		return m, tea.Quit
	case "esc", "ctrl+c":
		m.cancelled = true
		return m, tea.Quit
	}
	return m, nil
}

func (m pickModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.opts.Title))
	b.WriteString("\n\n")

	for i, choice := range m.opts.Choices {
		marker, name := "  ", nameStyle.Render(choice.Key)
		if i == m.cursor {
			marker, name = activeStyle.Render("> "), activeStyle.Width(16).Render(choice.Key)
		}
		b.WriteString(marker + name + dimStyle.Render(display(choice.Value, choice.Secret)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(hintStyle.Render("up/down to move, enter to edit, esc to cancel"))
	b.WriteString("\n")

	return b.String()
}
