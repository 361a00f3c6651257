package console

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// maxListed caps how many entries a confirmation prints before summarizing.
const maxListed = 8

// Entry is one path a confirmation is about.
type Entry struct {
	Path string
	Dir  bool
}

// ConfirmOptions describe a destructive step that needs an explicit yes.
type ConfirmOptions struct {
	Streams
	Question string
	Entries  []Entry
}

// Confirm lists the entries under the question and waits for an answer.
// Nothing is accepted unless the user moves to yes or presses y.
func Confirm(opts ConfirmOptions) (bool, error) {
	m, err := opts.run(confirmModel{opts: opts})
	if err != nil {
		return false, err
	}

	final := m.(confirmModel)
	if final.cancelled {
		return false, ErrCancelled
	}
	return final.accept, nil
}

type confirmModel struct {
	opts      ConfirmOptions
	accept    bool
	cancelled bool
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "y", "Y":
		m.accept = true
		return m, tea.Quit
	case "n", "N":
		m.accept = false
		return m, tea.Quit
	case "tab", "left", "right", " ":
		m.accept = !m.accept
	case "enter":
		return m, tea.Quit
	case "esc", "ctrl+c":
		m.cancelled = true
		return m, tea.Quit
	}
	return m, nil
}

func (m confirmModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.opts.Question))
	b.WriteString("\n")

	for i, entry := range m.opts.Entries {
		if i == maxListed {
			rest := len(m.opts.Entries) - maxListed
			b.WriteString(dimStyle.Render(fmt.Sprintf("  ... and %d more", rest)))
			b.WriteString("\n")
			break
		}
		kind := "file"
		if entry.Dir {
			kind = "dir "
		}
		b.WriteString("  " + dimStyle.Render(kind) + " " + textStyle.Render(entry.Path))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	no, yes := activeStyle.Render("[no]"), dimStyle.Render(" yes ")
	if m.accept {
		no, yes = dimStyle.Render(" no "), activeStyle.Render("[yes]")
	}
	b.WriteString(no + " " + yes + "\n")
	b.WriteString(hintStyle.Render("y/n to answer, tab to switch, esc to cancel"))
	b.WriteString("\n")

	return b.String()
}
