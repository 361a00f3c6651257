package console

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// ValueOptions configure the editor for one stored value.
type ValueOptions struct {
	Streams
	Key     string
	Current string
	Secret  bool
	// Validate rejects a value before the prompt closes. Nil accepts anything.
	Validate func(string) error
}

// EditValue asks for a new value for opts.Key. Non-secret values start out as
// the current one so that small edits stay small.
func EditValue(opts ValueOptions) (string, error) {
	m, err := opts.run(newValueModel(opts))
	if err != nil {
		return "", err
	}

	final := m.(valueModel)
	if final.cancelled {
		return "", ErrCancelled
	}
	return final.input.Value(), nil
}

type valueModel struct {
	opts      ValueOptions
	input     textinput.Model
	err       error
	cancelled bool
}

func newValueModel(opts ValueOptions) valueModel {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.PromptStyle = dimStyle
	ti.TextStyle = activeStyle
	ti.CharLimit = 1024
	ti.Width = 60
	if opts.Secret {
		ti.EchoMode = textinput.EchoPassword
	} else {
		ti.SetValue(opts.Current)
	}
	ti.Focus()

	return valueModel{opts: opts, input: ti}
}

func (m valueModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m valueModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			if m.opts.Validate != nil {
				if m.err = m.opts.Validate(m.input.Value()); m.err != nil {
					return m, nil
				}
			}
			return m, tea.Quit
		case tea.KeyEsc, tea.KeyCtrlC:
			m.cancelled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m valueModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("New value for " + m.opts.Key))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("current: " + display(m.opts.Current, m.opts.Secret)))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}
	b.WriteString(hintStyle.Render("enter to save, esc to cancel"))
	b.WriteString("\n")

	return b.String()
}
