package cli

import (
	"errors"
	"io"
	"strings"

	"github.com/ImGajeed76/pathman/pkg/pathman/console"
)

// Prompter asks the user for decisions the flags did not settle.
type Prompter interface {
	Confirm(question string, entries []console.Entry) (bool, error)
	Input(key, current string, secret bool) (string, error)
	Select(title string, choices []console.Choice) (int, error)
}

type terminalPrompter struct {
	in  io.Reader
	out io.Writer
}

func (p *terminalPrompter) streams() console.Streams {
	return console.Streams{In: p.in, Out: p.out}
}

func (p *terminalPrompter) Confirm(question string, entries []console.Entry) (bool, error) {
	return console.Confirm(console.ConfirmOptions{
		Streams:  p.streams(),
		Question: question,
		Entries:  entries,
	})
}

func (p *terminalPrompter) Input(key, current string, secret bool) (string, error) {
	opts := console.ValueOptions{
		Streams: p.streams(),
		Key:     key,
		Current: current,
		Secret:  secret,
	}
	if !secret {
		opts.Validate = notBlank
	}
	return console.EditValue(opts)
}

func (p *terminalPrompter) Select(title string, choices []console.Choice) (int, error) {
	return console.PickKey(console.PickOptions{
		Streams: p.streams(),
		Title:   title,
		Choices: choices,
	})
}

func notBlank(value string) error {
	if strings.TrimSpace(value) == "" {
		return errors.New("value cannot be empty")
	}
	return nil
}
