// Package tui runs the interactive prompt when stdin is a terminal.
package tui

import (
	"bytes"
	"context"
	"io"

	"dhping/internal/session"
	"dhping/internal/target"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
)

// PromptModel reads one address at a time and probes it in the background.
type PromptModel struct {
	ctx     context.Context
	session *session.Session
	input   textinput.Model
	spinner spinner.Model

	probing  bool
	current  string
	quitting bool
}

type probeDoneMsg struct {
	report string
	err    error
}

func NewPromptModel(ctx context.Context, s *session.Session) PromptModel {
	styles := s.Styles()

	ti := textinput.New()
	ti.Prompt = session.Prompt
	ti.PromptStyle = styles.Prompt
	ti.TextStyle = styles.Input
	ti.Placeholder = "127.0.0.1:7777"
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.NoData

	return PromptModel{
		ctx:     ctx,
		session: s,
		input:   ti,
		spinner: sp,
	}
}

func (m PromptModel) Init() tea.Cmd {
	return textinput.Blink
}

func probeCmd(ctx context.Context, s *session.Session, addr target.Address) tea.Cmd {
	return func() tea.Msg {
		var buf bytes.Buffer
		err := s.Probe(ctx, &buf, addr)
		return probeDoneMsg{report: buf.String(), err: err}
	}
}

// Run drives the prompt until the user exits, presses Ctrl+C or ctx is
// cancelled.
func Run(ctx context.Context, s *session.Session, in io.Reader, out io.Writer) error {
	p := tea.NewProgram(NewPromptModel(ctx, s),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithoutSignalHandler(),
	)

	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return errors.Wrap(err, "run prompt")
	}
	return nil
}
