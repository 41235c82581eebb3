package tui

import (
	"strings"

	"dhping/internal/session"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

func (m PromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			if m.probing {
				return m, nil
			}
			return m.submit()
		}

	case spinner.TickMsg:
		if !m.probing {
			return m, nil
		}
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case probeDoneMsg:
		m.probing = false
		m.current = ""
		focus := m.input.Focus()
		// The trailing newline leaves a blank separator line.
		report := strings.TrimSuffix(msg.report, "\n") + "\n"
		return m, tea.Batch(tea.Println(report), focus)
	}

	if m.probing {
		return m, nil
	}
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m PromptModel) submit() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	m.input.Reset()
	echo := m.input.PromptStyle.Render(session.Prompt) + m.input.TextStyle.Render(line)

	action, addr := m.session.Classify(line)
	switch action {
	case session.ActionExit:
		m.quitting = true
		return m, tea.Sequence(tea.Println(echo), tea.Quit)
	case session.ActionInvalid:
		return m, tea.Println(echo + "\n" + m.session.InvalidInput())
	}

	m.probing = true
	m.current = addr.String()
	m.input.Blur()
	return m, tea.Batch(
		tea.Println(echo),
		m.spinner.Tick,
		probeCmd(m.ctx, m.session, addr),
	)
}
