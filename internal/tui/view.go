package tui

import (
	"time"

	"dhping/internal/i18n"
)

func (m PromptModel) View() string {
	if m.quitting {
		return ""
	}

	msgs := m.session.Messages()
	styles := m.session.Styles()

	line := m.input.View()
	if m.probing {
		line = m.spinner.View() + " " + msgs.Get(i18n.Probing, m.current)
	}

	stats := m.session.Stats()
	t := stats.GetTotals()
	footer := msgs.Get(i18n.SessionSummary, t.Probes, t.Replied, t.Silent, t.Failed) +
		"  " + msgs.Get(i18n.QuitHint)
	if top := stats.GetTopTargets(1); len(top) > 0 {
		footer += "\n" + msgs.Get(i18n.TargetSummary,
			t.AvgRTT.Round(time.Millisecond).String(),
			top[0].Target, top[0].Probes,
			top[0].LastRTT.Round(time.Millisecond).String())
	}

	return line + "\n" + styles.Muted.Render(footer)
}
