package main

import (
	"fmt"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/lixenwraith/overworld/engine"
)

// runSummary is printed after the terminal is restored
type runSummary struct {
	Sessions  int
	LastScore int
	BestScore int
	Played    time.Duration
}

func summarize(w *engine.World, played time.Duration) runSummary {
	return runSummary{
		Sessions:  w.Session,
		LastScore: w.Score,
		BestScore: w.BestScore,
		Played:    played,
	}
}

var (
	summaryTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#E6392D"))
	summaryLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("#8A8A8A")).Width(12)
	summaryValue = lipgloss.NewStyle().Bold(true)
	summaryBox   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4E7A3A")).
			Padding(0, 2)
)

// render formats the summary as a bordered block
func (s runSummary) render() string {
	row := func(label string, value any) string {
		return lipgloss.JoinHorizontal(lipgloss.Top,
			summaryLabel.Render(label),
			summaryValue.Render(fmt.Sprint(value)),
		)
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		summaryTitle.Render("overworld"),
		"",
		row("sessions", s.Sessions),
		row("last score", s.LastScore),
		row("best score", s.BestScore),
		row("played", s.Played.Round(time.Second)),
	)
	return summaryBox.Render(body)
}
