package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/fairweather/tidewatch/internal/metrics"
	"github.com/fairweather/tidewatch/internal/tui/themes"
	"github.com/fairweather/tidewatch/internal/tui/viewmodel"
)

// ReportTable renders the per-period comparison table.
type ReportTable struct {
	Theme themes.Theme
}

// Render draws one line per period; the selected period is highlighted and
// a current period's delta column notes the period-to-date window.
func (t ReportTable) Render(rows []viewmodel.ReportRow, selected int) string {
	header := t.Theme.Subtitle.Render(
		fmt.Sprintf("%-14s %14s %14s %14s  %-8s %s", "PERIOD", "REVENUE", "COSTS", "PROFIT", "Δ REV", "Δ PROFIT"))

	lines := []string{header}
	for i, row := range rows {
		label := row.Label
		if row.Current {
			label += " •"
		}
		line := fmt.Sprintf("%-14s %14s %14s %14s  %-8s %s",
			label, row.Revenue, row.Costs, row.Profit,
			row.RevChange.Value, t.change(row.ProfitChange))

		if i == selected {
			lines = append(lines, t.Theme.Selected.Render(line))
		} else {
			lines = append(lines, t.Theme.Normal.Render(line))
		}
	}

	if selected >= 0 && selected < len(rows) && rows[selected].CompareLabel != "" {
		lines = append(lines, t.Theme.Faint.Render(rows[selected].CompareLabel))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (t ReportTable) change(ch metrics.Change) string {
	if ch.Value == metrics.NoChange {
		return t.Theme.BadgeNeutral.Render(ch.Value)
	}
	if ch.IsPositive {
		return t.Theme.BadgeUp.Render(ch.Value)
	}
	return t.Theme.BadgeDown.Render(ch.Value)
}
