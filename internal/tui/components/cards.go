package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/fairweather/tidewatch/internal/metrics"
	"github.com/fairweather/tidewatch/internal/model"
	"github.com/fairweather/tidewatch/internal/tui/themes"
	"github.com/fairweather/tidewatch/internal/tui/viewmodel"
)

// SummaryCards renders the dashboard's headline figures.
type SummaryCards struct {
	Theme themes.Theme
	Width int
}

// Render draws the revenue/costs/profit/cash card row. The cash card shows
// a sparkline of the elapsed balances when available.
func (c SummaryCards) Render(s viewmodel.Summary, cashSeries []float64) string {
	cards := []string{
		c.card("Revenue", model.FormatDollars(s.Revenue), c.badge(s.RevenueChange, false), s.CompareLabel),
		c.card("Costs", model.FormatDollars(s.Costs), c.badge(s.CostsChange, true), s.CompareLabel),
		c.card("Profit", model.FormatDollars(s.Profit), c.badge(s.ProfitChange, false), s.CompareLabel),
		c.cashCard(s, cashSeries),
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func (c SummaryCards) card(title, amount, badge, compare string) string {
	body := lipgloss.JoinVertical(
		lipgloss.Left,
		c.Theme.CardTitle.Render(title),
		c.Theme.Bold.Render(amount),
		badge+" "+c.Theme.Faint.Render(compare),
	)
	return c.Theme.Card.Render(body)
}

func (c SummaryCards) cashCard(s viewmodel.Summary, series []float64) string {
	amount := metrics.NoChange
	if s.HasCash {
		amount = model.FormatDollars(s.Cash)
	}

	spark := Sparkline(series, 16)
	if spark == "" {
		spark = c.Theme.Faint.Render("full period")
	} else {
		spark = c.Theme.BarPast.Render(spark)
	}

	body := lipgloss.JoinVertical(
		lipgloss.Left,
		c.Theme.CardTitle.Render("Cash on hand"),
		c.Theme.Bold.Render(amount),
		spark,
	)
	return c.Theme.Card.Render(body)
}

// badge styles a percent change. For costs the sentiment flips: spending
// more than last period reads as bad.
func (c SummaryCards) badge(ch metrics.Change, invert bool) string {
	if ch.Value == metrics.NoChange {
		return c.Theme.BadgeNeutral.Render(ch.Value)
	}

	good := ch.IsPositive
	if invert {
		good = !good
	}

	arrow := "▲"
	if !ch.IsPositive {
		arrow = "▼"
	}
	label := fmt.Sprintf("%s %s", arrow, ch.Value)

	if good {
		return c.Theme.BadgeUp.Render(label)
	}
	return c.Theme.BadgeDown.Render(label)
}
