// Package viewmodel builds the pure display state each component renders.
// Nothing here touches the terminal; every builder is a plain function from
// domain data to strings and numbers, which keeps the view logic testable
// without a TUI harness.
package viewmodel

import (
	"time"

	"github.com/fairweather/tidewatch/internal/metrics"
	"github.com/fairweather/tidewatch/internal/model"
)

// Summary is the display state for the dashboard's header cards.
type Summary struct {
	PeriodLabel   string
	CompareLabel  string
	Revenue       float64
	Costs         float64
	Profit        float64
	Cash          float64
	HasCash       bool
	RevenueChange metrics.Change
	CostsChange   metrics.Change
	ProfitChange  metrics.Change
	Uncategorized int
}

// NewSummary computes the card values for the selected period. The
// comparison uses the period-to-date window when the period is current,
// otherwise the full previous period. Cash on hand is the closing balance
// of the last day on or before today, so it only exists for periods that
// carry a daily breakdown.
func NewSummary(current model.FinancialPeriod, previous *model.FinancialPeriod, today time.Time) Summary {
	cmp := metrics.ComparePeriods(current, previous)

	s := Summary{
		PeriodLabel:   current.Label,
		CompareLabel:  cmp.Label,
		Revenue:       current.Revenue,
		Costs:         current.Costs,
		Profit:        current.Profit(),
		RevenueChange: cmp.Revenue,
		CostsChange:   cmp.Costs,
		ProfitChange:  cmp.Profit,
		Uncategorized: current.UncategorizedCount,
	}

	for _, d := range current.Days {
		if d.Date.After(today) {
			break
		}
		s.Cash = d.Cash
		s.HasCash = true
	}
	return s
}

// CashSeries extracts the cash balances of the elapsed days, the input for
// the cash card's sparkline.
func CashSeries(p model.FinancialPeriod, today time.Time) []float64 {
	var series []float64
	for _, d := range p.Days {
		if d.Date.After(today) {
			break
		}
		series = append(series, d.Cash)
	}
	return series
}
