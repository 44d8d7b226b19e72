package viewmodel

import (
	"github.com/fairweather/tidewatch/internal/metrics"
	"github.com/fairweather/tidewatch/internal/model"
)

// ReportRow is one period's line in the comparison report.
type ReportRow struct {
	ID           string
	Label        string
	Revenue      string
	Costs        string
	Profit       string
	RevChange    metrics.Change
	ProfitChange metrics.Change
	CompareLabel string
	Current      bool
}

// BuildReportRows computes the per-period comparison table for a view's
// period array. Each row compares against the period before it; the first
// row has no baseline and shows the sentinel.
func BuildReportRows(periods []model.FinancialPeriod) []ReportRow {
	rows := make([]ReportRow, 0, len(periods))
	for i, p := range periods {
		var prev *model.FinancialPeriod
		if i > 0 {
			prev = &periods[i-1]
		}
		cmp := metrics.ComparePeriods(p, prev)

		rows = append(rows, ReportRow{
			ID:           p.ID,
			Label:        p.Label,
			Revenue:      model.FormatDollars(p.Revenue),
			Costs:        model.FormatDollars(p.Costs),
			Profit:       model.FormatDollars(p.Profit()),
			RevChange:    cmp.Revenue,
			ProfitChange: cmp.Profit,
			CompareLabel: cmp.Label,
			Current:      p.IsCurrent(),
		})
	}
	return rows
}
