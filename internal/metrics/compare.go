package metrics

import "github.com/fairweather/tidewatch/internal/model"

// PeriodComparison bundles the deltas a summary card row displays.
type PeriodComparison struct {
	Label   string
	Revenue Change
	Costs   Change
	Profit  Change
}

// ComparePeriods computes revenue/costs/profit deltas for current against
// previous. When current carries a period-to-date baseline the comparison
// uses the matching elapsed window of the prior period instead of its full
// total, so a partial month is never measured against a complete one.
func ComparePeriods(current model.FinancialPeriod, previous *model.FinancialPeriod) PeriodComparison {
	if current.ToDate != nil {
		td := current.ToDate
		return PeriodComparison{
			Label:   td.Label,
			Revenue: PercentChange(current.Revenue, td.PrevRevenue),
			Costs:   PercentChange(current.Costs, td.PrevCosts),
			Profit:  PercentChange(current.Profit(), td.PrevRevenue-td.PrevCosts),
		}
	}

	if previous == nil {
		return PeriodComparison{
			Revenue: Change{Value: NoChange, IsPositive: true},
			Costs:   Change{Value: NoChange, IsPositive: true},
			Profit:  Change{Value: NoChange, IsPositive: true},
		}
	}

	return PeriodComparison{
		Label:   "vs " + previous.Label,
		Revenue: PercentChange(current.Revenue, previous.Revenue),
		Costs:   PercentChange(current.Costs, previous.Costs),
		Profit:  PercentChange(current.Profit(), previous.Profit()),
	}
}
