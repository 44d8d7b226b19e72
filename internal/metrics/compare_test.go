package metrics

import (
	"testing"

	"github.com/fairweather/tidewatch/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestComparePeriods(t *testing.T) {
	prev := model.FinancialPeriod{Label: "May 2024", Revenue: 100000, Costs: 50000}

	t.Run("full period comparison", func(t *testing.T) {
		current := model.FinancialPeriod{Label: "June 2024", Revenue: 120000, Costs: 40000}

		cmp := ComparePeriods(current, &prev)

		assert.Equal(t, "vs May 2024", cmp.Label)
		assert.Equal(t, Change{Value: "+20%", IsPositive: true}, cmp.Revenue)
		assert.Equal(t, Change{Value: "-20%", IsPositive: false}, cmp.Costs)
		assert.Equal(t, Change{Value: "+60%", IsPositive: true}, cmp.Profit)
	})

	t.Run("no previous period yields sentinels", func(t *testing.T) {
		current := model.FinancialPeriod{Label: "January 2024", Revenue: 100, Costs: 50}

		cmp := ComparePeriods(current, nil)

		assert.Equal(t, NoChange, cmp.Revenue.Value)
		assert.Equal(t, NoChange, cmp.Costs.Value)
		assert.Equal(t, NoChange, cmp.Profit.Value)
		assert.True(t, cmp.Revenue.IsPositive)
	})

	t.Run("period-to-date baseline wins over previous period", func(t *testing.T) {
		current := model.FinancialPeriod{
			Label:   "June 2024",
			Revenue: 30000,
			Costs:   20000,
			ToDate: &model.PeriodToDate{
				Label:       "vs May 1-9",
				PrevRevenue: 25000,
				PrevCosts:   20000,
			},
		}

		cmp := ComparePeriods(current, &prev)

		assert.Equal(t, "vs May 1-9", cmp.Label)
		assert.Equal(t, Change{Value: "+20%", IsPositive: true}, cmp.Revenue)
		assert.Equal(t, Change{Value: "+0%", IsPositive: true}, cmp.Costs)
	})

	t.Run("zero to-date baseline yields sentinel", func(t *testing.T) {
		current := model.FinancialPeriod{
			Label:   "June 2024",
			Revenue: 30000,
			ToDate:  &model.PeriodToDate{Label: "vs May 1-1"},
		}

		cmp := ComparePeriods(current, &prev)

		assert.Equal(t, NoChange, cmp.Revenue.Value)
	})
}
