package viewmodel

import (
	"testing"

	"github.com/fairweather/tidewatch/internal/metrics"
	"github.com/fairweather/tidewatch/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildReportRows(t *testing.T) {
	periods := []model.FinancialPeriod{
		{ID: "2024-04", Label: "April 2024", Revenue: 1000, Costs: 400},
		{ID: "2024-05", Label: "May 2024", Revenue: 1200, Costs: 400},
		{ID: "2024-06", Label: "June 2024", Revenue: 600, Costs: 200,
			ToDate: &model.PeriodToDate{Label: "vs May 1-9", PrevRevenue: 500, PrevCosts: 200}},
	}

	rows := BuildReportRows(periods)
	require.Len(t, rows, 3)

	first := rows[0]
	assert.Equal(t, metrics.Change{Value: "—", IsPositive: true}, first.RevChange, "no baseline for the first row")
	assert.Equal(t, "$1,000.00", first.Revenue)
	assert.Equal(t, "$600.00", first.Profit)

	may := rows[1]
	assert.Equal(t, metrics.Change{Value: "+20%", IsPositive: true}, may.RevChange)
	assert.Equal(t, metrics.Change{Value: "+33%", IsPositive: true}, may.ProfitChange)
	assert.Equal(t, "vs April 2024", may.CompareLabel)

	june := rows[2]
	assert.Equal(t, "vs May 1-9", june.CompareLabel, "current rows compare period to date")
	assert.Equal(t, metrics.Change{Value: "+20%", IsPositive: true}, june.RevChange)
}

func TestBuildReportRowsEmpty(t *testing.T) {
	assert.Empty(t, BuildReportRows(nil))
}
