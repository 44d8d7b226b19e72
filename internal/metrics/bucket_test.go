package metrics

import (
	"testing"
	"time"

	"github.com/fairweather/tidewatch/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int, revenue, costs, cash float64) model.DayFigures {
	return model.DayFigures{
		Date:    time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
		Revenue: revenue,
		Costs:   costs,
		Cash:    cash,
	}
}

func TestWeeklyBuckets(t *testing.T) {
	// June 3 2024 is a Monday; June 9 ends that ISO week.
	days := []model.DayFigures{
		day(2024, time.June, 3, 100, 60, 1040),
		day(2024, time.June, 9, 200, 80, 1160),
		day(2024, time.June, 10, 50, 10, 1200),
	}

	buckets := WeeklyBuckets(days)

	require.Len(t, buckets, 2)
	assert.InDelta(t, 300, buckets[0].Revenue, 0.0001)
	assert.InDelta(t, 140, buckets[0].Costs, 0.0001)
	assert.InDelta(t, 1160, buckets[0].Cash, 0.0001, "bucket keeps closing cash")
	assert.InDelta(t, 50, buckets[1].Revenue, 0.0001)
}

func TestMonthlyBuckets(t *testing.T) {
	days := []model.DayFigures{
		day(2024, time.April, 29, 100, 50, 100),
		day(2024, time.April, 30, 100, 50, 150),
		day(2024, time.May, 1, 300, 100, 350),
	}

	buckets := MonthlyBuckets(days)

	require.Len(t, buckets, 2)
	assert.Equal(t, "Apr", buckets[0].Label)
	assert.InDelta(t, 200, buckets[0].Revenue, 0.0001)
	assert.Equal(t, "May", buckets[1].Label)
	assert.InDelta(t, 300, buckets[1].Revenue, 0.0001)
	assert.InDelta(t, 200, buckets[1].Profit(), 0.0001)
}

func TestDailyBuckets(t *testing.T) {
	days := []model.DayFigures{
		day(2024, time.June, 1, 10, 5, 5),
		day(2024, time.June, 2, 20, 5, 20),
	}

	buckets := DailyBuckets(days)

	require.Len(t, buckets, 2)
	assert.Equal(t, "1", buckets[0].Label)
	assert.Equal(t, "2", buckets[1].Label)
	assert.InDelta(t, 10, buckets[0].Revenue, 0.0001)
}

func TestBucketsFor(t *testing.T) {
	days := []model.DayFigures{
		day(2024, time.June, 1, 10, 5, 5),
		day(2024, time.July, 1, 20, 5, 20),
	}

	assert.Len(t, BucketsFor(model.ViewMonth, days), 2, "month view buckets by day")
	assert.Len(t, BucketsFor(model.ViewYear, days), 2, "year view buckets by month")
	// June 1 2024 is a Saturday, July 1 a Monday: different ISO weeks.
	assert.Len(t, BucketsFor(model.ViewQuarter, days), 2, "quarter view buckets by week")
}

func TestBucketAggregationPreservesTotals(t *testing.T) {
	var days []model.DayFigures
	for d := 1; d <= 30; d++ {
		days = append(days, day(2024, time.June, d, float64(d*10), float64(d*3), 0))
	}

	var wantRevenue, wantCosts float64
	for _, d := range days {
		wantRevenue += d.Revenue
		wantCosts += d.Costs
	}

	for _, buckets := range [][]Bucket{WeeklyBuckets(days), MonthlyBuckets(days)} {
		var gotRevenue, gotCosts float64
		for _, b := range buckets {
			gotRevenue += b.Revenue
			gotCosts += b.Costs
		}
		assert.InDelta(t, wantRevenue, gotRevenue, 0.0001)
		assert.InDelta(t, wantCosts, gotCosts, 0.0001)
	}
}
