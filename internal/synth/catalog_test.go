package synth

import (
	"testing"
	"time"

	"github.com/fairweather/tidewatch/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCatalogShape(t *testing.T) {
	c := NewCatalog()

	assert.Len(t, c.PeriodsFor(model.ViewMonth), 12)
	assert.Len(t, c.PeriodsFor(model.ViewQuarter), 4)
	assert.Len(t, c.PeriodsFor(model.ViewYear), Today.Year()-catalogStartYear+1)
}

func TestCurrentIndexes(t *testing.T) {
	c := NewCatalog()

	// Simulated today is June 9 2024.
	assert.Equal(t, 5, c.CurrentIndex(model.ViewMonth))
	assert.Equal(t, 1, c.CurrentIndex(model.ViewQuarter))
	assert.Equal(t, 3, c.CurrentIndex(model.ViewYear))
}

func TestCurrentPeriodsCarryBreakdowns(t *testing.T) {
	c := NewCatalog()

	for _, view := range model.AllViewTypes {
		periods := c.PeriodsFor(view)
		for i, p := range periods {
			if i == c.CurrentIndex(view) {
				assert.True(t, p.IsCurrent(), "%s should carry a daily breakdown", p.ID)
				assert.NotNil(t, p.ToDate, "%s should carry a to-date baseline", p.ID)
			} else {
				assert.False(t, p.IsCurrent(), "%s should not carry a daily breakdown", p.ID)
				assert.Nil(t, p.ToDate)
			}
		}
	}
}

func TestCurrentMonthTotalsCoverElapsedWindowOnly(t *testing.T) {
	c := NewCatalog()
	months := c.PeriodsFor(model.ViewMonth)
	current := months[c.CurrentIndex(model.ViewMonth)]

	require.Len(t, current.Days, 30, "June has 30 days in the breakdown")

	var wantRevenue float64
	for _, d := range current.Days {
		if d.Date.After(Today) {
			continue
		}
		wantRevenue += d.Revenue
	}
	assert.InDelta(t, wantRevenue, current.Revenue, 0.0001)

	// A closed month sums every day.
	may := months[4]
	mayRevenue, mayCosts := SumDays(MonthDays(2024, time.May), time.Time{})
	assert.InDelta(t, mayRevenue, may.Revenue, 0.0001)
	assert.InDelta(t, mayCosts, may.Costs, 0.0001)
}

func TestQuarterTotalsMatchMonthSums(t *testing.T) {
	c := NewCatalog()
	quarters := c.PeriodsFor(model.ViewQuarter)
	months := c.PeriodsFor(model.ViewMonth)

	// Q1 is closed: its total equals January + February + March.
	want := months[0].Revenue + months[1].Revenue + months[2].Revenue
	assert.InDelta(t, want, quarters[0].Revenue, 0.0001)
}

func TestCatalogIsDeterministic(t *testing.T) {
	a := NewCatalog()
	b := NewCatalog()

	assert.Equal(t, a.PeriodsFor(model.ViewMonth), b.PeriodsFor(model.ViewMonth))
	assert.Equal(t, a.PeriodsFor(model.ViewQuarter), b.PeriodsFor(model.ViewQuarter))
	assert.Equal(t, a.PeriodsFor(model.ViewYear), b.PeriodsFor(model.ViewYear))
}

func TestPeriodByID(t *testing.T) {
	c := NewCatalog()

	p, ok := c.PeriodByID("2024-06")
	require.True(t, ok)
	assert.Equal(t, "June 2024", p.Label)

	p, ok = c.PeriodByID("2024-q2")
	require.True(t, ok)
	assert.Equal(t, "Q2 2024", p.Label)

	_, ok = c.PeriodByID("1999-01")
	assert.False(t, ok)
}

func TestMonthDaysCashIsCumulative(t *testing.T) {
	days := MonthDays(2024, time.May)
	require.NotEmpty(t, days)

	for i := 1; i < len(days); i++ {
		wantCash := days[i-1].Cash + days[i].Revenue - days[i].Costs
		assert.InDelta(t, wantCash, days[i].Cash, 0.0001, "day %d", i+1)
	}
}

func TestToDateBaselineMatchesPreviousMonthWindow(t *testing.T) {
	c := NewCatalog()
	months := c.PeriodsFor(model.ViewMonth)
	current := months[c.CurrentIndex(model.ViewMonth)]

	require.NotNil(t, current.ToDate)

	wantRevenue, wantCosts := SumFirst(MonthDays(2024, time.May), Today.Day())
	assert.InDelta(t, wantRevenue, current.ToDate.PrevRevenue, 0.0001)
	assert.InDelta(t, wantCosts, current.ToDate.PrevCosts, 0.0001)
	assert.Equal(t, "vs May 1-9", current.ToDate.Label)
}
