package synth

import (
	"time"

	"github.com/fairweather/tidewatch/internal/model"
)

// catalogStartYear anchors seed derivation so every (year, month, day)
// triple maps to a stable seed.
const catalogStartYear = 2021

// Per-metric dollar ranges for one day of activity.
const (
	dayRevenueLo = 2800
	dayRevenueHi = 7800
	dayCostsLo   = 1900
	dayCostsHi   = 5200
	cashFloorLo  = 40000
	cashFloorHi  = 90000
)

func monthSeed(year int, month time.Month) int {
	return ((year-catalogStartYear)*12 + int(month) - 1) * 1000
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthDays builds the full daily series for a calendar month. The same
// (year, month) always yields the same series; this is the single shared
// generator every view consumes.
func MonthDays(year int, month time.Month) []model.DayFigures {
	base := monthSeed(year, month)
	cash := Between(base+777, cashFloorLo, cashFloorHi)
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)

	n := daysIn(year, month)
	days := make([]model.DayFigures, 0, n)
	for d := 1; d <= n; d++ {
		rev := Between(base+d, dayRevenueLo, dayRevenueHi)
		costs := Between(base+d+500, dayCostsLo, dayCostsHi)
		cash += rev - costs
		days = append(days, model.DayFigures{
			Date:    first.AddDate(0, 0, d-1),
			Revenue: rev,
			Costs:   costs,
			Cash:    cash,
		})
	}
	return days
}

// SumDays totals revenue and costs for days on or before through. A zero
// through time sums the whole series.
func SumDays(days []model.DayFigures, through time.Time) (revenue, costs float64) {
	for _, d := range days {
		if !through.IsZero() && d.Date.After(through) {
			continue
		}
		revenue += d.Revenue
		costs += d.Costs
	}
	return revenue, costs
}

// SumFirst totals revenue and costs for the first n days of the series,
// the elapsed-window counterpart used by period-to-date comparisons.
func SumFirst(days []model.DayFigures, n int) (revenue, costs float64) {
	if n > len(days) {
		n = len(days)
	}
	for _, d := range days[:n] {
		revenue += d.Revenue
		costs += d.Costs
	}
	return revenue, costs
}
