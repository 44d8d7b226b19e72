package synth

import (
	"fmt"
	"time"

	"github.com/fairweather/tidewatch/internal/model"
)

// Catalog holds the generated period arrays for every view type. Built once
// at startup, read-only afterwards.
type Catalog struct {
	byID     map[string]model.FinancialPeriod
	months   []model.FinancialPeriod
	quarters []model.FinancialPeriod
	years    []model.FinancialPeriod
}

// NewCatalog generates the full period catalog around the simulated today.
func NewCatalog() *Catalog {
	c := &Catalog{byID: make(map[string]model.FinancialPeriod)}
	c.months = buildMonths(Today.Year())
	c.quarters = buildQuarters(Today.Year())
	c.years = buildYears(catalogStartYear, Today.Year())

	for _, ps := range [][]model.FinancialPeriod{c.months, c.quarters, c.years} {
		for _, p := range ps {
			c.byID[p.ID] = p
		}
	}
	return c
}

// PeriodsFor returns the ordered period array for a view type. An unknown
// view type falls back to the monthly array.
func (c *Catalog) PeriodsFor(view model.ViewType) []model.FinancialPeriod {
	switch view {
	case model.ViewQuarter:
		return c.quarters
	case model.ViewYear:
		return c.years
	default:
		return c.months
	}
}

// CurrentIndex returns the index of the period containing the simulated
// today for a view type.
func (c *Catalog) CurrentIndex(view model.ViewType) int {
	switch view {
	case model.ViewQuarter:
		return (int(Today.Month()) - 1) / 3
	case model.ViewYear:
		return Today.Year() - catalogStartYear
	default:
		return int(Today.Month()) - 1
	}
}

// PeriodByID looks up a period across every view type.
func (c *Catalog) PeriodByID(id string) (model.FinancialPeriod, bool) {
	p, ok := c.byID[id]
	return p, ok
}

func buildMonths(year int) []model.FinancialPeriod {
	months := make([]model.FinancialPeriod, 0, 12)
	for m := time.January; m <= time.December; m++ {
		days := MonthDays(year, m)
		p := model.FinancialPeriod{
			ID:                 fmt.Sprintf("%04d-%02d", year, int(m)),
			Label:              fmt.Sprintf("%s %d", m, year),
			View:               model.ViewMonth,
			Year:               year,
			Month:              m,
			UncategorizedCount: uncategorizedCount(monthSeed(year, m)),
		}

		if year == Today.Year() && m == Today.Month() {
			// Current month: totals cover the elapsed window only, the
			// full series (future days included) drives the chart.
			p.Revenue, p.Costs = SumDays(days, Today)
			p.Days = days
			p.ToDate = monthToDate(year, m, Today.Day())
		} else {
			p.Revenue, p.Costs = SumDays(days, time.Time{})
		}
		months = append(months, p)
	}
	return months
}

func buildQuarters(year int) []model.FinancialPeriod {
	quarters := make([]model.FinancialPeriod, 0, 4)
	currentQ := (int(Today.Month())-1)/3 + 1

	for q := 1; q <= 4; q++ {
		days := quarterDays(year, q)
		p := model.FinancialPeriod{
			ID:                 fmt.Sprintf("%04d-q%d", year, q),
			Label:              fmt.Sprintf("Q%d %d", q, year),
			View:               model.ViewQuarter,
			Year:               year,
			Quarter:            q,
			UncategorizedCount: uncategorizedCount(monthSeed(year, time.Month((q-1)*3+1)) + 13),
		}

		if year == Today.Year() && q == currentQ {
			p.Revenue, p.Costs = SumDays(days, Today)
			p.Days = days
			elapsed := elapsedDays(days, Today)
			prevY, prevQ := year, q-1
			if q == 1 {
				prevY, prevQ = year-1, 4
			}
			rev, costs := SumFirst(quarterDays(prevY, prevQ), elapsed)
			p.ToDate = &model.PeriodToDate{
				Label:       fmt.Sprintf("vs first %d days of Q%d", elapsed, prevQuarter(q)),
				PrevRevenue: rev,
				PrevCosts:   costs,
			}
		} else {
			p.Revenue, p.Costs = SumDays(days, time.Time{})
		}
		quarters = append(quarters, p)
	}
	return quarters
}

func buildYears(from, to int) []model.FinancialPeriod {
	years := make([]model.FinancialPeriod, 0, to-from+1)
	for y := from; y <= to; y++ {
		days := yearDays(y)
		p := model.FinancialPeriod{
			ID:                 fmt.Sprintf("%04d", y),
			Label:              fmt.Sprintf("%d", y),
			View:               model.ViewYear,
			Year:               y,
			UncategorizedCount: uncategorizedCount(monthSeed(y, time.January) + 29),
		}

		if y == Today.Year() {
			p.Revenue, p.Costs = SumDays(days, Today)
			p.Days = days
			elapsed := elapsedDays(days, Today)
			rev, costs := SumFirst(yearDays(y-1), elapsed)
			p.ToDate = &model.PeriodToDate{
				Label:       fmt.Sprintf("vs first %d days of %d", elapsed, y-1),
				PrevRevenue: rev,
				PrevCosts:   costs,
			}
		} else {
			p.Revenue, p.Costs = SumDays(days, time.Time{})
		}
		years = append(years, p)
	}
	return years
}

func monthToDate(year int, m time.Month, day int) *model.PeriodToDate {
	prevYear, prevMonth := year, m-1
	if m == time.January {
		prevYear, prevMonth = year-1, time.December
	}
	rev, costs := SumFirst(MonthDays(prevYear, prevMonth), day)
	return &model.PeriodToDate{
		Label:       fmt.Sprintf("vs %s 1-%d", prevMonth.String()[:3], day),
		PrevRevenue: rev,
		PrevCosts:   costs,
	}
}

func quarterDays(year, q int) []model.DayFigures {
	var days []model.DayFigures
	for i := 0; i < 3; i++ {
		m := time.Month((q-1)*3 + 1 + i)
		days = append(days, MonthDays(year, m)...)
	}
	return days
}

func yearDays(year int) []model.DayFigures {
	var days []model.DayFigures
	for m := time.January; m <= time.December; m++ {
		days = append(days, MonthDays(year, m)...)
	}
	return days
}

// elapsedDays counts series entries on or before through.
func elapsedDays(days []model.DayFigures, through time.Time) int {
	n := 0
	for _, d := range days {
		if d.Date.After(through) {
			break
		}
		n++
	}
	return n
}

func prevQuarter(q int) int {
	if q == 1 {
		return 4
	}
	return q - 1
}

// uncategorizedCount seeds a small "needs review" badge count; most periods
// show none.
func uncategorizedCount(seed int) int {
	n := IntBetween(seed+999, 0, 10)
	if n < 4 {
		return 0
	}
	return n - 3
}
