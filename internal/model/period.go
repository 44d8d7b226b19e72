// Package model defines the domain types shared by every view: financial
// periods, transactions, and the category/account lookup tables.
package model

import "time"

// ViewType selects the time granularity a dashboard view operates on.
type ViewType string

const (
	// ViewMonth shows one calendar month per period.
	ViewMonth ViewType = "month"
	// ViewQuarter shows one calendar quarter per period.
	ViewQuarter ViewType = "quarter"
	// ViewYear shows one calendar year per period.
	ViewYear ViewType = "year"
)

// AllViewTypes lists view types in tab order.
var AllViewTypes = []ViewType{ViewMonth, ViewQuarter, ViewYear}

// DayFigures is one day of a period's breakdown.
type DayFigures struct {
	Date    time.Time
	Revenue float64
	Costs   float64
	Cash    float64
}

// Profit is revenue minus costs for the day.
func (d DayFigures) Profit() float64 {
	return d.Revenue - d.Costs
}

// PeriodToDate carries the prior period's figures over the same elapsed
// window as the current period, so a partial month is compared against the
// matching slice of the previous month rather than its full total.
type PeriodToDate struct {
	Label       string
	PrevRevenue float64
	PrevCosts   float64
}

// FinancialPeriod is one entry in the period catalog. Periods are built once
// at startup and never mutated.
type FinancialPeriod struct {
	ID                 string
	Label              string
	View               ViewType
	Year               int
	Month              time.Month // set for month view only
	Quarter            int        // 1-4, set for quarter view only
	Revenue            float64
	Costs              float64
	UncategorizedCount int
	Days               []DayFigures  // populated for the current period only
	ToDate             *PeriodToDate // populated for the current period only
}

// Profit is revenue minus costs for the whole period.
func (p FinancialPeriod) Profit() float64 {
	return p.Revenue - p.Costs
}

// IsCurrent reports whether this period contains the simulated today and
// therefore carries a daily breakdown.
func (p FinancialPeriod) IsCurrent() bool {
	return len(p.Days) > 0
}
