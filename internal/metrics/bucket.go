package metrics

import (
	"fmt"
	"time"

	"github.com/fairweather/tidewatch/internal/model"
)

// Bucket is an aggregated slice of a daily series, sized for one chart bar.
type Bucket struct {
	Label   string
	Start   time.Time
	Revenue float64
	Costs   float64
	Cash    float64 // closing cash for the bucket
}

// Profit is revenue minus costs for the bucket.
func (b Bucket) Profit() float64 {
	return b.Revenue - b.Costs
}

// DailyBuckets maps each day to its own bucket, labelled by day of month.
func DailyBuckets(days []model.DayFigures) []Bucket {
	buckets := make([]Bucket, 0, len(days))
	for _, d := range days {
		buckets = append(buckets, Bucket{
			Label:   fmt.Sprintf("%d", d.Date.Day()),
			Start:   d.Date,
			Revenue: d.Revenue,
			Costs:   d.Costs,
			Cash:    d.Cash,
		})
	}
	return buckets
}

// WeeklyBuckets aggregates a daily series into ISO-week buckets, in order.
func WeeklyBuckets(days []model.DayFigures) []Bucket {
	var buckets []Bucket
	var cur *Bucket
	curYear, curWeek := 0, 0

	for _, d := range days {
		y, w := d.Date.ISOWeek()
		if cur == nil || y != curYear || w != curWeek {
			buckets = append(buckets, Bucket{
				Label: fmt.Sprintf("W%02d", w),
				Start: d.Date,
			})
			cur = &buckets[len(buckets)-1]
			curYear, curWeek = y, w
		}
		cur.Revenue += d.Revenue
		cur.Costs += d.Costs
		cur.Cash = d.Cash
	}
	return buckets
}

// MonthlyBuckets aggregates a daily series into calendar-month buckets.
func MonthlyBuckets(days []model.DayFigures) []Bucket {
	var buckets []Bucket
	var cur *Bucket
	var curMonth time.Month
	curYear := 0

	for _, d := range days {
		if cur == nil || d.Date.Month() != curMonth || d.Date.Year() != curYear {
			buckets = append(buckets, Bucket{
				Label: d.Date.Month().String()[:3],
				Start: d.Date,
			})
			cur = &buckets[len(buckets)-1]
			curMonth, curYear = d.Date.Month(), d.Date.Year()
		}
		cur.Revenue += d.Revenue
		cur.Costs += d.Costs
		cur.Cash = d.Cash
	}
	return buckets
}

// BucketsFor picks the bucket granularity a view type charts with: days for
// a month, weeks for a quarter, months for a year.
func BucketsFor(view model.ViewType, days []model.DayFigures) []Bucket {
	switch view {
	case model.ViewQuarter:
		return WeeklyBuckets(days)
	case model.ViewYear:
		return MonthlyBuckets(days)
	default:
		return DailyBuckets(days)
	}
}
