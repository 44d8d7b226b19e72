// Package components holds the rendering building blocks the dashboard
// views are assembled from.
package components

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/fairweather/tidewatch/internal/metrics"
	"github.com/fairweather/tidewatch/internal/tui/themes"
)

// BarChart renders a vertical revenue bar chart from aggregated buckets.
// Bars before today use the past style, the bucket containing today is
// highlighted, and projected future buckets render dimmed.
type BarChart struct {
	Theme  themes.Theme
	Today  time.Time // zero means the whole series is past
	Height int
}

// Render draws the chart with one column per bucket using half-block
// resolution.
func (c BarChart) Render(buckets []metrics.Bucket) string {
	if len(buckets) == 0 {
		return c.Theme.Faint.Render("no data")
	}

	height := c.Height
	if height < 2 {
		height = 6
	}

	max := 0.0
	for _, b := range buckets {
		if b.Revenue > max {
			max = b.Revenue
		}
	}
	if max == 0 {
		max = 1
	}

	todayIdx := c.todayIndex(buckets)

	// levels[i] is the bar height in half blocks.
	levels := make([]int, len(buckets))
	for i, b := range buckets {
		levels[i] = int(b.Revenue / max * float64(height) * 2)
		if levels[i] == 0 && b.Revenue > 0 {
			levels[i] = 1
		}
	}

	var rows []string
	for row := height; row >= 1; row-- {
		var sb strings.Builder
		for i := range buckets {
			style := c.barStyle(i, todayIdx)
			switch {
			case levels[i] >= row*2:
				sb.WriteString(style.Render("█"))
			case levels[i] == row*2-1:
				sb.WriteString(style.Render("▄"))
			default:
				sb.WriteString(" ")
			}
			sb.WriteString(" ")
		}
		rows = append(rows, strings.TrimRight(sb.String(), " "))
	}

	rows = append(rows, c.axis(buckets))
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// todayIndex finds the bucket containing today, or -1.
func (c BarChart) todayIndex(buckets []metrics.Bucket) int {
	if c.Today.IsZero() {
		return -1
	}
	idx := -1
	for i, b := range buckets {
		if b.Start.After(c.Today) {
			break
		}
		idx = i
	}
	return idx
}

func (c BarChart) barStyle(i, todayIdx int) lipgloss.Style {
	switch {
	case todayIdx >= 0 && i == todayIdx:
		return c.Theme.BarToday
	case todayIdx >= 0 && i > todayIdx:
		return c.Theme.BarFuture
	default:
		return c.Theme.BarPast
	}
}

// axis renders the label row: first bucket, today's bucket, last bucket.
func (c BarChart) axis(buckets []metrics.Bucket) string {
	width := len(buckets) * 2
	cells := make([]rune, width)
	for i := range cells {
		cells[i] = ' '
	}

	place := func(col int, label string) {
		for j, r := range label {
			if col+j < width {
				cells[col+j] = r
			}
		}
	}
	place(0, buckets[0].Label)
	last := buckets[len(buckets)-1].Label
	if col := width - len(last); col > 0 {
		place(col, last)
	}
	if idx := c.todayIndex(buckets); idx > 0 && idx < len(buckets)-1 {
		place(idx*2, buckets[idx].Label)
	}

	return c.Theme.Faint.Render(strings.TrimRight(string(cells), " "))
}
