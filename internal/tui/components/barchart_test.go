package components

import (
	"strings"
	"testing"
	"time"

	"github.com/fairweather/tidewatch/internal/metrics"
	"github.com/fairweather/tidewatch/internal/tui/themes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2024, time.June, d, 0, 0, 0, 0, time.UTC)
}

func sampleBuckets() []metrics.Bucket {
	buckets := make([]metrics.Bucket, 8)
	revenues := []float64{100, 400, 200, 300, 150, 250, 350, 120}
	for i := range buckets {
		d := day(i + 1)
		buckets[i] = metrics.Bucket{Label: d.Format("Jan 2"), Start: d, Revenue: revenues[i]}
	}
	return buckets
}

func TestBarChartRender(t *testing.T) {
	chart := BarChart{Theme: themes.Default, Height: 4}
	out := chart.Render(sampleBuckets())

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 5, "height rows plus the axis")
	assert.Contains(t, lines[4], "Jun 1")
	assert.Contains(t, lines[4], "Jun 8")
	assert.Contains(t, out, "█", "the tallest bucket fills at least one cell")
}

func TestBarChartEmpty(t *testing.T) {
	chart := BarChart{Theme: themes.Default}
	assert.Contains(t, chart.Render(nil), "no data")
}

func TestBarChartTodayIndex(t *testing.T) {
	buckets := sampleBuckets()

	tests := []struct {
		name  string
		today time.Time
		want  int
	}{
		{name: "zero time means no highlight", want: -1},
		{name: "mid series", today: day(2), want: 1},
		{name: "inside a bucket span", today: day(3).Add(12 * time.Hour), want: 2},
		{name: "past the end sticks to the last bucket", today: day(30), want: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chart := BarChart{Theme: themes.Default, Today: tt.today}
			assert.Equal(t, tt.want, chart.todayIndex(buckets))
		})
	}
}
