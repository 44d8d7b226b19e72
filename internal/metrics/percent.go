// Package metrics holds the pure numeric helpers shared by every view:
// percentage change, period-to-date comparison, and bucket aggregation.
package metrics

import (
	"fmt"
	"math"
)

// NoChange is shown when a comparison baseline is missing or zero.
const NoChange = "—"

// Change is a formatted percentage delta ready for display.
type Change struct {
	Value      string
	IsPositive bool
}

// PercentChange computes the signed percentage change from previous to
// current. A missing or zero previous value yields the NoChange sentinel
// instead of dividing by zero. The percentage is rounded half away from
// zero to the nearest integer.
func PercentChange(current, previous float64) Change {
	if previous == 0 {
		return Change{Value: NoChange, IsPositive: true}
	}
	pct := int(math.Round(100 * (current - previous) / previous))
	return Change{
		Value:      fmt.Sprintf("%+d%%", pct),
		IsPositive: current >= previous,
	}
}
