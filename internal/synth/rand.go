// Package synth generates the deterministic synthetic financial data that
// drives every view: the period catalog, daily breakdowns, and the demo
// transaction set. All values derive from a sine-based hash of an integer
// seed, so the same seed always produces the same number and the charts are
// stable across renders.
package synth

import "math"

// Frac returns a deterministic pseudo-random value in [0, 1) for seed.
// No distribution guarantees beyond "looks random and is reproducible".
func Frac(seed int) float64 {
	s := math.Sin(float64(seed)) * 10000
	return s - math.Floor(s)
}

// Between scales Frac(seed) linearly into [lo, hi).
func Between(seed int, lo, hi float64) float64 {
	return lo + Frac(seed)*(hi-lo)
}

// IntBetween scales Frac(seed) into the integers [lo, hi).
func IntBetween(seed, lo, hi int) int {
	return lo + int(Frac(seed)*float64(hi-lo))
}
