package synth

import "time"

// Today is the simulated current date. Everything that partitions data into
// past/today/future or computes a period-to-date window hangs off this one
// constant so the demo is reproducible regardless of wall-clock time.
var Today = time.Date(2024, time.June, 9, 0, 0, 0, 0, time.UTC)
