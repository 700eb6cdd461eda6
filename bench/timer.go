package bench

import (
	"sync/atomic"
	"time"
)

// sink keeps the compiler from discarding probe results.
var sink atomic.Bool

// Measure runs p n times back to back and returns the elapsed wall-clock
// time of the whole loop in seconds. It does no correctness checking.
func Measure(n int, p Probe) (float64, error) {
	if n <= 0 {
		return 0, ErrInvalidRounds
	}

	var found bool
	start := time.Now()
	for i := 0; i < n; i++ {
		found = p.Run()
	}
	elapsed := time.Since(start)
	sink.Store(found)

	return elapsed.Seconds(), nil
}
