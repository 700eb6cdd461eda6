package bench

import (
	"fmt"
	"io"
	"math"
	"slices"

	"github.com/dustin/go-humanize"
)

// Result is the total time an algorithm took for one cycle's rounds.
type Result struct {
	Name    string
	Seconds float64
}

// OpsPerSec returns the throughput of n rounds.
func (r Result) OpsPerSec(n int) float64 {
	return float64(n) / r.Seconds
}

// Rank orders results fastest first. Equal timings keep their input order.
// The input is left untouched.
func Rank(results []Result) []Result {
	ranked := slices.Clone(results)
	slices.SortStableFunc(ranked, func(a, b Result) int {
		switch {
		case a.Seconds < b.Seconds:
			return -1
		case a.Seconds > b.Seconds:
			return 1
		}
		return 0
	})
	return ranked
}

// FormatOps renders a throughput with thousands separators and at most two
// decimal digits, e.g. 1,234,567.89. Extra digits are truncated, not
// rounded: 2.999 prints as 2.99.
func FormatOps(ops float64) string {
	if math.IsInf(ops, 1) {
		// the clock did not tick during the whole loop
		return "inf"
	}
	return humanize.CommafWithDigits(ops, 2)
}

// WriteReport prints one "[name] -> N ops/s" line per ranked result.
func WriteReport(w io.Writer, n int, ranked []Result) error {
	for _, r := range ranked {
		if _, err := fmt.Fprintf(w, "[%s] -> %s ops/s\n", r.Name, FormatOps(r.OpsPerSec(n))); err != nil {
			return err
		}
	}
	return nil
}
