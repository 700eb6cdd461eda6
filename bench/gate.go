package bench

import "fmt"

// Validate runs p exactly once and compares the outcome with want, the
// answer a trusted reference gives on the same text. A disagreement returns
// ErrCorrectnessFailure and the algorithm sits out the cycle.
func Validate(p Probe, want bool) error {
	if got := p.Run(); got != want {
		return fmt.Errorf("%w: found=%t, want %t", ErrCorrectnessFailure, got, want)
	}
	return nil
}
