// Package bench is the harness that validates, times and ranks the engines of
// package search against a shared, growing corpus.
//
// A run is a sequence of cycles. Each cycle appends a marker to the corpus,
// takes an immutable snapshot, gates every registered engine on that
// snapshot, times the survivors and prints them ranked by throughput.
package bench

import "errors"

var (
	// ErrDuplicateAlgorithm is returned when a name is registered twice.
	ErrDuplicateAlgorithm = errors.New("bench: duplicate algorithm")

	// ErrEmptyName is returned when an algorithm is registered without a name.
	ErrEmptyName = errors.New("bench: empty algorithm name")

	// ErrCorpusUnavailable wraps any failure to read the initial corpus.
	ErrCorpusUnavailable = errors.New("bench: corpus unavailable")

	// ErrCorrectnessFailure is returned by Validate when a probe disagrees
	// with the known answer.
	ErrCorrectnessFailure = errors.New("bench: correctness failure")

	// ErrInvalidRounds is returned for a non-positive round or cycle count.
	ErrInvalidRounds = errors.New("bench: rounds must be positive")
)
