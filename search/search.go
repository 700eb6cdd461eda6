// Package search implements exact string-matching engines behind a single
// contract. Every engine is built once for a pattern (or a pattern set), does
// all of its precomputation in the constructor and afterwards only reads its
// tables, so Index may be called any number of times, from any goroutine.
package search

import "errors"

var (
	// ErrEmptyPattern is returned by every constructor given an empty pattern.
	ErrEmptyPattern = errors.New("search: empty pattern")

	// ErrPatternTooLong is returned by the bit-parallel constructors when the
	// pattern does not fit in the state register.
	ErrPatternTooLong = errors.New("search: pattern too long")
)

// MaxBitParallel is the longest pattern a bit-parallel engine accepts.
const MaxBitParallel = 64

// Engine reports where a fixed pattern occurs in a text.
type Engine interface {
	// Index returns the byte offset of the first occurrence in text, or -1.
	Index(text string) int
}

// Find reports whether e's pattern occurs in text.
func Find(e Engine, text string) bool {
	return e.Index(text) >= 0
}

func checkBitParallel(pattern string) error {
	if len(pattern) == 0 {
		return ErrEmptyPattern
	}
	if len(pattern) > MaxBitParallel {
		return ErrPatternTooLong
	}
	return nil
}
