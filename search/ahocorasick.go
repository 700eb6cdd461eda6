package search

import (
	aho "github.com/petar-dambovaliev/aho-corasick"
)

// AhoCorasick runs a pattern set through a deterministic Aho-Corasick
// automaton compiled once at construction. Leftmost-longest semantics make
// the first reported match the leftmost one, so Index stops there.
type AhoCorasick struct {
	automaton aho.AhoCorasick
}

// NewAhoCorasick compiles the automaton for patterns.
// An empty set, or any empty member, fails with ErrEmptyPattern.
func NewAhoCorasick(patterns ...string) (*AhoCorasick, error) {
	if len(patterns) == 0 {
		return nil, ErrEmptyPattern
	}
	for _, p := range patterns {
		if len(p) == 0 {
			return nil, ErrEmptyPattern
		}
	}

	builder := aho.NewAhoCorasickBuilder(aho.Opts{
		MatchKind: aho.LeftMostLongestMatch,
		DFA:       true,
	})
	return &AhoCorasick{automaton: builder.Build(patterns)}, nil
}

// Index returns the offset of the leftmost occurrence of any pattern.
func (a *AhoCorasick) Index(text string) int {
	if m := a.automaton.Iter(text).Next(); m != nil {
		return m.Start()
	}
	return -1
}
