package search

import (
	"github.com/mhr3/strbench/ascii"
	"github.com/mhr3/strbench/internal/bytealg"
)

// RareByte scans for the pattern's rarest byte and checks the second rarest
// before comparing the whole window. Rarity comes from a rank table, ideally
// one built from the text that will be searched.
type RareByte struct {
	searcher ascii.Searcher
}

// NewRareByte builds the engine. A nil ranks uses ascii.ByteRank; otherwise
// ranks must hold 256 entries.
func NewRareByte(pattern string, ranks []byte) (*RareByte, error) {
	if len(pattern) == 0 {
		return nil, ErrEmptyPattern
	}
	if ranks == nil {
		return &RareByte{searcher: ascii.NewSearcher(pattern)}, nil
	}
	return &RareByte{searcher: ascii.NewSearcherWithRanks(pattern, ranks)}, nil
}

func (r *RareByte) Index(text string) int {
	return r.searcher.Index(text)
}

// Stdlib delegates to the runtime's substring search. It is the reference
// every other engine is checked against.
type Stdlib struct {
	pattern string
}

// NewStdlib wraps pattern.
func NewStdlib(pattern string) (*Stdlib, error) {
	if len(pattern) == 0 {
		return nil, ErrEmptyPattern
	}
	return &Stdlib{pattern: pattern}, nil
}

func (s *Stdlib) Index(text string) int {
	return bytealg.Index(text, s.pattern)
}
