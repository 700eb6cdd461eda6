package ascii

import "github.com/mhr3/strbench/internal/bytealg"

// Searcher performs fast repeated exact substring searches.
// Construct once with NewSearcher, then call Index on multiple haystacks.
// Amortizes pattern analysis cost across many searches.
type Searcher struct {
	raw   string // original pattern
	rare1 byte   // rarest byte, drives the candidate scan
	off1  int    // offset of rare1 in pattern
	rare2 byte   // second rarest byte, filters candidates
	off2  int    // offset of rare2 in pattern
}

// NewSearcher creates a Searcher using the default byte frequency table.
func NewSearcher(pattern string) Searcher {
	return newSearcher(pattern, nil)
}

// NewSearcherWithRanks creates a Searcher using a custom byte frequency table,
// typically one built by BuildRankTable over the text to be searched.
// The ranks slice must have 256 entries where lower values indicate rarer bytes.
func NewSearcherWithRanks(pattern string, ranks []byte) Searcher {
	if len(ranks) != 256 {
		panic("ranks must have exactly 256 entries")
	}
	return newSearcher(pattern, ranks)
}

func newSearcher(pattern string, ranks []byte) Searcher {
	rare1, off1, rare2, off2 := selectRarePair(pattern, ranks)
	return Searcher{
		raw:   pattern,
		rare1: rare1,
		off1:  off1,
		rare2: rare2,
		off2:  off2,
	}
}

// Pattern returns the pattern the Searcher was built for.
func (s Searcher) Pattern() string {
	return s.raw
}

// Index finds the first occurrence of the pattern in haystack.
func (s Searcher) Index(haystack string) int {
	n := len(s.raw)
	if n == 0 {
		return 0
	}
	if len(haystack) < n {
		return -1
	}

	last := len(haystack) - n
	for i := 0; i <= last; i++ {
		// candidates are the starts i where haystack[i+off1] == rare1
		j := bytealg.IndexByte(haystack[i+s.off1:last+s.off1+1], s.rare1)
		if j < 0 {
			return -1
		}
		i += j
		if haystack[i+s.off2] == s.rare2 && haystack[i:i+n] == s.raw {
			return i
		}
	}
	return -1
}
