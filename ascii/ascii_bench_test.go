package ascii

import (
	"strings"
	"testing"
)

type searchBenchCase struct {
	scenario, haystack, needle string
}

func searchBenchCases() []searchBenchCase {
	filler := strings.Repeat("abcdefghijklmnoprstuvwy ", 2730)
	return []searchBenchCase{
		{"notfound", filler, "quartz"},
		{"match_end", filler + "xylophone", "xylophone"},
		{"match_start", "xylophone" + filler, "xylophone"},
		{"json", strings.Repeat(`{"k":"v"},`, 6500) + `{"num":1}`, `"num"`},
		{"samechar", strings.Repeat("a", 64000) + "aab", "aab"},
		{"lorem", strings.Repeat("lorem ipsum dolor sit amet, consectetur ", 1600) + "adipiscing", "adipiscing"},
	}
}

func BenchmarkSearcher(b *testing.B) {
	for _, tc := range searchBenchCases() {
		b.Run(tc.scenario, func(b *testing.B) {
			b.Run("impl=default", func(b *testing.B) {
				s := NewSearcher(tc.needle)
				b.SetBytes(int64(len(tc.haystack)))
				for b.Loop() {
					s.Index(tc.haystack)
				}
			})
			b.Run("impl=corpus", func(b *testing.B) {
				s := NewSearcherWithRanks(tc.needle, rankSlice(BuildRankTable(tc.haystack)))
				b.SetBytes(int64(len(tc.haystack)))
				for b.Loop() {
					s.Index(tc.haystack)
				}
			})
			b.Run("impl=strings", func(b *testing.B) {
				b.SetBytes(int64(len(tc.haystack)))
				for b.Loop() {
					strings.Index(tc.haystack, tc.needle)
				}
			})
		})
	}
}

func BenchmarkValidString(b *testing.B) {
	s := strings.Repeat("lorem ipsum dolor sit amet ", 2400)
	b.SetBytes(int64(len(s)))
	for b.Loop() {
		ValidString(s)
	}
}

func rankSlice(t [256]byte) []byte { return t[:] }
