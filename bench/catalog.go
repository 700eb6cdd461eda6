package bench

import (
	"fmt"

	"github.com/mhr3/strbench/ascii"
	"github.com/mhr3/strbench/search"
)

// NewCatalog registers every engine in package search for pattern. The
// rare-byte engine takes its rank table from corpus. Any construction error
// aborts: it means the harness is wired wrong, not that an algorithm lost.
func NewCatalog(pattern, corpus string) (*Registry, error) {
	ranks := ascii.BuildRankTable(corpus)

	builders := []struct {
		name  string
		build func() (search.Engine, error)
	}{
		{"horspool", func() (search.Engine, error) { return search.NewHorspool(pattern) }},
		{"bndm", func() (search.Engine, error) { return search.NewBNDM(pattern) }},
		{"knuthMorrisPratt", func() (search.Engine, error) { return search.NewKMP(pattern) }},
		{"split+hash", func() (search.Engine, error) { return search.NewWordSet(pattern) }},
		{"shiftAnd", func() (search.Engine, error) { return search.NewShiftAnd(pattern) }},
		{"shiftOr", func() (search.Engine, error) { return search.NewShiftOr(pattern) }},
		{"sunday", func() (search.Engine, error) { return search.NewSunday(pattern) }},
		{"bom", func() (search.Engine, error) { return search.NewBOM(pattern) }},
		{"wuManber", func() (search.Engine, error) { return search.NewWuManber(pattern) }},
		{"ahoCorasick", func() (search.Engine, error) { return search.NewAhoCorasick(pattern) }},
		{"rareByte", func() (search.Engine, error) { return search.NewRareByte(pattern, ranks[:]) }},
		{"stdlib", func() (search.Engine, error) { return search.NewStdlib(pattern) }},
	}

	r := NewRegistry()
	for _, b := range builders {
		e, err := b.build()
		if err != nil {
			return nil, fmt.Errorf("build %s: %w", b.name, err)
		}
		if err := r.Register(b.name, e); err != nil {
			return nil, err
		}
	}
	return r, nil
}
