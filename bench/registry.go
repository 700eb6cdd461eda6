package bench

import (
	"fmt"

	"github.com/mhr3/strbench/search"
)

// Probe is one bound search: an engine and the text it searches. Run has no
// side effects, so a probe may be run any number of times.
type Probe struct {
	engine search.Engine
	text   string
}

// Run reports whether the engine finds its pattern in the bound text.
func (p Probe) Run() bool {
	return p.engine.Index(p.text) >= 0
}

// Entry is a named engine.
type Entry struct {
	Name   string
	Engine search.Engine
}

// Probe binds the entry's engine to text.
func (e Entry) Probe(text string) Probe {
	return Probe{engine: e.Engine, text: text}
}

// Registry maps algorithm names to engines. It is filled once at startup and
// only read afterwards.
type Registry struct {
	entries []Entry
	index   map[string]int
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{index: make(map[string]int)}
}

// Register adds engine under name. Names are unique; registering one twice
// returns ErrDuplicateAlgorithm.
func (r *Registry) Register(name string, engine search.Engine) error {
	if name == "" {
		return ErrEmptyName
	}
	if engine == nil {
		return fmt.Errorf("bench: nil engine for %q", name)
	}
	if _, ok := r.index[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateAlgorithm, name)
	}
	r.index[name] = len(r.entries)
	r.entries = append(r.entries, Entry{Name: name, Engine: engine})
	return nil
}

// Lookup returns the entry registered under name.
func (r *Registry) Lookup(name string) (Entry, bool) {
	i, ok := r.index[name]
	if !ok {
		return Entry{}, false
	}
	return r.entries[i], true
}

// All returns every entry in registration order.
func (r *Registry) All() []Entry {
	return append([]Entry(nil), r.entries...)
}

// Len returns the number of registered algorithms.
func (r *Registry) Len() int {
	return len(r.entries)
}
