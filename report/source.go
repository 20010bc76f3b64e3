package report

import (
	"sort"
	"strconv"
)

// ParamProvider resolves a `{name}` token found in source text to an
// integer value. Names match by exact byte sequence, including any
// internal spaces, and are looked up in the order the caller prefers
// last-match-wins so that a later definition can override an earlier
// one with the same name.
type ParamProvider interface {
	// Find returns the value bound to name and true if name is bound,
	// or false if it is not.
	Find(name string) (int64, bool)
}

// Params is a ParamProvider backed by an ordered list of name/value
// pairs, mirroring how repeated `--param name=value` flags accumulate
// on a command line: later entries with the same name win.
type Params struct {
	names  []string
	values []int64
}

// NewParams builds an empty Params set.
func NewParams() *Params {
	return &Params{}
}

// Set appends a name/value binding. A name added more than once
// shadows its earlier bindings without removing them.
func (p *Params) Set(name string, value int64) {
	p.names = append(p.names, name)
	p.values = append(p.values, value)
}

// Find implements ParamProvider, searching from the most recently
// added binding backwards.
func (p *Params) Find(name string) (int64, bool) {
	for i := len(p.names) - 1; i >= 0; i-- {
		if p.names[i] == name {
			return p.values[i], true
		}
	}
	return 0, false
}

// Canonical returns the resolved name=value bindings as a sorted slice
// of "name=value" strings, one per distinct name, using each name's
// winning (last-set) value. It gives callers a stable representation
// of a Params set suitable for cache keys or logging, independent of
// the order bindings were added or how many times a name was shadowed.
func (p *Params) Canonical() []string {
	resolved := make(map[string]int64, len(p.names))
	order := make([]string, 0, len(p.names))
	for _, name := range p.names {
		if _, seen := resolved[name]; !seen {
			order = append(order, name)
		}
	}
	for i, name := range p.names {
		resolved[name] = p.values[i]
	}
	sort.Strings(order)
	out := make([]string, len(order))
	for i, name := range order {
		out[i] = name + "=" + strconv.FormatInt(resolved[name], 10)
	}
	return out
}

// MapParams adapts a plain map[string]int64 into a ParamProvider for
// callers that already have their substitutions in that shape (for
// instance, parsed from a JSON/YAML/TOML parameter file).
type MapParams map[string]int64

func (m MapParams) Find(name string) (int64, bool) {
	v, ok := m[name]
	return v, ok
}

// noParams is used when a caller compiles source with no substitutions
// at all; every lookup fails, exactly as an empty Params would.
type noParams struct{}

func (noParams) Find(string) (int64, bool) { return 0, false }
