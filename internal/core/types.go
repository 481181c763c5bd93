package core

import "sort"

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Evolver computes the next generation of a grid. Implementations must
// allocate a fresh result and leave the input untouched.
type Evolver func(cur *Grid) *Grid

var evolvers = map[string]Evolver{}

// Register adds an evolution strategy under the provided name.
func Register(name string, e Evolver) {
	if name == "" || e == nil {
		return
	}
	evolvers[name] = e
}

// Lookup returns the strategy registered under name.
func Lookup(name string) (Evolver, bool) {
	e, ok := evolvers[name]
	return e, ok
}

// EvolverNames lists registered strategies in lexical order.
func EvolverNames() []string {
	names := make([]string, 0, len(evolvers))
	for name := range evolvers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
