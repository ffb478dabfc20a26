package genome

import (
	"fmt"
	"sort"
)

// Ctor builds a fresh genome of n empty cells.
type Ctor func(n int) Genome

var backings map[string]Ctor

// Register makes a backing available under the given name. The backing
// packages register themselves when imported.
func Register(name string, ctor Ctor) error {
	if backings == nil {
		backings = make(map[string]Ctor)
	}

	if backings[name] != nil {
		return fmt.Errorf("backing '%s' already registered", name)
	}

	backings[name] = ctor
	return nil
}

// New builds a genome of n empty cells using the named backing.
func New(name string, n int) (Genome, error) {
	ctor := backings[name]
	if ctor == nil {
		return nil, fmt.Errorf("'%s': %w", name, Eimpl)
	}

	return ctor(n), nil
}

// Backings returns the registered backing names, sorted.
func Backings() []string {
	names := make([]string, 0, len(backings))
	for name := range backings {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}
