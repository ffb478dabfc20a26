// Package genome/array implements the Genome interface on a flat,
// randomly indexable sequence of cells. Insertions rebuild the backing
// slice, so they cost O(n); positional access is constant time.
package array

import (
	"fmt"
	"tesim/genome"
)

// Genome is the flat backing. The cell at logical index i is cells[i];
// circularity is conceptual only.
type Genome struct {
	// One marker byte per cell
	cells []byte

	// Element bookkeeping, identical to the linked backing's
	reg genome.Registry
}

var _ genome.Genome = (*Genome)(nil)

func init() {
	genome.Register("array", func(n int) genome.Genome { return New(n) })
}

// Creates a new genome of n empty cells. A negative n yields an empty
// genome.
func New(n int) *Genome {
	if n < 0 {
		n = 0
	}

	g := new(Genome)
	g.cells = make([]byte, n)
	for i := range g.cells {
		g.cells[i] = genome.Empty
	}

	return g
}

// Implementation of the Genome interface...

func (g *Genome) InsertTE(pos, n int) (int, error) {
	if pos < 0 || pos > len(g.cells) {
		return 0, fmt.Errorf("insert at %d in genome of %d: %w", pos, len(g.cells), genome.Ebounds)
	}

	if n < 1 {
		return 0, fmt.Errorf("element of %d cells: %w", n, genome.Elength)
	}

	// an active element strictly containing pos is knocked out first,
	// while its cells are still where its record says they are
	if id, ok := g.reg.Overlap(pos); ok {
		g.DisableTE(id)
	}

	cells := make([]byte, 0, len(g.cells)+n)
	cells = append(cells, g.cells[:pos]...)
	for i := 0; i < n; i++ {
		cells = append(cells, genome.Active)
	}
	g.cells = append(cells, g.cells[pos:]...)

	g.reg.Shift(pos, n)

	return g.reg.Add(pos, n), nil
}

func (g *Genome) CopyTE(te, offset int) (int, bool) {
	rec, ok := g.reg.Lookup(te)
	if !ok || !rec.Active {
		return 0, false
	}

	id, err := g.InsertTE(genome.Mod(rec.Start+offset, len(g.cells)), rec.Len)

	return id, err == nil
}

func (g *Genome) DisableTE(te int) {
	rec, ok := g.reg.Disable(te)
	if !ok {
		return
	}

	for i := rec.Start; i < rec.Start+rec.Len; i++ {
		g.cells[i] = genome.Disabled
	}
}

func (g *Genome) ActiveTEs() []int {
	return g.reg.Active()
}

func (g *Genome) Len() int {
	return len(g.cells)
}

func (g *Genome) String() string {
	return string(g.cells)
}
