// Package genome/linked implements the Genome interface on a circular
// doubly-linked chain of cells. Reaching a position costs a walk of the
// chain; the splice itself is a constant-time relink.
package linked

import (
	"fmt"
	"tesim/genome"
)

// cell is one link of the chain. Cells are owned by the chain; nothing
// outside the package ever holds one.
type cell struct {
	marker byte
	prev   *cell
	next   *cell
}

// Genome is the linked backing. head is the sentinel: a non-data node
// marking the start/end boundary, so head.next is logical index 0 and
// head.prev is the last cell. The chain is never empty; an empty genome
// is the sentinel linked to itself.
type Genome struct {
	head *cell

	// Element bookkeeping, identical to the array backing's. It stores
	// offsets only, never cell pointers.
	reg genome.Registry
}

var _ genome.Genome = (*Genome)(nil)

func init() {
	genome.Register("linked", func(n int) genome.Genome { return New(n) })
}

// Creates a new genome of n empty cells. A negative n yields an empty
// genome.
func New(n int) *Genome {
	g := new(Genome)
	g.head = new(cell)
	g.head.prev = g.head
	g.head.next = g.head

	for i := 0; i < n; i++ {
		insertBefore(g.head, genome.Empty)
	}

	return g
}

// insertBefore links a new cell holding the marker immediately before at.
func insertBefore(at *cell, marker byte) {
	c := &cell{marker: marker, prev: at.prev, next: at}
	c.prev.next = c
	c.next.prev = c
}

// at walks to the cell at logical index pos. Walking pos == Len() steps
// goes all the way around and lands on the sentinel itself, which is
// exactly where a splice at the wrap point belongs.
func (g *Genome) at(pos int) *cell {
	c := g.head.next
	for i := 0; i < pos; i++ {
		c = c.next
	}

	return c
}

// Implementation of the Genome interface...

func (g *Genome) InsertTE(pos, n int) (int, error) {
	length := g.Len()
	if pos < 0 || pos > length {
		return 0, fmt.Errorf("insert at %d in genome of %d: %w", pos, length, genome.Ebounds)
	}

	if n < 1 {
		return 0, fmt.Errorf("element of %d cells: %w", n, genome.Elength)
	}

	// an active element strictly containing pos is knocked out first,
	// while its cells are still where its record says they are
	if id, ok := g.reg.Overlap(pos); ok {
		g.DisableTE(id)
	}

	at := g.at(pos)
	for i := 0; i < n; i++ {
		insertBefore(at, genome.Active)
	}

	g.reg.Shift(pos, n)

	return g.reg.Add(pos, n), nil
}

func (g *Genome) CopyTE(te, offset int) (int, bool) {
	rec, ok := g.reg.Lookup(te)
	if !ok || !rec.Active {
		return 0, false
	}

	id, err := g.InsertTE(genome.Mod(rec.Start+offset, g.Len()), rec.Len)

	return id, err == nil
}

func (g *Genome) DisableTE(te int) {
	rec, ok := g.reg.Disable(te)
	if !ok {
		return
	}

	c := g.at(rec.Start)
	for i := 0; i < rec.Len; i++ {
		c.marker = genome.Disabled
		c = c.next
	}
}

func (g *Genome) ActiveTEs() []int {
	return g.reg.Active()
}

// Len counts the cells with a full traversal; the chain keeps no
// cached counter.
func (g *Genome) Len() int {
	n := 0
	for c := g.head.next; c != g.head; c = c.next {
		n++
	}

	return n
}

func (g *Genome) String() string {
	var buf []byte
	for c := g.head.next; c != g.head; c = c.next {
		buf = append(buf, c.marker)
	}

	return string(buf)
}
