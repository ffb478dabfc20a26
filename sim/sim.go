// Package sim drives genomes through a stream of random transposable
// element activity. All randomness comes from one seeded source, so a
// run is fully determined by its model and seed and the same stream can
// be replayed against any backing, or against several in lockstep.
package sim

import (
	"errors"
	"fmt"
	"math/rand"
	"tesim/genome"
)

var Emodel = errors.New("invalid simulation model")
var Ediverge = errors.New("genomes diverge")

// Model holds the tunables of a simulation: the relative weights of the
// three operations and the ranges their arguments are drawn from.
type Model struct {
	InsertWeight  int // weight of inserting a fresh element
	CopyWeight    int // weight of copying an active element
	DisableWeight int // weight of disabling an active element

	MaxLen    int // largest element an insertion splices in
	MaxOffset int // copies land at most this many cells from the source, either way
}

// Validate checks that the model can drive a simulation.
func (m Model) Validate() error {
	if m.InsertWeight < 0 || m.CopyWeight < 0 || m.DisableWeight < 0 {
		return fmt.Errorf("negative operation weight: %w", Emodel)
	}

	if m.InsertWeight+m.CopyWeight+m.DisableWeight < 1 {
		return fmt.Errorf("no operation has weight: %w", Emodel)
	}

	if m.MaxLen < 1 {
		return fmt.Errorf("element length limit %d: %w", m.MaxLen, Emodel)
	}

	if m.MaxOffset < 0 {
		return fmt.Errorf("copy offset limit %d: %w", m.MaxOffset, Emodel)
	}

	return nil
}

// Operation kinds recorded in a trace.
const (
	OpInsert = iota
	OpCopy
	OpDisable
)

// Op records one applied operation and its outcome. A trace of Ops
// replayed on a fresh genome of the same starting size reproduces the
// run exactly.
type Op struct {
	Kind   int
	Pos    int // insert: splice position
	N      int // insert: element length
	TE     int // copy, disable: the element operated on
	Offset int // copy: distance from the source
	ID     int // id of the element the operation created, if any
}

// Stats counts what a run did.
type Stats struct {
	Steps     int // operations executed
	Inserts   int // insertions, fallbacks included
	Copies    int
	Disables  int
	Fallbacks int // copies or disables drawn with nothing active
}

// Runner applies operations drawn from a model to one or more genomes.
type Runner struct {
	mdl   Model
	rnd   *rand.Rand
	stats Stats
	trace []Op

	// cumulative weight thresholds
	wins, wcopy, wtotal int
}

// Creates a new runner. Runners with the same model and seed produce
// the same operation stream.
func New(mdl Model, seed int64) (r *Runner, err error) {
	if err = mdl.Validate(); err != nil {
		return nil, err
	}

	r = new(Runner)
	r.mdl = mdl
	r.rnd = rand.New(rand.NewSource(seed))
	r.wins = mdl.InsertWeight
	r.wcopy = r.wins + mdl.CopyWeight
	r.wtotal = r.wcopy + mdl.DisableWeight

	return r, nil
}

// Stats returns the tallies so far.
func (r *Runner) Stats() Stats {
	return r.stats
}

// Step draws one operation and applies it with identical arguments to
// every genome. Arguments are drawn from the first genome; all genomes
// must report the same outcome or the step fails with Ediverge. A copy
// or disable drawn when nothing is active falls back to an insertion,
// so every step mutates the genomes.
func (r *Runner) Step(gs ...genome.Genome) error {
	if len(gs) == 0 {
		return nil
	}

	kind := OpDisable
	switch p := r.rnd.Intn(r.wtotal); {
	case p < r.wins:
		kind = OpInsert
	case p < r.wcopy:
		kind = OpCopy
	}

	ids := gs[0].ActiveTEs()
	if kind != OpInsert && len(ids) == 0 {
		kind = OpInsert
		r.stats.Fallbacks++
	}

	var op Op
	switch kind {
	case OpInsert:
		pos := r.rnd.Intn(gs[0].Len() + 1)
		n := r.rnd.Intn(r.mdl.MaxLen) + 1
		id, err := insertAll(gs, pos, n)
		if err != nil {
			return err
		}

		op = Op{Kind: OpInsert, Pos: pos, N: n, ID: id}
		r.stats.Inserts++

	case OpCopy:
		te := ids[r.rnd.Intn(len(ids))]
		offset := r.rnd.Intn(2*r.mdl.MaxOffset+1) - r.mdl.MaxOffset
		id, err := copyAll(gs, te, offset)
		if err != nil {
			return err
		}

		op = Op{Kind: OpCopy, TE: te, Offset: offset, ID: id}
		r.stats.Copies++

	default:
		te := ids[r.rnd.Intn(len(ids))]
		for _, g := range gs {
			g.DisableTE(te)
		}

		op = Op{Kind: OpDisable, TE: te}
		r.stats.Disables++
	}

	r.trace = append(r.trace, op)
	r.stats.Steps++

	return nil
}

// Run executes n steps and returns the operations it applied.
func (r *Runner) Run(n int, gs ...genome.Genome) ([]Op, error) {
	start := len(r.trace)
	for i := 0; i < n; i++ {
		if err := r.Step(gs...); err != nil {
			return r.trace[start:], fmt.Errorf("step %d: %w", r.stats.Steps, err)
		}
	}

	return r.trace[start:], nil
}

// Trace returns every operation the runner has applied so far.
func (r *Runner) Trace() []Op {
	return r.trace
}

// Replay applies a recorded trace to a genome. Replaying a runner's
// trace on a fresh genome of the runner's starting size reproduces its
// final state, whatever the backing.
func Replay(ops []Op, g genome.Genome) error {
	for i, op := range ops {
		var err error
		switch op.Kind {
		case OpInsert:
			var id int
			id, err = g.InsertTE(op.Pos, op.N)
			if err == nil && id != op.ID {
				err = fmt.Errorf("insert made element %d instead of %d: %w", id, op.ID, Ediverge)
			}

		case OpCopy:
			id, ok := g.CopyTE(op.TE, op.Offset)
			if !ok {
				err = fmt.Errorf("copy of element %d refused: %w", op.TE, Ediverge)
			} else if id != op.ID {
				err = fmt.Errorf("copy made element %d instead of %d: %w", id, op.ID, Ediverge)
			}

		case OpDisable:
			g.DisableTE(op.TE)

		default:
			err = fmt.Errorf("unknown operation kind %d", op.Kind)
		}

		if err != nil {
			return fmt.Errorf("op %d: %w", i, err)
		}
	}

	return nil
}

func insertAll(gs []genome.Genome, pos, n int) (int, error) {
	id, err := gs[0].InsertTE(pos, n)
	if err != nil {
		return 0, err
	}

	for _, g := range gs[1:] {
		id2, err := g.InsertTE(pos, n)
		if err != nil {
			return 0, err
		}

		if id2 != id {
			return 0, fmt.Errorf("insert ids %d and %d: %w", id, id2, Ediverge)
		}
	}

	return id, nil
}

func copyAll(gs []genome.Genome, te, offset int) (int, error) {
	id, ok := gs[0].CopyTE(te, offset)
	for _, g := range gs[1:] {
		id2, ok2 := g.CopyTE(te, offset)
		if ok2 != ok || (ok && id2 != id) {
			return 0, fmt.Errorf("copy of element %d: %w", te, Ediverge)
		}
	}

	if !ok {
		return 0, fmt.Errorf("active element %d cannot be copied", te)
	}

	return id, nil
}
