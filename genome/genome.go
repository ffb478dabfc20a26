// The genome package defines the circular genome contract and the
// bookkeeping shared by its backing implementations.
package genome

import (
	"errors"
	"sort"
)

// Cell markers. A genome renders as a string over this alphabet.
const (
	Empty    = '-'
	Active   = 'A'
	Disabled = 'x'
)

var Ebounds = errors.New("position out of bounds")
var Elength = errors.New("invalid element length")
var Eimpl = errors.New("unknown genome backing")

// Generic interface of a circular genome that tracks transposable
// elements. The actual implementations are in packages array and linked.
type Genome interface {
	// Inserts a new transposable element of n cells immediately before
	// logical index pos (pos may equal Len(), the wrap point). If an
	// active element's interval strictly contains pos, that element is
	// disabled first; at most one element is disabled per insertion.
	// Every recorded element at or after pos shifts right by n.
	// Returns the new element's id, or an error wrapping Ebounds or
	// Elength. A failed insertion leaves the genome untouched.
	InsertTE(pos, n int) (int, error)

	// Copies the element te to an offset from its current location.
	// The offset may be negative; the target wraps around the circular
	// genome in either direction. The copy is a fresh insertion and
	// follows the same collision rule as InsertTE.
	// Returns false without mutating anything if te is not active.
	CopyTE(te, offset int) (int, bool)

	// Disables te: its recorded interval is overwritten with the
	// disabled marker and it leaves the active set. Position and length
	// bookkeeping are kept. Disabling an inactive or unknown element
	// does nothing.
	DisableTE(te int)

	// Ids of the currently active elements. The order is deterministic
	// for a given backing but not part of the contract.
	ActiveTEs() []int

	// Current number of cells. Grows with every insertion, never
	// shrinks.
	Len() int

	// Renders the genome as one marker byte per cell, logical index 0
	// first. By nature the string is linear; the last cell is
	// immediately followed by the first.
	String() string
}

// Mod maps i into [0, n), wrapping negative values, so offsets can move
// both ways around the circle.
func Mod(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}

	return i
}

// Equal reports whether two genomes hold identical observable state:
// same length, same rendering and the same set of active elements.
func Equal(a, b Genome) bool {
	if a.Len() != b.Len() || a.String() != b.String() {
		return false
	}

	ia, ib := a.ActiveTEs(), b.ActiveTEs()
	if len(ia) != len(ib) {
		return false
	}

	sort.Ints(ia)
	sort.Ints(ib)
	for i := range ia {
		if ia[i] != ib[i] {
			return false
		}
	}

	return true
}
