package genome

// TE describes one transposable element. Start and Len are cell offsets
// into the current genome; Start is kept up to date as later insertions
// shift the sequence.
type TE struct {
	ID     int
	Start  int
	Len    int
	Active bool
}

// Registry tracks every element ever inserted into a genome. Ids are
// assigned sequentially starting at 1 and never reused, so records live
// in a slice with the record for id i at index i-1. Iteration over the
// slice is in id order, which keeps scans deterministic regardless of
// the backing. The zero Registry is empty and ready to use.
//
// The registry stores offsets only, never references into the backing
// storage; both backings share it unchanged.
type Registry struct {
	tes []TE
}

// Add records a new active element at the given start and returns its id.
func (r *Registry) Add(start, n int) int {
	id := len(r.tes) + 1
	r.tes = append(r.tes, TE{ID: id, Start: start, Len: n, Active: true})

	return id
}

// Lookup returns the record for id, false if no such element exists.
func (r *Registry) Lookup(id int) (TE, bool) {
	if id < 1 || id > len(r.tes) {
		return TE{}, false
	}

	return r.tes[id-1], true
}

// Overlap finds the first active element, in id order, whose open
// interval strictly contains pos. An element starting or ending exactly
// at pos does not qualify. Returns false if no element qualifies.
func (r *Registry) Overlap(pos int) (int, bool) {
	for _, te := range r.tes {
		if te.Active && te.Start < pos && pos < te.Start+te.Len {
			return te.ID, true
		}
	}

	return 0, false
}

// Disable marks id inactive and returns its record so the caller can
// rewrite the cells it covers. Returns false if id is unknown or
// already inactive; the registry is untouched in that case.
func (r *Registry) Disable(id int) (TE, bool) {
	if id < 1 || id > len(r.tes) || !r.tes[id-1].Active {
		return TE{}, false
	}

	r.tes[id-1].Active = false

	return r.tes[id-1], true
}

// Shift moves every record starting at or after pos right by n. Records
// keep describing absolute positions after cells are spliced in before
// them; inactive records shift the same way.
func (r *Registry) Shift(pos, n int) {
	for i := range r.tes {
		if r.tes[i].Start >= pos {
			r.tes[i].Start += n
		}
	}
}

// Active returns the ids of the active elements in id order.
func (r *Registry) Active() []int {
	ids := []int{}
	for _, te := range r.tes {
		if te.Active {
			ids = append(ids, te.ID)
		}
	}

	return ids
}
