package sim

import (
	"fmt"
	"sort"
	"tesim/genome"
	"github.com/snksoft/crc"
)

// Fingerprint returns a digest of the genome's rendering, for progress
// traces and run summaries.
func Fingerprint(g genome.Genome) uint64 {
	return crc.CalculateCRC(crc.CRC64ECMA, []byte(g.String()))
}

// Verify checks that two genomes hold identical observable state and
// reports the first difference it finds.
func Verify(a, b genome.Genome) error {
	if na, nb := a.Len(), b.Len(); na != nb {
		return fmt.Errorf("length %d != %d: %w", na, nb, Ediverge)
	}

	sa, sb := a.String(), b.String()
	for i := 0; i < len(sa); i++ {
		if sa[i] != sb[i] {
			return fmt.Errorf("cell %d: %q != %q: %w", i, sa[i], sb[i], Ediverge)
		}
	}

	ia, ib := a.ActiveTEs(), b.ActiveTEs()
	if len(ia) != len(ib) {
		return fmt.Errorf("%d active elements != %d: %w", len(ia), len(ib), Ediverge)
	}

	sort.Ints(ia)
	sort.Ints(ib)
	for i := range ia {
		if ia[i] != ib[i] {
			return fmt.Errorf("active element %d != %d: %w", ia[i], ib[i], Ediverge)
		}
	}

	return nil
}
