package sim

import (
	"testing"
	"tesim/genome"
	"tesim/genome/array"
	"tesim/genome/linked"
	"github.com/stretchr/testify/require"
)

func testModel() Model {
	return Model{
		InsertWeight:  5,
		CopyWeight:    3,
		DisableWeight: 2,
		MaxLen:        4,
		MaxOffset:     12,
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, testModel().Validate())

	mdl := testModel()
	mdl.CopyWeight = -1
	require.ErrorIs(t, mdl.Validate(), Emodel)

	mdl = Model{MaxLen: 4}
	require.ErrorIs(t, mdl.Validate(), Emodel)

	mdl = testModel()
	mdl.MaxLen = 0
	require.ErrorIs(t, mdl.Validate(), Emodel)

	mdl = testModel()
	mdl.MaxOffset = -1
	require.ErrorIs(t, mdl.Validate(), Emodel)

	_, err := New(mdl, 0)
	require.ErrorIs(t, err, Emodel)
}

func TestDeterminism(t *testing.T) {
	r1, err := New(testModel(), 42)
	require.NoError(t, err)
	r2, err := New(testModel(), 42)
	require.NoError(t, err)

	g1 := array.New(15)
	g2 := array.New(15)
	ops1, err := r1.Run(250, g1)
	require.NoError(t, err)
	ops2, err := r2.Run(250, g2)
	require.NoError(t, err)

	require.True(t, genome.Equal(g1, g2))
	require.Equal(t, r1.Stats(), r2.Stats())
	require.Equal(t, ops1, ops2)
	require.Equal(t, Fingerprint(g1), Fingerprint(g2))
}

func TestLockstep(t *testing.T) {
	r, err := New(testModel(), 7)
	require.NoError(t, err)

	ag := array.New(20)
	lg := linked.New(20)
	ops, err := r.Run(300, ag, lg)
	require.NoError(t, err)
	require.Len(t, ops, 300)
	require.NoError(t, Verify(ag, lg))

	st := r.Stats()
	require.Equal(t, 300, st.Steps)
	require.Equal(t, st.Steps, st.Inserts+st.Copies+st.Disables)
}

func TestFallback(t *testing.T) {
	mdl := Model{CopyWeight: 1, MaxLen: 3, MaxOffset: 5}
	r, err := New(mdl, 1)
	require.NoError(t, err)

	// nothing is active yet, so the copy the model demands turns into
	// an insertion
	g := array.New(10)
	require.NoError(t, r.Step(g))

	st := r.Stats()
	require.Equal(t, 1, st.Fallbacks)
	require.Equal(t, 1, st.Inserts)

	// every copy leaves an active element behind, so no further steps
	// fall back
	_, err = r.Run(20, g)
	require.NoError(t, err)
	st = r.Stats()
	require.Equal(t, 20, st.Copies)
	require.Equal(t, 1, st.Fallbacks)
}

func TestReplay(t *testing.T) {
	r, err := New(testModel(), 99)
	require.NoError(t, err)

	g := array.New(25)
	ops, err := r.Run(200, g)
	require.NoError(t, err)
	require.Len(t, ops, 200)
	require.Equal(t, ops, r.Trace())

	// the trace rebuilds the run on any backing
	lg := linked.New(25)
	require.NoError(t, Replay(ops, lg))
	require.NoError(t, Verify(g, lg))

	// an edited trace no longer matches its recorded outcomes
	bad := []Op{{Kind: OpInsert, Pos: 0, N: 2, ID: 7}}
	require.ErrorIs(t, Replay(bad, array.New(4)), Ediverge)
}

func TestVerify(t *testing.T) {
	// same cells, same fingerprint, different active sets
	g1 := array.New(2)
	g1.InsertTE(0, 1)
	g1.InsertTE(0, 1)
	g2 := array.New(2)
	g2.InsertTE(0, 2)

	require.Equal(t, g1.String(), g2.String())
	require.Equal(t, Fingerprint(g1), Fingerprint(g2))
	require.ErrorIs(t, Verify(g1, g2), Ediverge)

	// diverging renders
	g3 := array.New(10)
	g3.InsertTE(2, 2)
	g4 := array.New(10)
	g4.InsertTE(3, 2)
	require.ErrorIs(t, Verify(g3, g4), Ediverge)

	// diverging lengths
	g5 := array.New(10)
	g5.InsertTE(2, 3)
	require.ErrorIs(t, Verify(g3, g5), Ediverge)

	require.NoError(t, Verify(g3, g3))
}

func TestFingerprint(t *testing.T) {
	g := array.New(12)
	h := array.New(12)
	require.Equal(t, Fingerprint(g), Fingerprint(h))

	g.InsertTE(0, 1)
	require.NotEqual(t, Fingerprint(g), Fingerprint(h))
}
