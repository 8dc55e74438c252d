package tape_test

import (
	"testing"

	"github.com/gowermello/edgepush/tape"
	"github.com/stretchr/testify/require"
)

// TestNewLeaf_IsSelfSentinel verifies a freshly-created leaf satisfies
// the self-sentinel convention on both edges and starts with zero
// adjoint/curvature (§3 Lifecycles).
func TestNewLeaf_IsSelfSentinel(t *testing.T) {
	tp := tape.NewTape()

	id := tp.NewLeaf()

	require.True(t, tp.IsLeaf(id))
	require.Equal(t, 0.0, tp.Adjoint(id))
	require.Equal(t, 0.0, tp.Curvature(id))
}

// TestIDsAreDenseAndOrdered checks V3: ids are 0..N-1 in creation order.
func TestIDsAreDenseAndOrdered(t *testing.T) {
	tp := tape.NewTape()

	var ids []tape.VertexID
	for i := 0; i < 5; i++ {
		ids = append(ids, tp.NewLeaf())
	}

	for i, id := range ids {
		require.Equal(t, tape.VertexID(i), id)
	}
	require.Equal(t, 5, tp.Len())
}

// TestNewUnary_EdgesAndCurvature checks that e1 points at parent with
// the given weight, e2 is absent, and soW is stored as given (V1, V2).
func TestNewUnary_EdgesAndCurvature(t *testing.T) {
	tp := tape.NewTape()
	x := tp.NewLeaf()

	y := tp.NewUnary(x, 2.0, -1.0)

	require.False(t, tp.IsLeaf(y))
	e1, e2, hasE2 := tp.Edges(y)
	require.False(t, hasE2)
	require.Equal(t, tape.EdgeView{}, e2)
	require.Equal(t, x, e1.Parent)
	require.Equal(t, 2.0, e1.Weight)
	require.Less(t, int(e1.Parent), int(y)) // V1
	require.Equal(t, -1.0, tp.Curvature(y))
}

// TestNewBinary_BothEdgesSet checks both edges are populated for a
// binary op, each pointing to a strictly smaller id (V1).
func TestNewBinary_BothEdgesSet(t *testing.T) {
	tp := tape.NewTape()
	x := tp.NewLeaf()
	y := tp.NewLeaf()

	z := tp.NewBinary(x, y, 3.0, 4.0, 1.0)

	e1, e2, hasE2 := tp.Edges(z)
	require.True(t, hasE2)
	require.Equal(t, x, e1.Parent)
	require.Equal(t, 3.0, e1.Weight)
	require.Equal(t, y, e2.Parent)
	require.Equal(t, 4.0, e2.Weight)
	require.Less(t, int(e1.Parent), int(z))
	require.Less(t, int(e2.Parent), int(z))
}

// TestAddSO_CanonicalizesAndReadsBack exercises the tape-level pass
// through to the accumulator.
func TestAddSO_CanonicalizesAndReadsBack(t *testing.T) {
	tp := tape.NewTape()
	x := tp.NewLeaf()
	y := tp.NewLeaf()

	tp.AddSO(y, x, 5.0)

	require.Equal(t, 5.0, tp.Hessian(x, y))
	require.Equal(t, 5.0, tp.Hessian(y, x))
}

// TestClear_ResetsEverything verifies Clear empties both the vertex
// sequence and the accumulator.
func TestClear_ResetsEverything(t *testing.T) {
	tp := tape.NewTape()
	x := tp.NewLeaf()
	y := tp.NewUnary(x, 1.0, 1.0)
	tp.AddSO(x, y, 2.0)

	tp.Clear()

	require.Equal(t, 0, tp.Len())
	require.Equal(t, 0.0, tp.Hessian(0, 1))
}
