// Package matrix_test contains unit tests for the pure linear-algebra kernels.
package matrix_test

import (
	"testing"

	"github.com/fedonman/covex-quantum-circuit-simulator-sub001/matrix"
	"github.com/stretchr/testify/require"
)

func TestAdd_Succeeds(t *testing.T) {
	a := mustFromGrid(t, [][]complex128{{1, 2}, {3, 4}})
	b := mustFromGrid(t, [][]complex128{{5, 6}, {7, 8}})

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)

	// Expect [[6,8],[10,12]].
	want := mustFromGrid(t, [][]complex128{{6, 8}, {10, 12}})
	require.True(t, matrix.Equal(sum, want))

	// Operands are untouched.
	require.True(t, matrix.Equal(a, mustFromGrid(t, [][]complex128{{1, 2}, {3, 4}})))
}

func TestAdd_CommutesAndAssociates(t *testing.T) {
	a := mustFromGrid(t, [][]complex128{{1, 2i}, {3, 4}})
	b := mustFromGrid(t, [][]complex128{{5, 6}, {7i, 8}})
	c := mustFromGrid(t, [][]complex128{{-1, 0}, {2, 1i}})

	ab, err := matrix.Add(a, b)
	require.NoError(t, err)
	ba, err := matrix.Add(b, a)
	require.NoError(t, err)
	require.True(t, matrix.Equal(ab, ba))

	abc1, err := matrix.Add(ab, c)
	require.NoError(t, err)
	bc, err := matrix.Add(b, c)
	require.NoError(t, err)
	abc2, err := matrix.Add(a, bc)
	require.NoError(t, err)
	require.True(t, matrix.Equal(abc1, abc2))
}

func TestAdd_DimensionMismatch(t *testing.T) {
	a, _ := matrix.NewDense(2, 2)
	b, _ := matrix.NewDense(3, 2)
	_, err := matrix.Add(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestSub_SelfIsZero(t *testing.T) {
	a := mustFromGrid(t, [][]complex128{{1, 2i}, {3, 4 - 1i}})

	diff, err := matrix.Sub(a, a)
	require.NoError(t, err)

	zero, err := matrix.ZerosLike(a)
	require.NoError(t, err)
	require.True(t, matrix.Equal(diff, zero))
}

func TestSub_DimensionMismatch(t *testing.T) {
	a, _ := matrix.NewDense(2, 3)
	b, _ := matrix.NewDense(2, 2)
	_, err := matrix.Sub(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestMul_Succeeds(t *testing.T) {
	// A is 2×3, B is 3×2: A*B = 2×2.
	a := mustFromGrid(t, [][]complex128{{1, 2, 3}, {4, 5, 6}})
	b := mustFromGrid(t, [][]complex128{{7, 8}, {9, 10}, {11, 12}})

	c, err := matrix.Mul(a, b)
	require.NoError(t, err)

	want := mustFromGrid(t, [][]complex128{{58, 64}, {139, 154}})
	require.True(t, matrix.Equal(c, want))
}

func TestMul_Associates(t *testing.T) {
	a := mustFromGrid(t, [][]complex128{{1, 2}, {3, 4}})
	b := mustFromGrid(t, [][]complex128{{0, 1i}, {1, 0}})
	c := mustFromGrid(t, [][]complex128{{2, 0}, {1, 1}})

	ab, err := matrix.Mul(a, b)
	require.NoError(t, err)
	left, err := matrix.Mul(ab, c)
	require.NoError(t, err)

	bc, err := matrix.Mul(b, c)
	require.NoError(t, err)
	right, err := matrix.Mul(a, bc)
	require.NoError(t, err)

	require.True(t, matrix.Equal(left, right))
}

func TestMul_IdentityIsNoOp(t *testing.T) {
	a := mustFromGrid(t, [][]complex128{{1, 2i}, {3, 4}})
	id, err := matrix.NewIdentity(2)
	require.NoError(t, err)

	left, err := matrix.Mul(id, a)
	require.NoError(t, err)
	right, err := matrix.Mul(a, id)
	require.NoError(t, err)

	require.True(t, matrix.Equal(left, a))
	require.True(t, matrix.Equal(right, a))
}

func TestMul_DimensionMismatch(t *testing.T) {
	a, _ := matrix.NewDense(2, 3)
	b, _ := matrix.NewDense(2, 2)
	_, err := matrix.Mul(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestScale(t *testing.T) {
	a := mustFromGrid(t, [][]complex128{{1, 2i}, {-3, 4}})

	s, err := matrix.Scale(a, -2)
	require.NoError(t, err)

	want := mustFromGrid(t, [][]complex128{{-2, -4i}, {6, -8}})
	require.True(t, matrix.Equal(s, want))
}

func TestHadamardProduct(t *testing.T) {
	a := mustFromGrid(t, [][]complex128{{1, 2}, {3, 4}})
	b := mustFromGrid(t, [][]complex128{{2, 0}, {1i, 2}})

	h, err := matrix.Hadamard(a, b)
	require.NoError(t, err)

	want := mustFromGrid(t, [][]complex128{{2, 0}, {3i, 8}})
	require.True(t, matrix.Equal(h, want))
}

func TestMatVec_AppliesGateToState(t *testing.T) {
	// CNOT on the basis state |10⟩ yields |11⟩.
	cnot := mustFromGrid(t, [][]complex128{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 0, 1},
		{0, 0, 1, 0},
	})
	state := []complex128{0, 0, 1, 0}

	out, err := matrix.MatVec(cnot, state)
	require.NoError(t, err)
	require.Equal(t, []complex128{0, 0, 0, 1}, out)

	// Length mismatch is a dimension error.
	_, err = matrix.MatVec(cnot, []complex128{1, 0})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestTranspose_Involution(t *testing.T) {
	m := mustFromGrid(t, [][]complex128{{1, 2, 3}, {4, 5, 6}})

	tm, err := matrix.Transpose(m)
	require.NoError(t, err)
	require.Equal(t, 3, tm.Rows())
	require.Equal(t, 2, tm.Cols())

	back, err := matrix.Transpose(tm)
	require.NoError(t, err)
	require.True(t, matrix.Equal(back, m))
}

func TestConjugateTranspose(t *testing.T) {
	m := mustFromGrid(t, [][]complex128{{1 + 1i, 2}, {3i, 4 - 2i}})

	ct, err := matrix.ConjugateTranspose(m)
	require.NoError(t, err)

	want := mustFromGrid(t, [][]complex128{{1 - 1i, -3i}, {2, 4 + 2i}})
	require.True(t, matrix.Equal(ct, want))

	// Adjoint is an involution: (m†)† == m.
	back, err := matrix.ConjugateTranspose(ct)
	require.NoError(t, err)
	require.True(t, matrix.Equal(back, m))
}

func TestTensor_Dimensions(t *testing.T) {
	a, _ := matrix.NewDense(2, 3)
	b, _ := matrix.NewDense(4, 5)

	k, err := matrix.Tensor(a, b)
	require.NoError(t, err)
	require.Equal(t, 8, k.Rows())
	require.Equal(t, 15, k.Cols())
}

func TestTensor_Values(t *testing.T) {
	// [[1,0],[0,1]] ⊗ [[2]] == [[2,0],[0,2]].
	id, err := matrix.NewIdentity(2)
	require.NoError(t, err)
	two := mustFromGrid(t, [][]complex128{{2}})

	k, err := matrix.Tensor(id, two)
	require.NoError(t, err)
	want := mustFromGrid(t, [][]complex128{{2, 0}, {0, 2}})
	require.True(t, matrix.Equal(k, want))

	// A richer block check: [[1,2]] ⊗ [[0,1],[1,0]].
	a := mustFromGrid(t, [][]complex128{{1, 2}})
	x := mustFromGrid(t, [][]complex128{{0, 1}, {1, 0}})
	k, err = matrix.Tensor(a, x)
	require.NoError(t, err)
	want = mustFromGrid(t, [][]complex128{
		{0, 1, 0, 2},
		{1, 0, 2, 0},
	})
	require.True(t, matrix.Equal(k, want))
}

func TestTrace(t *testing.T) {
	m := mustFromGrid(t, [][]complex128{{1, 2}, {3, 4i}})

	tr, err := matrix.Trace(m)
	require.NoError(t, err)
	require.Equal(t, 1+4i, tr)

	rect, _ := matrix.NewDense(2, 3)
	_, err = matrix.Trace(rect)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestKernels_NilInput(t *testing.T) {
	m, _ := matrix.NewDense(2, 2)

	_, err := matrix.Add(nil, m)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Mul(m, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Transpose(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Tensor(nil, m)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
