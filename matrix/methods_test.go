// Package matrix_test contains unit tests for the builder-style in-place
// transforms on Dense.
package matrix_test

import (
	"testing"

	"github.com/fedonman/covex-quantum-circuit-simulator-sub001/matrix"
	"github.com/stretchr/testify/require"
)

func TestDenseTranspose_InPlace(t *testing.T) {
	m := mustFromGrid(t, [][]complex128{{1, 2, 3}, {4, 5, 6}})

	// The receiver itself is returned for chaining.
	got := m.Transpose()
	require.Same(t, m, got)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 2, m.Cols())

	want := mustFromGrid(t, [][]complex128{{1, 4}, {2, 5}, {3, 6}})
	require.True(t, matrix.Equal(m, want))

	// Transposing twice restores the original.
	m.Transpose()
	require.True(t, matrix.Equal(m, mustFromGrid(t, [][]complex128{{1, 2, 3}, {4, 5, 6}})))
}

func TestDenseConjugateTranspose_InPlace(t *testing.T) {
	m := mustFromGrid(t, [][]complex128{{1 + 1i, 2i}, {3, 4}})

	m.ConjugateTranspose()

	want := mustFromGrid(t, [][]complex128{{1 - 1i, 3}, {-2i, 4}})
	require.True(t, matrix.Equal(m, want))
}

func TestMulRight_ReplacesStorage(t *testing.T) {
	m := mustFromGrid(t, [][]complex128{{1, 2}, {3, 4}})
	right := mustFromGrid(t, [][]complex128{{0, 1}, {1, 0}})

	got, err := m.MulRight(right)
	require.NoError(t, err)
	require.Same(t, m, got)

	// Column swap.
	want := mustFromGrid(t, [][]complex128{{2, 1}, {4, 3}})
	require.True(t, matrix.Equal(m, want))
}

func TestMulLeft_ReplacesStorage(t *testing.T) {
	m := mustFromGrid(t, [][]complex128{{1, 2}, {3, 4}})
	left := mustFromGrid(t, [][]complex128{{0, 1}, {1, 0}})

	_, err := m.MulLeft(left)
	require.NoError(t, err)

	// Row swap.
	want := mustFromGrid(t, [][]complex128{{3, 4}, {1, 2}})
	require.True(t, matrix.Equal(m, want))
}

func TestMulRight_MismatchLeavesReceiverUntouched(t *testing.T) {
	m := mustFromGrid(t, [][]complex128{{1, 2}, {3, 4}})
	bad, err := matrix.NewDense(3, 2)
	require.NoError(t, err)

	_, err = m.MulRight(bad)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	// Validation precedes mutation.
	require.True(t, matrix.Equal(m, mustFromGrid(t, [][]complex128{{1, 2}, {3, 4}})))
}

func TestPow(t *testing.T) {
	base := [][]complex128{{1, 1}, {0, 1}}

	// power 0 → identity of matching size.
	m := mustFromGrid(t, base)
	_, err := m.Pow(0)
	require.NoError(t, err)
	require.True(t, m.IsIdentity())

	// power 1 → unchanged.
	m = mustFromGrid(t, base)
	_, err = m.Pow(1)
	require.NoError(t, err)
	require.True(t, matrix.Equal(m, mustFromGrid(t, base)))

	// power 3 of the shear matrix accumulates the off-diagonal.
	m = mustFromGrid(t, base)
	_, err = m.Pow(3)
	require.NoError(t, err)
	want := mustFromGrid(t, [][]complex128{{1, 3}, {0, 1}})
	require.True(t, matrix.Equal(m, want))
}

func TestPow_Errors(t *testing.T) {
	m := mustFromGrid(t, [][]complex128{{1, 2}, {3, 4}})
	_, err := m.Pow(-1)
	require.ErrorIs(t, err, matrix.ErrInvalidArgument)

	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	_, err = rect.Pow(2)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestDenseTensor_InPlace(t *testing.T) {
	m, err := matrix.NewIdentity(2)
	require.NoError(t, err)
	two := mustFromGrid(t, [][]complex128{{2}})

	_, err = m.Tensor(two)
	require.NoError(t, err)

	want := mustFromGrid(t, [][]complex128{{2, 0}, {0, 2}})
	require.True(t, matrix.Equal(m, want))
}

func TestTensorLeft_RoleReversed(t *testing.T) {
	m := mustFromGrid(t, [][]complex128{{2}})
	id, err := matrix.NewIdentity(2)
	require.NoError(t, err)

	_, err = m.TensorLeft(id)
	require.NoError(t, err)

	// left ⊗ self, not self ⊗ left.
	want := mustFromGrid(t, [][]complex128{{2, 0}, {0, 2}})
	require.True(t, matrix.Equal(m, want))
}

func TestTensorPow(t *testing.T) {
	// n == 0 leaves the receiver unchanged.
	x := mustFromGrid(t, [][]complex128{{0, 1}, {1, 0}})
	_, err := x.TensorPow(0)
	require.NoError(t, err)
	require.Equal(t, 2, x.Rows())

	// One application: X ⊗ X is the two-qubit double flip.
	_, err = x.TensorPow(1)
	require.NoError(t, err)
	require.Equal(t, 4, x.Rows())
	require.Equal(t, 4, x.Cols())
	want := mustFromGrid(t, [][]complex128{
		{0, 0, 0, 1},
		{0, 0, 1, 0},
		{0, 1, 0, 0},
		{1, 0, 0, 0},
	})
	require.True(t, matrix.Equal(x, want))

	_, err = x.TensorPow(-1)
	require.ErrorIs(t, err, matrix.ErrInvalidArgument)
}

func TestToReducedRowEchelonForm_ChainsInPlace(t *testing.T) {
	m := mustFromGrid(t, [][]complex128{{2, 4}, {1, 3}})

	got := m.ToReducedRowEchelonForm()
	require.Same(t, m, got)
	require.True(t, m.IsIdentity())
}
