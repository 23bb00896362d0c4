// Package matrix: equality and comparison.
//
// Equal is exact: two matrices are equal iff they have the same dimensions
// and every cell compares == as complex128. EqualValue adds the scalar
// widening rule: a matrix equals a scalar iff it is 1×1 and its sole cell
// equals that scalar, which lets classification code compare uniformly
// against integers, reals, complex values, or other matrices. AllClose is
// the approximate companion for numerically noisy pipelines.

package matrix

import "math/cmplx"

// Equal reports whether a and b have identical dimensions and exactly
// equal cells. A nil operand is never equal to anything.
// Complexity: O(r*c), short-circuiting on the first difference.
func Equal(a, b Matrix) bool {
	if a == nil || b == nil {
		return false
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}

	// Fast-path: flat compare between Dense backings.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				if da.data[idx] != db.data[idx] {
					return false
				}
			}

			return true
		}
	}

	// Fallback: fixed i→j order; At errors are not expected in bounds.
	rows, cols := a.Rows(), a.Cols()
	var av, bv complex128
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			av, _ = a.At(i, j)
			bv, _ = b.At(i, j)
			if av != bv {
				return false
			}
		}
	}

	return true
}

// EqualValue reports whether m equals v under the scalar widening rule.
// Dispatch is by the dynamic kind of v (explicit type-tagged comparison):
//
//   - int, int64, float64, complex128: true iff m is 1×1 and its sole cell
//     equals the scalar (integers and reals widen to complex with zero
//     imaginary part);
//   - Matrix: delegates to Equal;
//   - anything else: false.
//
// Complexity: O(1) for scalars, O(r*c) for matrices.
func EqualValue(m Matrix, v any) bool {
	if m == nil {
		return false
	}

	switch rhs := v.(type) {
	case int:
		return equalScalar(m, complex(float64(rhs), 0))
	case int64:
		return equalScalar(m, complex(float64(rhs), 0))
	case float64:
		return equalScalar(m, complex(rhs, 0))
	case complex128:
		return equalScalar(m, rhs)
	case Matrix:
		return Equal(m, rhs)
	default:
		return false
	}
}

// equalScalar implements the 1×1 widening comparison.
func equalScalar(m Matrix, s complex128) bool {
	if m.Rows() != 1 || m.Cols() != 1 {
		return false
	}
	v, _ := m.At(0, 0)

	return v == s
}

// AllClose checks element-wise |a[i,j] - b[i,j]| <= atol for identical
// shapes. Returns (true, nil) when every cell is within tolerance.
//
// Policy: atol is treated as |atol|; NaN cells never compare close.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*c), Space O(1).
func AllClose(a, b Matrix, atol float64) (bool, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	if atol < 0 {
		atol = -atol
	}

	rows, cols := a.Rows(), a.Cols()
	var av, bv complex128
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			av, _ = a.At(i, j)
			bv, _ = b.At(i, j)
			if !(cmplx.Abs(av-bv) <= atol) { // NaN fails the comparison
				return false, nil
			}
		}
	}

	return true, nil
}
