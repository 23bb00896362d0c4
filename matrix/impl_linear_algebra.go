// Package matrix: canonical linear-algebra kernels.
//
// All kernels are pure: operands are never mutated and every result is a
// freshly allocated Dense. Each kernel validates via the central validators
// and wraps failures with its operation tag so errors.Is still matches the
// underlying sentinel. Kernels carry a *Dense fast-path (flat-slice loops)
// and a generic At/Set fallback with fixed, deterministic loop orders.

package matrix

import (
	"fmt"
	"math/cmplx"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opScale     = "Scale"
	opHadamard  = "Hadamard"
	opMatVec    = "MatVec"
	opTranspose = "Transpose"
	opAdjoint   = "ConjugateTranspose"
	opTensor    = "Tensor"
)

// matrixErrorf wraps err with an operation tag, preserving the original
// error via %w. Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Inputs must have identical shapes. A fresh Dense is allocated; operands
// are not mutated. Internal helper for Add/Sub to share validation,
// allocation, and fast-path.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (both via ValidateBinarySameShape).
// Determinism: flat 0..n-1 fast-path; fixed i→j fallback.
// Complexity: Time O(r*c), Space O(r*c) for the new result.
func addSub(a, b Matrix, sign complex128, opTag string) (*Dense, error) {
	// Validate shapes match
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Allocate result Dense
	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			length := rows * cols
			for idx := 0; idx < length; idx++ { // deterministic 0..n-1
				res.data[idx] = da.data[idx] + sign*db.data[idx]
			}

			return res, nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var i, j int
	var av, bv complex128
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			av, err = a.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			bv, err = b.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[i*cols+j] = av + sign*bv
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense.
//
// Errors: ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
// Complexity: Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh Dense.
//
// Errors: ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
// Complexity: Time O(r*c), Space O(r*c).
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Stage 1 (Validate): A, B non-nil and A.Cols == B.Rows.
// Stage 2 (Execute): fast path i→k→j over flat slices with zero-skip on
// A[i,k]; generic fallback i→j→k with a fresh accumulator per cell.
//
// Errors: ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
// Determinism: fixed loop orders; each output cell accumulates into its own
// scalar, so no result cell aliases another during computation.
// Complexity: Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	// Validate inputs via canonical validator
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Allocate result Dense
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var (
		i, j, k         int
		av, bv, current complex128
	)
	// Fast-path for two Dense matrices
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			// row-major multiplication into res.data
			// da.data layout: i*aCols + k; db.data layout: k*bCols + j
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					if av == ZeroCell {
						continue // skip zero for performance
					}
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k)
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum // fresh accumulator per output cell
			for k = 0; k < aCols; k++ {
				av, err = a.At(i, k)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				if av == ZeroCell {
					continue // skip zero for performance
				}
				bv, err = b.At(k, j)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				current += av * bv
			}
			res.data[i*bCols+j] = current
		}
	}

	return res, nil
}

// Scale returns a new matrix whose elements are alpha * m[i,j] for a real
// scalar alpha. The original matrix is never mutated.
//
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(r*c).
func Scale(m Matrix, alpha float64) (*Dense, error) {
	// Validate input non-nil
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	// Allocate result Dense
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	// Widen the real scalar once; complex multiplication handles the rest.
	factor := complex(alpha, 0)

	// Fast-path for Dense → Dense
	if dm, ok := m.(*Dense); ok {
		n := rows * cols
		for idx := 0; idx < n; idx++ {
			res.data[idx] = dm.data[idx] * factor
		}

		return res, nil
	}

	// Fallback: generic interface loop
	var i, j int
	var v complex128
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opScale, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[i*cols+j] = v * factor
		}
	}

	return res, nil
}

// Hadamard computes the elementwise product (a ⊙ b) with a fresh Dense
// result. Hadamard ≠ matrix multiplication; use Mul for A×B.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*c), Space O(r*c).
func Hadamard(a, b Matrix) (*Dense, error) {
	// Validate both operands are non-nil and have identical shapes.
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}

	// Fast-path: both operands are *Dense → operate on flat slices directly.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			n := rows * cols
			for idx := 0; idx < n; idx++ {
				res.data[idx] = da.data[idx] * db.data[idx]
			}

			return res, nil
		}
	}

	// Fallback: generic interface loop (bounds-safe, shape already validated).
	var i, j int
	var av, bv complex128
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			av, err = a.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opHadamard, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			bv, err = b.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opHadamard, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[i*cols+j] = av * bv
		}
	}

	return res, nil
}

// MatVec computes y = m * x for a column vector x. This is the operation a
// circuit simulator runs per gate application: m is the gate, x the state.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []complex128) ([]complex128, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	rows, cols := m.Rows(), m.Cols()
	y := make([]complex128, rows)

	// Fast-path: *Dense allows flat, row-major dot-products.
	if d, ok := m.(*Dense); ok {
		var i, j, base int
		var acc complex128
		for i = 0; i < d.r; i++ {
			acc = ZeroSum // reset accumulator per row
			base = i * d.c
			for j = 0; j < d.c; j++ {
				if x[j] != ZeroCell { // skip zero amplitudes
					acc += d.data[base+j] * x[j]
				}
			}
			y[i] = acc
		}

		return y, nil
	}

	// Fallback: interface-based dot-products via At.
	var i, j int
	var mv complex128
	var err error
	for i = 0; i < rows; i++ {
		y[i] = ZeroSum
		for j = 0; j < cols; j++ {
			mv, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Input is validated non-nil; the original matrix is never mutated.
//
// Errors: ErrNilMatrix.
// Determinism: fixed traversal orders independent of data values.
// Complexity: Time O(r*c), Space O(r*c) for the returned matrix.
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	// Allocate result Dense with flipped dimensions
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	// Fast-path for Dense → Dense
	var i, j int
	if dm, ok := m.(*Dense); ok {
		// data[i*cols + j] → res.data[j*rows + i]
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}

		return res, nil
	}

	// Fallback: generic interface loop
	var v complex128
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// ConjugateTranspose returns the Hermitian conjugate (adjoint) m†: the
// transpose with every cell replaced by its complex conjugate. For a gate
// matrix U this is the operator that undoes U when U is unitary.
//
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(r*c).
func ConjugateTranspose(m Matrix) (*Dense, error) {
	// Transpose first; the kernel validates the input.
	res, err := Transpose(m)
	if err != nil {
		return nil, matrixErrorf(opAdjoint, err)
	}

	// Conjugate every cell of the already-independent result in place.
	for idx := range res.data {
		res.data[idx] = cmplx.Conj(res.data[idx])
	}

	return res, nil
}

// Tensor computes the Kronecker product A ⊗ B. For A (m×n) and B (p×q) the
// result is (m·p)×(n·q): block (i,j) of the output is A[i,j] * B placed at
// row-block i, column-block j. This is how multi-qubit operators are built
// from single-qubit gates.
//
// Errors: ErrNilMatrix.
// Determinism: fixed i→j→k→l block order.
// Complexity: Time O(m*n*p*q), Space O(m*p*n*q).
func Tensor(a, b Matrix) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opTensor, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opTensor, err)
	}

	aRows, aCols := a.Rows(), a.Cols()
	bRows, bCols := b.Rows(), b.Cols()
	res, err := NewDense(aRows*bRows, aCols*bCols)
	if err != nil {
		return nil, matrixErrorf(opTensor, err)
	}
	resCols := aCols * bCols

	// Fast-path for two Dense matrices: pure flat-index arithmetic.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var i, j, k, l int
			var av complex128
			var blockRow, blockColBase int
			for i = 0; i < aRows; i++ {
				for j = 0; j < aCols; j++ {
					av = da.data[i*aCols+j]
					if av == ZeroCell {
						continue // whole block stays zero
					}
					blockColBase = j * bCols
					for k = 0; k < bRows; k++ {
						blockRow = (i*bRows + k) * resCols
						for l = 0; l < bCols; l++ {
							res.data[blockRow+blockColBase+l] = av * db.data[k*bCols+l]
						}
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface loops in the same block order.
	var i, j, k, l int
	var av, bv complex128
	for i = 0; i < aRows; i++ {
		for j = 0; j < aCols; j++ {
			av, err = a.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTensor, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if av == ZeroCell {
				continue
			}
			for k = 0; k < bRows; k++ {
				for l = 0; l < bCols; l++ {
					bv, err = b.At(k, l)
					if err != nil {
						return nil, matrixErrorf(opTensor, fmt.Errorf("At(%d,%d): %w", k, l, err))
					}
					res.data[(i*bRows+k)*resCols+j*bCols+l] = av * bv
				}
			}
		}
	}

	return res, nil
}
