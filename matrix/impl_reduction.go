// Package matrix: row reduction, determinants, and inversion.
//
// ReduceToRREF is the only in-place kernel in the package (mirroring how a
// caller uses it: canonicalize this matrix, keep the binding). Determinant
// uses recursive cofactor expansion — intentionally simple and exponential,
// sized for the small gate matrices this package targets. Inverse runs
// Gauss–Jordan on the matrix augmented with the identity, with a downward
// pivot scan per column.

package matrix

// Operation tags for this file's kernels.
const (
	opRREF    = "ReduceToRREF"
	opDet     = "Determinant"
	opInverse = "Inverse"
	opTrace   = "Trace"
)

// ReduceToRREF transforms m in place into reduced row-echelon form via
// Gauss–Jordan elimination.
//
// Algorithm: maintain a pivot-column cursor lead starting at 0. For each row
// r in order: scan downward from row r for a nonzero entry in column lead;
// if no remaining row has one, advance lead and retry (stopping once columns
// are exhausted); swap the found row into position r; normalize row r by its
// pivot; eliminate column lead from every other row; advance lead.
//
// A singular or degenerate matrix is NOT an error: columns that yield no
// pivot are simply skipped and the corresponding rows stay unreduced there.
//
// Errors: ErrNilMatrix only.
// Determinism: fixed scan and elimination orders.
// Complexity: Time O(r^2*c), Space O(1) beyond the matrix itself.
func ReduceToRREF(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opRREF, err)
	}

	// Fast-path: flat-slice Gauss–Jordan on Dense.
	if d, ok := m.(*Dense); ok {
		rrefDense(d)

		return nil
	}

	rrefGeneric(m)

	return nil
}

// rrefDense runs Gauss–Jordan directly on the flat backing slice.
func rrefDense(d *Dense) {
	rows, cols := d.r, d.c
	lead := 0
	var i, j, h, r int
	var pivot, factor complex128
	for r = 0; r < rows; r++ {
		if lead >= cols {
			return
		}
		// Scan downward from row r for a nonzero entry in column lead.
		i = r
		for d.data[i*cols+lead] == ZeroPivot {
			i++
			if i == rows {
				// No pivot in this column; move to the next one.
				i = r
				lead++
				if lead == cols {
					return
				}
			}
		}
		// Swap the found row into position r.
		if i != r {
			for j = 0; j < cols; j++ {
				d.data[i*cols+j], d.data[r*cols+j] = d.data[r*cols+j], d.data[i*cols+j]
			}
		}
		// Normalize row r by the pivot value.
		pivot = d.data[r*cols+lead]
		for j = 0; j < cols; j++ {
			d.data[r*cols+j] /= pivot
		}
		// Eliminate column lead from every other row.
		for h = 0; h < rows; h++ {
			if h == r {
				continue
			}
			factor = d.data[h*cols+lead]
			if factor == ZeroCell {
				continue
			}
			for j = 0; j < cols; j++ {
				d.data[h*cols+j] -= factor * d.data[r*cols+j]
			}
		}
		lead++
	}
}

// rrefGeneric is the interface fallback. At/Set errors are not expected
// after the nil check since every index stays in bounds by construction.
func rrefGeneric(m Matrix) {
	rows, cols := m.Rows(), m.Cols()
	lead := 0
	var i, j, h, r int
	var pivot, factor, vi, vr complex128
	for r = 0; r < rows; r++ {
		if lead >= cols {
			return
		}
		i = r
		for {
			vi, _ = m.At(i, lead)
			if vi != ZeroPivot {
				break
			}
			i++
			if i == rows {
				i = r
				lead++
				if lead == cols {
					return
				}
			}
		}
		if i != r {
			for j = 0; j < cols; j++ {
				vi, _ = m.At(i, j)
				vr, _ = m.At(r, j)
				_ = m.Set(i, j, vr)
				_ = m.Set(r, j, vi)
			}
		}
		pivot, _ = m.At(r, lead)
		for j = 0; j < cols; j++ {
			vr, _ = m.At(r, j)
			_ = m.Set(r, j, vr/pivot)
		}
		for h = 0; h < rows; h++ {
			if h == r {
				continue
			}
			factor, _ = m.At(h, lead)
			if factor == ZeroCell {
				continue
			}
			for j = 0; j < cols; j++ {
				vi, _ = m.At(h, j)
				vr, _ = m.At(r, j)
				_ = m.Set(h, j, vi-factor*vr)
			}
		}
		lead++
	}
}

// Determinant computes det(m) by cofactor expansion along column 0.
// Base cases: a 1×1 matrix returns its sole cell; a 2×2 returns ad − bc.
// Recursive case: for each row h with a nonzero leading entry, expand into
// the minor with row h and column 0 removed, adding for even h and
// subtracting for odd h. Rows with a zero leading entry contribute nothing
// and are skipped.
//
// This is exponential in matrix size — fine for the small matrices this
// system targets. Callers needing large determinants should substitute an
// LU-based routine at the boundary, not inside this kernel.
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: Time O(n!), Space O(n^2) recursion working set.
func Determinant(m Matrix) (complex128, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return ZeroCell, matrixErrorf(opDet, err)
	}

	return determinant(m), nil
}

// determinant is the unvalidated recursive core. At errors are not expected:
// every index is in bounds by construction.
func determinant(m Matrix) complex128 {
	n := m.Rows()
	switch n {
	case 1:
		v, _ := m.At(0, 0)

		return v
	case 2:
		a, _ := m.At(0, 0)
		b, _ := m.At(0, 1)
		c, _ := m.At(1, 0)
		d, _ := m.At(1, 1)

		return a*d - b*c
	}

	det := ZeroSum
	var lead, term complex128
	for h := 0; h < n; h++ {
		lead, _ = m.At(h, 0)
		if lead == ZeroCell {
			continue // zero cofactor contributes nothing
		}
		term = lead * determinant(minorAt(m, h))
		if h%2 == 0 {
			det += term
		} else {
			det -= term
		}
	}

	return det
}

// minorAt returns the (n-1)×(n-1) matrix with row skipRow and column 0
// removed. The result owns fresh storage.
func minorAt(m Matrix, skipRow int) *Dense {
	n := m.Rows()
	sub := &Dense{r: n - 1, c: n - 1, data: make([]complex128, (n-1)*(n-1))}
	var v complex128
	dst := 0
	for i := 0; i < n; i++ {
		if i == skipRow {
			continue
		}
		for j := 1; j < n; j++ {
			v, _ = m.At(i, j)
			sub.data[dst] = v
			dst++
		}
	}

	return sub
}

// Inverse computes A^{-1} via Gauss–Jordan elimination on the augmented
// matrix [A | I].
// Stage 1 (Validate): m non-nil and square.
// Stage 2 (Prepare): build the n×2n augmented Dense with A left, I right.
// Stage 3 (Execute): per column, scan downward for a nonzero pivot, swap it
// up, normalize, and eliminate the column from all other rows.
// Stage 4 (Finalize): the right half is A^{-1}.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrSingular (a column with no pivot).
// Determinism: fixed column order and downward pivot scans.
// Complexity: Time O(n^3), Space O(n^2).
func Inverse(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	// Build the augmented matrix [A | I].
	n := m.Rows()
	width := 2 * n
	aug := &Dense{r: n, c: width, data: make([]complex128, n*width)}
	var i, j int
	var v complex128
	if dm, ok := m.(*Dense); ok {
		for i = 0; i < n; i++ {
			copy(aug.data[i*width:i*width+n], dm.data[i*n:(i+1)*n])
		}
	} else {
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				v, _ = m.At(i, j)
				aug.data[i*width+j] = v
			}
		}
	}
	for i = 0; i < n; i++ {
		aug.data[i*width+n+i] = OneCell
	}

	// Gauss–Jordan on the augmented rows.
	var col, r, pivotRow int
	var pivot, factor complex128
	for col = 0; col < n; col++ {
		// Downward pivot scan starting at the diagonal row.
		pivotRow = -1
		for r = col; r < n; r++ {
			if aug.data[r*width+col] != ZeroPivot {
				pivotRow = r
				break
			}
		}
		if pivotRow < 0 {
			return nil, matrixErrorf(opInverse, ErrSingular)
		}
		// Swap the pivot row into the diagonal position.
		if pivotRow != col {
			for j = 0; j < width; j++ {
				aug.data[pivotRow*width+j], aug.data[col*width+j] = aug.data[col*width+j], aug.data[pivotRow*width+j]
			}
		}
		// Normalize the pivot row.
		pivot = aug.data[col*width+col]
		for j = 0; j < width; j++ {
			aug.data[col*width+j] /= pivot
		}
		// Eliminate the column from all other rows.
		for r = 0; r < n; r++ {
			if r == col {
				continue
			}
			factor = aug.data[r*width+col]
			if factor == ZeroCell {
				continue
			}
			for j = 0; j < width; j++ {
				aug.data[r*width+j] -= factor * aug.data[col*width+j]
			}
		}
	}

	// Extract the right half as the inverse.
	inv := &Dense{r: n, c: n, data: make([]complex128, n*n)}
	for i = 0; i < n; i++ {
		copy(inv.data[i*n:(i+1)*n], aug.data[i*width+n:(i+1)*width])
	}

	return inv, nil
}

// Trace returns the sum of the diagonal cells of a square matrix.
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: Time O(n), Space O(1).
func Trace(m Matrix) (complex128, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return ZeroCell, matrixErrorf(opTrace, err)
	}

	sum := ZeroSum
	n := m.Rows()
	if d, ok := m.(*Dense); ok {
		for i := 0; i < n; i++ {
			sum += d.data[i*n+i]
		}

		return sum, nil
	}

	var v complex128
	for i := 0; i < n; i++ {
		v, _ = m.At(i, i)
		sum += v
	}

	return sum, nil
}
