// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin, intention-revealing entry points for common tasks.
//   - Avoid any logic duplication — each facade delegates to the canonical
//     kernel or constructor.
//
// Facades never change the loop orders, validation, or numeric behavior of
// the underlying kernels; they only rename.

package matrix

// ---------- Constructors & utilities ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// Thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// CloneMatrix returns a structural clone of m.
// Thin wrapper over Matrix.Clone for API discoverability.
func CloneMatrix(m Matrix) Matrix {
	return m.Clone()
}

// ZerosLike returns a new zero matrix with the same shape as m.
// Handy to preallocate staging buffers.
func ZerosLike(m Matrix) (*Dense, error) {
	return NewDense(m.Rows(), m.Cols())
}

// IdentityLike returns I with dimension = Rows(m); requires square shape.
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return NewIdentity(m.Rows())
}

// ---------- Linear algebra (facades map 1:1 to kernels) ----------

// Sum is an alias for Add: element-wise a + b.
func Sum(a, b Matrix) (*Dense, error) { return Add(a, b) }

// Diff is an alias for Sub: element-wise a − b.
func Diff(a, b Matrix) (*Dense, error) { return Sub(a, b) }

// Product is an alias for Mul: matrix product a × b.
func Product(a, b Matrix) (*Dense, error) { return Mul(a, b) }

// ScaleBy is an alias for Scale: alpha*m for real alpha.
func ScaleBy(m Matrix, alpha float64) (*Dense, error) { return Scale(m, alpha) }

// T is an alias for Transpose: returns mᵀ.
func T(m Matrix) (*Dense, error) { return Transpose(m) }

// Adjoint is an alias for ConjugateTranspose: returns m†.
func Adjoint(m Matrix) (*Dense, error) { return ConjugateTranspose(m) }

// Kron is an alias for Tensor: the Kronecker product a ⊗ b.
func Kron(a, b Matrix) (*Dense, error) { return Tensor(a, b) }

// Det is an alias for Determinant.
func Det(m Matrix) (complex128, error) { return Determinant(m) }

// InverseOf is an alias for Inverse: returns A^{-1} via Gauss–Jordan.
func InverseOf(m Matrix) (*Dense, error) { return Inverse(m) }

// MatVecMul is an alias for MatVec: y = m·x.
func MatVecMul(m Matrix, x []complex128) ([]complex128, error) { return MatVec(m, x) }
