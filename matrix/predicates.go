// Package matrix: structural classification predicates.
//
// All predicates are pure: they never mutate the receiver and compute on
// fresh kernel results. Each returns a plain bool — a shape that rules the
// property out (e.g. non-square for Hermitian) is simply false, not an
// error. Comparisons are exact (see equality.go); the integer-valued gate
// matrices this package targets classify exactly.

package matrix

// IsSquare reports whether the receiver has as many rows as columns.
func (m *Dense) IsSquare() bool {
	return m.r == m.c
}

// IsIdentity reports whether the receiver is square with ones on the
// diagonal and zeros elsewhere.
func (m *Dense) IsIdentity() bool {
	return isIdentity(m)
}

// IsSymmetric reports whether mᵀ == m.
func (m *Dense) IsSymmetric() bool {
	t, err := Transpose(m)
	if err != nil {
		return false
	}

	return Equal(t, m)
}

// IsSkewSymmetric reports whether mᵀ == -m.
func (m *Dense) IsSkewSymmetric() bool {
	t, err := Transpose(m)
	if err != nil {
		return false
	}
	neg, err := Scale(m, -1)
	if err != nil {
		return false
	}

	return Equal(t, neg)
}

// IsHermitian reports whether m† == m (the matrix equals its own adjoint).
// Observables in quantum mechanics are exactly the Hermitian matrices.
func (m *Dense) IsHermitian() bool {
	ct, err := ConjugateTranspose(m)
	if err != nil {
		return false
	}

	return Equal(ct, m)
}

// IsSkewHermitian reports whether m† == -m.
func (m *Dense) IsSkewHermitian() bool {
	ct, err := ConjugateTranspose(m)
	if err != nil {
		return false
	}
	neg, err := Scale(m, -1)
	if err != nil {
		return false
	}

	return Equal(ct, neg)
}

// IsUnitary reports whether m† == m⁻¹. Gate matrices must be unitary:
// applying the adjoint undoes the gate. A non-square or singular matrix is
// simply not unitary.
func (m *Dense) IsUnitary() bool {
	if !m.IsSquare() {
		return false
	}
	inv, err := Inverse(m)
	if err != nil {
		return false // singular ⇒ no inverse ⇒ not unitary
	}
	ct, err := ConjugateTranspose(m)
	if err != nil {
		return false
	}

	return Equal(ct, inv)
}

// IsNormal reports whether m commutes with its adjoint: m×m† == m†×m.
// Every Hermitian, skew-Hermitian, and unitary matrix is normal.
func (m *Dense) IsNormal() bool {
	if !m.IsSquare() {
		return false
	}
	ct, err := ConjugateTranspose(m)
	if err != nil {
		return false
	}
	left, err := Mul(m, ct)
	if err != nil {
		return false
	}
	right, err := Mul(ct, m)
	if err != nil {
		return false
	}

	return Equal(left, right)
}

// IsInvertible reports whether the receiver is square with a nonzero
// determinant.
func (m *Dense) IsInvertible() bool {
	if !m.IsSquare() {
		return false
	}
	det, err := Determinant(m)
	if err != nil {
		return false
	}

	return det != ZeroCell
}

// IsInverseOf reports whether m×other is an identity matrix. The shapes
// must be multiplication-compatible (m.Cols() == other.Rows()); anything
// else is false.
func (m *Dense) IsInverseOf(other Matrix) bool {
	if other == nil || m.c != other.Rows() {
		return false
	}
	prod, err := Mul(m, other)
	if err != nil {
		return false
	}

	return isIdentity(prod)
}

// isIdentity is the shared identity check over any Matrix.
func isIdentity(m Matrix) bool {
	if m.Rows() != m.Cols() {
		return false
	}

	n := m.Rows()
	if d, ok := m.(*Dense); ok {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					if d.data[i*n+j] != OneCell {
						return false
					}
				} else if d.data[i*n+j] != ZeroCell {
					return false
				}
			}
		}

		return true
	}

	var v complex128
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v, _ = m.At(i, j)
			if i == j && v != OneCell {
				return false
			}
			if i != j && v != ZeroCell {
				return false
			}
		}
	}

	return true
}
