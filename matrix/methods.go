// Package matrix: builder-style in-place transforms on *Dense.
//
// Every method here mutates the receiver by computing the result through a
// pure kernel and then swapping the backing grid wholesale (replaceWith).
// The receiver is returned so calls chain without a new binding:
//
//	gate.Tensor(other).ConjugateTranspose()
//
// Methods that can fail return (*Dense, error); on error the receiver is
// untouched — validation precedes mutation throughout.

package matrix

// Transpose swaps the receiver's rows and columns in place and returns it.
// The storage is replaced atomically with the columns×rows result.
// Complexity: O(r*c).
func (m *Dense) Transpose() *Dense {
	// The kernel cannot fail for a non-nil receiver.
	res, _ := Transpose(m)
	m.replaceWith(res)

	return m
}

// ConjugateTranspose replaces the receiver with its Hermitian conjugate
// (adjoint) m† in place and returns it.
// Complexity: O(r*c).
func (m *Dense) ConjugateTranspose() *Dense {
	res, _ := ConjugateTranspose(m)
	m.replaceWith(res)

	return m
}

// MulRight computes m×right and replaces the receiver's storage with the
// product, returning the receiver. This is "multiply as the left side":
// the receiver keeps its role as the left operand.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (m.Cols() != right.Rows()).
func (m *Dense) MulRight(right Matrix) (*Dense, error) {
	res, err := Mul(m, right)
	if err != nil {
		return nil, err
	}
	m.replaceWith(res)

	return m, nil
}

// MulLeft computes left×m and replaces the receiver's storage with the
// product, returning the receiver. This is "multiply as the right side".
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (left.Cols() != m.Rows()).
func (m *Dense) MulLeft(left Matrix) (*Dense, error) {
	res, err := Mul(left, m)
	if err != nil {
		return nil, err
	}
	m.replaceWith(res)

	return m, nil
}

// Pow raises the receiver to the given non-negative power in place.
// power == 0 yields the identity of matching size; otherwise power-1
// multiplications are applied to a working clone, and the receiver's
// storage is replaced with the final product.
//
// Errors: ErrNonSquare (receiver not square), ErrInvalidArgument (power < 0).
// Complexity: O(power * n^3).
func (m *Dense) Pow(power int) (*Dense, error) {
	// Validate before any mutation.
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf("Pow", err)
	}
	if power < 0 {
		return nil, matrixErrorf("Pow", ErrInvalidArgument)
	}

	if power == 0 {
		id, err := NewIdentity(m.r)
		if err != nil {
			return nil, matrixErrorf("Pow", err)
		}
		m.replaceWith(id)

		return m, nil
	}

	// Repeated self-multiplication on a working clone.
	base := m.clone()
	acc := m.clone()
	var err error
	for i := 1; i < power; i++ {
		acc, err = Mul(acc, base)
		if err != nil {
			return nil, matrixErrorf("Pow", err)
		}
	}
	m.replaceWith(acc)

	return m, nil
}

// Tensor replaces the receiver with the Kronecker product m ⊗ other and
// returns it. For an m×n receiver and p×q other the receiver becomes
// (m·p)×(n·q).
//
// Errors: ErrNilMatrix (nil other).
func (m *Dense) Tensor(other Matrix) (*Dense, error) {
	res, err := Tensor(m, other)
	if err != nil {
		return nil, err
	}
	m.replaceWith(res)

	return m, nil
}

// TensorLeft replaces the receiver with the role-reversed Kronecker product
// left ⊗ m and returns it.
//
// Errors: ErrNilMatrix (nil left).
func (m *Dense) TensorLeft(left Matrix) (*Dense, error) {
	res, err := Tensor(left, m)
	if err != nil {
		return nil, err
	}
	m.replaceWith(res)

	return m, nil
}

// TensorPow applies the self-tensor n times sequentially: each application
// tensors the current value with a snapshot of the original receiver, so
// the result after n applications is A^{⊗(n+1)}. n == 0 leaves the receiver
// unchanged.
//
// Errors: ErrInvalidArgument (n < 0).
// Complexity: the result has (r*c)^(n+1) cells — callers control n.
func (m *Dense) TensorPow(n int) (*Dense, error) {
	if n < 0 {
		return nil, matrixErrorf("TensorPow", ErrInvalidArgument)
	}

	// Snapshot the original operand; each step tensors against it.
	base := m.clone()
	acc := m.clone()
	var err error
	for i := 0; i < n; i++ {
		acc, err = Tensor(acc, base)
		if err != nil {
			return nil, matrixErrorf("TensorPow", err)
		}
	}
	m.replaceWith(acc)

	return m, nil
}

// ToReducedRowEchelonForm canonicalizes the receiver in place via
// Gauss–Jordan elimination and returns it. Singular input is not an error:
// pivot-free columns are skipped (see ReduceToRREF).
func (m *Dense) ToReducedRowEchelonForm() *Dense {
	// The kernel cannot fail for a non-nil receiver.
	_ = ReduceToRREF(m)

	return m
}
