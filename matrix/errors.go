// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered conditions;
// panics are reserved for programmer errors in private helpers (if any).

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrBadShape is returned when requested dimensions are invalid
	// (rows <= 0, cols <= 0, or an empty/ragged input grid).
	// Constructors must validate before allocation.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrNilGrid indicates that a required cell grid argument was nil.
	ErrNilGrid = errors.New("matrix: nil grid")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrOutOfRange indicates a row or column index outside [0, rows) × [0, cols).
	// Public indexers (At/Set) MUST return this, not panic. The bound is strict
	// (exclusive) on both the read and the write path.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands:
	// Add/Sub/Hadamard/CopyFrom with different shapes, or Mul where
	// a.Cols() != b.Rows().
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required (power,
	// determinant, trace, inverse) but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrInvalidArgument signals a negative power or repetition count.
	ErrInvalidArgument = errors.New("matrix: invalid argument")

	// ErrSingular is returned when Gauss–Jordan inversion cannot find a
	// nonzero pivot for some column (the matrix has no inverse).
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNotImplemented marks an intentionally unsupported operation on the
	// matrix surface.
	ErrNotImplemented = errors.New("matrix: operation not implemented")
)
