// Package matrix: domain types shared across dense storage and kernels.
// This file intentionally contains ONLY the public Matrix interface and the
// named scalar constants. Errors live in errors.go and validators in
// validators.go per the package conventions.
package matrix

// ZeroCell is the additive identity for complex cells.
const ZeroCell complex128 = 0

// OneCell is the multiplicative identity for complex cells (diagonal of I).
const OneCell complex128 = 1

// ZeroSum is the initial accumulator value for dot products and expansions.
const ZeroSum complex128 = 0

// ZeroPivot is the sentinel compared against when detecting a dead pivot
// column during reduction and inversion.
const ZeroPivot complex128 = 0

// Matrix represents a two-dimensional mutable array of complex128 values.
//
// The interface is deliberately small: dimension queries, bounds-checked
// cell access, and deep cloning. Algebra lives in package-level kernels and
// in the builder-style methods of the concrete *Dense type.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1).
	At(i, j int) (complex128, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	// Complexity: O(1).
	Set(i, j int, v complex128) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	// Complexity: O(rows*cols).
	Clone() Matrix
}
