// Package matrix: Dense is the concrete row-major implementation of the
// Matrix interface, storing complex128 cells in a flat slice for
// performance and cache friendliness.

package matrix

import (
	"fmt"
	"strings"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of complex128 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
// The backing slice is owned exclusively by this matrix: constructors and
// Clone always copy, never alias.
type Dense struct {
	r, c int          // number of rows and columns
	data []complex128 // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): return new Dense or ErrBadShape.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	// Validate dimensions
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}
	// Allocate flat slice (zero value of complex128 is the zero scalar)
	data := make([]complex128, rows*cols)

	// Return initialized Dense
	return &Dense{r: rows, c: cols, data: data}, nil
}

// NewDenseFromGrid creates a Dense from a caller-supplied grid of cells.
// The grid's values are kept as-is (no clearing) but DEEP-COPIED into fresh
// storage: the returned matrix never aliases the caller's slices.
// Stage 1 (Validate): grid non-nil, non-empty, rectangular.
// Stage 2 (Execute): copy each row into the flat backing slice.
// Errors: ErrNilGrid (nil grid), ErrBadShape (empty or ragged grid).
// Complexity: O(r*c) time and memory.
func NewDenseFromGrid(grid [][]complex128) (*Dense, error) {
	// Validate presence
	if grid == nil {
		return nil, ErrNilGrid
	}
	// Validate non-empty shape
	rows := len(grid)
	if rows == 0 || len(grid[0]) == 0 {
		return nil, ErrBadShape
	}
	cols := len(grid[0])

	// Copy rows, rejecting ragged input
	data := make([]complex128, rows*cols)
	for i := 0; i < rows; i++ {
		if len(grid[i]) != cols {
			return nil, ErrBadShape
		}
		copy(data[i*cols:(i+1)*cols], grid[i])
	}

	return &Dense{r: rows, c: cols, data: data}, nil
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Determinism: fixed i-loop; single write per diagonal cell.
// Errors: ErrBadShape if n <= 0.
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
func NewIdentity(n int) (*Dense, error) {
	// Allocate an n×n zero matrix via the strict constructor.
	id, err := NewDense(n, n)
	if err != nil {
		return nil, err // propagate constructor error unchanged
	}
	// Set the diagonal deterministically in a single loop.
	for i := 0; i < n; i++ {
		id.data[i*n+i] = OneCell
	}

	return id, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense) Rows() int {
	return m.r
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense) Cols() int {
	return m.c
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// The bound is strict on both ends: 0 ≤ row < r and 0 ≤ col < c. Read and
// write share this single check, so the two paths can never disagree.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	// Validate row index
	if row < 0 || row >= m.r {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}
	// Validate column index
	if col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	// Compute flat offset
	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): read from data slice.
// Complexity: O(1).
func (m *Dense) At(row, col int) (complex128, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return ZeroCell, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): write into data slice.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v complex128) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory for copy.
func (m *Dense) Clone() Matrix {
	// Allocate new slice and copy all elements
	copyData := make([]complex128, len(m.data))
	copy(copyData, m.data)

	return &Dense{r: m.r, c: m.c, data: copyData}
}

// clone is the concrete-typed twin of Clone for internal use.
func (m *Dense) clone() *Dense {
	copyData := make([]complex128, len(m.data))
	copy(copyData, m.data)

	return &Dense{r: m.r, c: m.c, data: copyData}
}

// CopyFrom overwrites this matrix's cells with a deep copy of src's cells.
// Dimensions must already match; CopyFrom never resizes the receiver.
// Errors: ErrNilMatrix (nil src), ErrDimensionMismatch (shape differs).
// Complexity: O(r*c).
func (m *Dense) CopyFrom(src Matrix) error {
	// Validate src non-nil and shape-compatible before any write.
	if err := ValidateNotNil(src); err != nil {
		return fmt.Errorf("Dense.CopyFrom: %w", err)
	}
	if err := ValidateSameShape(m, src); err != nil {
		return fmt.Errorf("Dense.CopyFrom: %w", err)
	}

	// Fast-path: flat copy between Dense backings.
	if ds, ok := src.(*Dense); ok {
		copy(m.data, ds.data)

		return nil
	}

	// Fallback: element-wise copy in fixed i→j order.
	var v complex128
	var err error
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			v, err = src.At(i, j)
			if err != nil {
				return fmt.Errorf("Dense.CopyFrom: At(%d,%d): %w", i, j, err)
			}
			m.data[i*m.c+j] = v
		}
	}

	return nil
}

// replaceWith swaps this matrix's storage for res's storage wholesale.
// Used by the in-place transforms so a dimension change is atomic: callers
// never observe a half-updated grid.
func (m *Dense) replaceWith(res *Dense) {
	m.r, m.c, m.data = res.r, res.c, res.data
}

// String implements fmt.Stringer, rendering all rows on a single line as
// [[c11 c12][c21 c22]] with each cell in its parenthesized complex form.
// Complexity: O(r*c) for string construction.
func (m *Dense) String() string {
	return m.render("")
}

// StringRows renders the matrix like String but inserts a line break after
// each row, which reads better for anything larger than 2×2.
func (m *Dense) StringRows() string {
	return m.render("\n")
}

// render builds the bracketed cell listing with rowSep between rows.
func (m *Dense) render(rowSep string) string {
	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < m.r; i++ {
		if i > 0 {
			b.WriteString(rowSep)
		}
		b.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				b.WriteByte(' ')
			}
			// %v on complex128 yields the parenthesized form, e.g. (1+2i).
			fmt.Fprintf(&b, "%v", m.data[i*m.c+j])
		}
		b.WriteByte(']')
	}
	b.WriteByte(']')

	return b.String()
}
