// SPDX-License-Identifier: MIT
// Dense is a square, row-major matrix of int values, storing elements in a
// flat slice for cache friendliness.

package matrix

import (
	"fmt"
	"strings"
)

// Unreachable is the distance recorded for pairs with no connecting path.
// It is far above any path length or time budget the search deals with,
// yet small enough that adding two of them cannot overflow an int.
const Unreachable = 1 << 30

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is an n×n matrix of int.
type Dense struct {
	n    int   // order (rows == cols)
	data []int // flat backing storage, length == n*n
}

// NewDense creates an n×n Dense matrix initialized to zeros.
// Complexity: O(n²) time and memory.
func NewDense(n int) (*Dense, error) {
	if n <= 0 {
		return nil, ErrBadShape
	}

	return &Dense{n: n, data: make([]int, n*n)}, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.n }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.n }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.n || col < 0 || col >= m.n {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.n + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (int, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v int) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Get is the unchecked accessor used by hot loops that have already
// validated the shape. Out-of-range indices panic like a slice access.
func (m *Dense) Get(row, col int) int { return m.data[row*m.n+col] }

// Reachable reports whether (row, col) holds a finite distance.
func (m *Dense) Reachable(row, col int) bool { return m.Get(row, col) < Unreachable }

// Clone returns a deep copy.
// Complexity: O(n²).
func (m *Dense) Clone() *Dense {
	cp := make([]int, len(m.data))
	copy(cp, m.data)

	return &Dense{n: m.n, data: cp}
}

// Equal reports whether m and o have the same order and entries.
func (m *Dense) Equal(o *Dense) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.n != o.n {
		return false
	}
	for i := range m.data {
		if m.data[i] != o.data[i] {
			return false
		}
	}

	return true
}

// String renders the matrix row by row; Unreachable prints as "-".
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.n; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.n; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			v := m.data[i*m.n+j]
			if v >= Unreachable {
				sb.WriteByte('-')
				continue
			}
			fmt.Fprintf(&sb, "%d", v)
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
