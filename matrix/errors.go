// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All routines return these sentinels (optionally wrapped with context via
// %w); tests match them with errors.Is. No routine panics on user input.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a requested shape is invalid (n <= 0).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch signals a matrix whose order does not match the
	// accompanying vectors.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil matrix was passed.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrGraphNil indicates that a nil *core.Graph was passed into an adapter.
	ErrGraphNil = errors.New("matrix: graph is nil")

	// ErrUnknownVertex indicates an adjacency list references an index
	// outside [0, n).
	ErrUnknownVertex = errors.New("matrix: unknown vertex index")

	// ErrNonZeroDiagonal signals a non-zero distance from a vertex to itself.
	ErrNonZeroDiagonal = errors.New("matrix: diagonal not zero")

	// ErrNegativeDistance signals a negative entry in a distance matrix.
	ErrNegativeDistance = errors.New("matrix: negative distance")
)

// matrixErrorf wraps err with an operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
