// SPDX-License-Identifier: MIT
// Package matrix: structural validators shared with the search package.

package matrix

import "fmt"

// validatorErrorf wraps err with the validator name.
func validatorErrorf(name string, err error) error {
	return fmt.Errorf("%s: %w", name, err)
}

// ValidateOrder ensures m is non-nil and n×n.
// Complexity: O(1).
func ValidateOrder(m *Dense, n int) error {
	if m == nil {
		return validatorErrorf("ValidateOrder", ErrNilMatrix)
	}
	if m.n != n {
		return validatorErrorf("ValidateOrder", ErrDimensionMismatch)
	}

	return nil
}

// ValidateDistances checks the distance-matrix invariants: zero diagonal
// and non-negative entries.
// Complexity: O(n²).
func ValidateDistances(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateDistances", ErrNilMatrix)
	}
	for i := 0; i < m.n; i++ {
		if m.data[i*m.n+i] != 0 {
			return validatorErrorf("ValidateDistances", denseErrorf("At", i, i, ErrNonZeroDiagonal))
		}
	}
	for idx, v := range m.data {
		if v < 0 {
			return validatorErrorf("ValidateDistances", denseErrorf("At", idx/m.n, idx%m.n, ErrNegativeDistance))
		}
	}

	return nil
}
