// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Hop-count APSP (Floyd–Warshall) with deterministic loop order.
//   - Builders from adjacency lists and from *core.Graph.
//
// Contract:
//   - Square matrix; Unreachable means "no path"; diagonal 0 before calling.

package matrix

import "github.com/katalvlaran/valveflow/core"

// Operation name constants for unified error wrapping.
const (
	opFloydWarshall = "FloydWarshall"
	opNewDistances  = "NewDistances"
	opFromGraph     = "FromGraph"
)

// initDistances fills d from adjacency lists:
//
//	diag = 0; listed neighbor = 1; everything else = Unreachable.
//
// Complexity: O(n² + E).
func initDistances(d *Dense, adj [][]int) error {
	n := d.n
	for i := range d.data {
		d.data[i] = Unreachable
	}
	for i := 0; i < n; i++ {
		d.data[i*n+i] = 0
		for _, j := range adj[i] {
			if j < 0 || j >= n {
				return denseErrorf("init", i, j, ErrUnknownVertex)
			}
			if j != i {
				d.data[i*n+j] = 1
			}
		}
	}

	return nil
}

// floydWarshallInPlace runs the APSP closure on d.
//
// Loop order is fixed (k → i → j): when pair (i, j) is relaxed through k,
// every path using only intermediates below k is already reflected.
// Legs equal to Unreachable are skipped so the sentinel never grows.
// Time: O(n³); Extra space: O(1).
func floydWarshallInPlace(d *Dense) {
	n := d.n
	data := d.data

	var (
		k, i, j      int
		baseK, baseI int
		ik, kj, cand int
	)
	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			ik = data[i*n+k]
			if ik >= Unreachable {
				continue
			}
			baseI = i * n
			for j = 0; j < n; j++ {
				kj = data[baseK+j]
				if kj >= Unreachable {
					continue
				}
				cand = ik + kj
				if cand < data[baseI+j] {
					data[baseI+j] = cand
				}
			}
		}
	}
}

// FloydWarshall computes all-pairs shortest paths in place on d.
//
// Contract:
//   - d must be non-nil; Dense is square by construction.
//   - Unreachable denotes "no edge" off-diagonal; the diagonal must be 0.
//
// Complexity: Time O(n³), extra space O(1).
func FloydWarshall(d *Dense) error {
	if d == nil {
		return matrixErrorf(opFloydWarshall, ErrNilMatrix)
	}
	floydWarshallInPlace(d)

	return nil
}

// NewDistances converts adjacency lists into a hop-count matrix.
// adj[i] lists the vertices directly reachable from i in one hop.
//
// Errors:
//   - ErrBadShape: len(adj) == 0.
//   - ErrUnknownVertex: a neighbor index outside [0, len(adj)).
//
// The result is a pure function of adj: identical input yields an
// identical matrix.
func NewDistances(adj [][]int) (*Dense, error) {
	d, err := NewDense(len(adj))
	if err != nil {
		return nil, matrixErrorf(opNewDistances, err)
	}
	if err = initDistances(d, adj); err != nil {
		return nil, matrixErrorf(opNewDistances, err)
	}
	floydWarshallInPlace(d)

	return d, nil
}

// FromGraph snapshots g and builds its hop-count matrix. Row/column i
// corresponds to the vertex with core index i.
func FromGraph(g *core.Graph) (*Dense, error) {
	if g == nil {
		return nil, matrixErrorf(opFromGraph, ErrGraphNil)
	}
	d, err := NewDistances(g.Snapshot().Adjacency)
	if err != nil {
		return nil, matrixErrorf(opFromGraph, err)
	}

	return d, nil
}
