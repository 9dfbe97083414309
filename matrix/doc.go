// Package matrix builds the all-pairs hop-count table the reward search
// reads from.
//
// The package provides:
//
//   - Dense: a square, row-major matrix of int with bounds-checked At/Set.
//   - NewDistances: adjacency lists → hop-count matrix via FloydWarshall.
//   - FromGraph: the same, straight from a *core.Graph.
//   - ValidateOrder / ValidateDistances: structural checks shared with search.
//
// Unreachable pairs hold the finite sentinel Unreachable instead of an
// infinity so callers can add and subtract distances without overflow.
// FloydWarshall never relaxes through an Unreachable leg, so the sentinel
// is never exceeded.
//
// Complexity: O(n³) time and O(n²) memory; intended for networks of tens
// of vertices.
package matrix
