// SPDX-License-Identifier: MIT
// Package core: vertex, graph and sentinel error declarations.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a tunnel from a vertex to itself.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrNegativeReward indicates a reward below zero.
	ErrNegativeReward = errors.New("core: reward must be non-negative")
)

// Vertex is a valve in the network.
type Vertex struct {
	// Index is the stable position assigned at insertion time.
	Index int

	// ID is the unique name of this vertex (e.g. "AA").
	ID string

	// Reward is the per-time-unit yield once the vertex is activated.
	Reward int
}

// Graph is an undirected, unweighted network of valves.
//
// order holds vertices by index; byID maps names to the same records.
// adjacency[i] is the set of neighbor indices of vertex i.
type Graph struct {
	mu sync.RWMutex

	order     []*Vertex
	byID      map[string]*Vertex
	adjacency []map[int]struct{}
	tunnels   int
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		byID: make(map[string]*Vertex),
	}
}

// Snapshot is a dense, immutable copy of a Graph indexed by vertex position.
//
//	Names[i]     - vertex ID at index i
//	Rewards[i]   - reward of vertex i
//	Adjacency[i] - neighbor indices of vertex i, ascending
type Snapshot struct {
	Names     []string
	Rewards   []int
	Adjacency [][]int
}

// Index returns the position of name in the snapshot, or -1.
func (s Snapshot) Index(name string) int {
	for i, n := range s.Names {
		if n == name {
			return i
		}
	}

	return -1
}
