// SPDX-License-Identifier: MIT
// File: methods_edges.go
// Role: Tunnel insertion & adjacency queries.
//
// Policy:
//   - Tunnels are undirected and unweighted (one hop each).
//   - Parallel tunnels collapse into one; self-loops are rejected.

package core

import "sort"

// AddTunnel joins a and b with an undirected tunnel. Missing endpoints are
// created with reward 0 so adjacency can be declared before flow rates are
// known. Adding an existing tunnel is a no-op.
//
// Errors:
//   - ErrEmptyVertexID: if either endpoint is "".
//   - ErrLoopNotAllowed: if a == b.
//
// Complexity: O(1) amortized.
func (g *Graph) AddTunnel(a, b string) error {
	if a == "" || b == "" {
		return ErrEmptyVertexID
	}
	if a == b {
		return ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	va := g.ensureVertexLocked(a)
	vb := g.ensureVertexLocked(b)
	if _, dup := g.adjacency[va.Index][vb.Index]; dup {
		return nil
	}
	g.adjacency[va.Index][vb.Index] = struct{}{}
	g.adjacency[vb.Index][va.Index] = struct{}{}
	g.tunnels++

	return nil
}

// HasTunnel reports whether a and b are directly connected.
func (g *Graph) HasTunnel(a, b string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	va, okA := g.byID[a]
	vb, okB := g.byID[b]
	if !okA || !okB {
		return false
	}
	_, ok := g.adjacency[va.Index][vb.Index]

	return ok
}

// Neighbors returns the IDs adjacent to id, ordered by vertex index.
//
// Errors:
//   - ErrVertexNotFound: if id is unknown.
func (g *Graph) Neighbors(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	v, ok := g.byID[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	idx := sortedKeys(g.adjacency[v.Index])
	out := make([]string, len(idx))
	for i, j := range idx {
		out[i] = g.order[j].ID
	}

	return out, nil
}

// TunnelCount returns the number of distinct tunnels.
func (g *Graph) TunnelCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.tunnels
}

// Snapshot copies the graph into a dense index-addressed view.
// Complexity: O(V + E log E).
func (g *Graph) Snapshot() Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := len(g.order)
	s := Snapshot{
		Names:     make([]string, n),
		Rewards:   make([]int, n),
		Adjacency: make([][]int, n),
	}
	for i, v := range g.order {
		s.Names[i] = v.ID
		s.Rewards[i] = v.Reward
		s.Adjacency[i] = sortedKeys(g.adjacency[i])
	}

	return s
}

// sortedKeys returns the keys of set in ascending order.
func sortedKeys(set map[int]struct{}) []int {
	out := make([]int, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Ints(out)

	return out
}
