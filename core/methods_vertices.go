// SPDX-License-Identifier: MIT
// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns vertices in insertion (index) order.

package core

// AddVertex inserts a vertex with the given reward, or updates the reward of
// an existing one. Updating keeps the existing index.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrNegativeReward: if reward < 0.
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string, reward int) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	if reward < 0 {
		return ErrNegativeReward
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	v := g.ensureVertexLocked(id)
	v.Reward = reward

	return nil
}

// ensureVertexLocked returns the vertex for id, registering it with reward 0
// when missing. Caller must hold the write lock.
func (g *Graph) ensureVertexLocked(id string) *Vertex {
	if v, ok := g.byID[id]; ok {
		return v
	}
	v := &Vertex{Index: len(g.order), ID: id}
	g.order = append(g.order, v)
	g.byID[id] = v
	g.adjacency = append(g.adjacency, make(map[int]struct{}))

	return v
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.byID[id]

	return ok
}

// Vertex returns a copy of the vertex record for id.
func (g *Graph) Vertex(id string) (Vertex, error) {
	if id == "" {
		return Vertex{}, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	v, ok := g.byID[id]
	if !ok {
		return Vertex{}, ErrVertexNotFound
	}

	return *v, nil
}

// Index resolves a vertex ID to its stable integer index.
func (g *Graph) Index(id string) (int, error) {
	v, err := g.Vertex(id)
	if err != nil {
		return -1, err
	}

	return v.Index, nil
}

// Vertices returns copies of all vertices in index order.
// Complexity: O(V).
func (g *Graph) Vertices() []Vertex {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Vertex, len(g.order))
	for i, v := range g.order {
		out[i] = *v
	}

	return out
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}
