// Package core defines the valve network: named vertices carrying a scalar
// reward ("flow rate") joined by undirected, unweighted tunnels.
//
// What
//
//   - Vertex: stable integer index, string ID, non-negative Reward.
//   - Graph: thread-safe catalog of vertices and tunnels.
//   - Snapshot: a dense, read-only view (names, rewards, adjacency lists by
//     index) that downstream packages consume without touching locks.
//
// Determinism
//
//	Vertex indices follow insertion order: the first vertex added (either
//	explicitly or as a tunnel endpoint) gets index 0. Vertices() and
//	Neighbors() enumerate in that order, so matrices and search results are
//	reproducible for identical input.
//
// Concurrency
//
//	A single sync.RWMutex guards the catalog. Mutators take the write lock,
//	queries the read lock. Snapshot copies everything under one read lock.
//
// Errors
//
//   - ErrEmptyVertexID   if an ID is "".
//   - ErrVertexNotFound  if a query references an unknown vertex.
//   - ErrLoopNotAllowed  if a tunnel joins a vertex to itself.
//   - ErrNegativeReward  if a reward is below zero.
//
// Usage
//
//	g := core.NewGraph()
//	_ = g.AddVertex("AA", 0)
//	_ = g.AddVertex("BB", 13)
//	_ = g.AddTunnel("AA", "BB")
//	snap := g.Snapshot()
package core
