// Package parse reads valve network descriptions into a *core.Graph.
//
// Each non-blank line declares one valve:
//
//	Valve AA has flow rate=0; tunnels lead to valves DD, II, BB
//	Valve HH has flow rate=22; tunnel leads to valve GG
//
// Valves are registered in line order, so the first line gets core index 0.
// Every tunnel must name a declared valve and no valve may be declared
// twice; violations are rejected here so the search never sees malformed
// input.
package parse
