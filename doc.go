// Package valveflow finds how much pressure can be released from a network
// of valves and tunnels within a fixed time budget, by one agent or by two
// agents working in parallel.
//
// Every tunnel takes one time unit to traverse and opening a valve takes one
// more. An opened valve releases its flow rate once per remaining time unit,
// so a valve opened with r units left is worth rate × r.
//
// Under the hood the work is split into subpackages:
//
//	core/    - valve network graph: named vertices with rewards, undirected tunnels
//	matrix/  - integer distance matrix and the Floyd–Warshall builder
//	search/  - single-agent and two-agent reward search (options, hooks, results)
//	parse/   - scanner for "Valve AA has flow rate=0; tunnels lead to valves DD, II" lines
//	config/  - YAML run configuration with validation
//
// The valveflow command (cmd/valveflow) wires them together:
//
//	valveflow -log-level debug input.txt
//	solo: 1651
//	pair: 1707
//
// Quick start:
//
//	g, _ := parse.Parse(r)
//	p, _ := search.NewProblem(g, "AA")
//	solo, _ := search.MaxReward(p, 30)
//	pair, _ := search.MaxRewardPair(p, 26, 26)
package valveflow
