// Package search_test holds helpers shared across *_test.go files: graph
// fixtures, a brute-force oracle and a plan replayer.
package search_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/valveflow/core"
	"github.com/katalvlaran/valveflow/matrix"
	"github.com/katalvlaran/valveflow/search"
	"github.com/stretchr/testify/require"
)

const (
	// soloBudget and pairBudget are the budgets of the sample puzzle.
	soloBudget = 30
	pairBudget = 26

	// sampleSolo and samplePair are the known optima of the sample network.
	sampleSolo = 1651
	samplePair = 1707
)

// valve is one fixture row: name, reward, tunnels.
type valve struct {
	id      string
	reward  int
	tunnels []string
}

// sampleValves is the ten-valve sample network.
var sampleValves = []valve{
	{"AA", 0, []string{"DD", "II", "BB"}},
	{"BB", 13, []string{"CC", "AA"}},
	{"CC", 2, []string{"DD", "BB"}},
	{"DD", 20, []string{"CC", "AA", "EE"}},
	{"EE", 3, []string{"FF", "DD"}},
	{"FF", 0, []string{"EE", "GG"}},
	{"GG", 0, []string{"FF", "HH"}},
	{"HH", 22, []string{"GG"}},
	{"II", 0, []string{"AA", "JJ"}},
	{"JJ", 21, []string{"II"}},
}

// buildGraph registers every valve first so indices follow row order.
func buildGraph(t testing.TB, rows []valve) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, v := range rows {
		require.NoError(t, g.AddVertex(v.id, v.reward))
	}
	for _, v := range rows {
		for _, to := range v.tunnels {
			require.NoError(t, g.AddTunnel(v.id, to))
		}
	}

	return g
}

// sampleProblem returns the sample network starting at AA.
func sampleProblem(t testing.TB) search.Problem {
	t.Helper()
	p, err := search.NewProblem(buildGraph(t, sampleValves), "AA")
	require.NoError(t, err)

	return p
}

// adjProblem builds a Problem straight from adjacency lists.
func adjProblem(t testing.TB, adj [][]int, rewards []int, start int) search.Problem {
	t.Helper()
	d, err := matrix.NewDistances(adj)
	require.NoError(t, err)

	return search.Problem{Dist: d, Rewards: rewards, Start: start}
}

// randomProblem builds a connected random network: a spanning path plus
// extra chords, with about half of the vertices carrying a reward.
func randomProblem(t testing.TB, n int, seed int64) search.Problem {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	adj := make([][]int, n)
	link := func(a, b int) {
		adj[a] = append(adj[a], b)
		adj[b] = append(adj[b], a)
	}
	perm := rng.Perm(n)
	for i := 1; i < n; i++ {
		link(perm[i-1], perm[i])
	}
	for i := 0; i < n/2; i++ {
		a, b := rng.Intn(n), rng.Intn(n)
		if a != b {
			link(a, b)
		}
	}
	rewards := make([]int, n)
	for i := 1; i < n; i++ {
		if rng.Intn(2) == 0 {
			rewards[i] = 1 + rng.Intn(25)
		}
	}

	return adjProblem(t, adj, rewards, 0)
}

// oracle is a direct permutation search over the candidate list cands.
func oracle(p search.Problem, cur int, cands []int, time int) int {
	best := 0
	for i, c := range cands {
		cost := p.Dist.Get(cur, c) + 1
		if !p.Dist.Reachable(cur, c) || cost >= time {
			continue
		}
		rest := make([]int, 0, len(cands)-1)
		rest = append(rest, cands[:i]...)
		rest = append(rest, cands[i+1:]...)
		left := time - cost
		if v := p.Rewards[c]*left + oracle(p, c, rest, left); v > best {
			best = v
		}
	}

	return best
}

// positive lists the vertices with a positive reward.
func positive(p search.Problem) []int {
	var out []int
	for i, r := range p.Rewards {
		if r > 0 {
			out = append(out, i)
		}
	}

	return out
}

// pairOracle enumerates every split of the candidates into two halves.
func pairOracle(p search.Problem, b1, b2 int) int {
	cands := positive(p)
	best := 0
	for split := 0; split < 1<<len(cands); split++ {
		var left, right []int
		for i, c := range cands {
			if split&(1<<i) != 0 {
				left = append(left, c)
			} else {
				right = append(right, c)
			}
		}
		if v := oracle(p, p.Start, left, b1) + oracle(p, p.Start, right, b2); v > best {
			best = v
		}
	}

	return best
}

// replay walks path from p.Start under budget and checks every step: the
// move is admissible, the yield is right and no vertex repeats. It returns
// the set of activated vertices.
func replay(t *testing.T, p search.Problem, budget int, path []search.Activation) map[int]bool {
	t.Helper()
	seen := make(map[int]bool, len(path))
	cur, time := p.Start, budget
	for _, a := range path {
		require.False(t, seen[a.Node], "vertex %d activated twice", a.Node)
		seen[a.Node] = true
		require.True(t, p.Dist.Reachable(cur, a.Node))
		cost := p.Dist.Get(cur, a.Node) + 1
		require.Less(t, cost, time, "move %d→%d not admissible", cur, a.Node)
		time -= cost
		require.Equal(t, time, a.Remaining)
		require.Equal(t, p.Rewards[a.Node]*time, a.Gained)
		require.Positive(t, p.Rewards[a.Node])
		cur = a.Node
	}

	return seen
}
