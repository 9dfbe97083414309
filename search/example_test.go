package search_test

import (
	"fmt"

	"github.com/katalvlaran/valveflow/core"
	"github.com/katalvlaran/valveflow/search"
)

// sampleGraph builds the ten-valve sample network.
func sampleGraph() *core.Graph {
	g := core.NewGraph()
	for _, v := range sampleValves {
		_ = g.AddVertex(v.id, v.reward)
	}
	for _, v := range sampleValves {
		for _, to := range v.tunnels {
			_ = g.AddTunnel(v.id, to)
		}
	}

	return g
}

// ExampleMaxReward releases as much pressure as possible in 30 minutes.
func ExampleMaxReward() {
	g := sampleGraph()
	p, err := search.NewProblem(g, "AA")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := search.MaxReward(p, 30)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("reward:", res.Reward)

	// Output:
	// reward: 1651
}

// ExampleMaxRewardPair shares the work between two agents with 26 minutes
// each; no valve is opened twice.
func ExampleMaxRewardPair() {
	g := sampleGraph()
	p, _ := search.NewProblem(g, "AA")

	res, err := search.MaxRewardPair(p, 26, 26)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("reward:", res.Reward)
	fmt.Println("primary + secondary:", res.Primary.Reward+res.Secondary.Reward)

	// Output:
	// reward: 1707
	// primary + secondary: 1707
}
