// SPDX-License-Identifier: MIT
// Package search - problem definition, candidate sets and validation.
//
// Validation is deterministic and side-effect free; it returns sentinels
// from types.go and never panics on user input.

package search

import (
	"fmt"

	"github.com/katalvlaran/valveflow/core"
	"github.com/katalvlaran/valveflow/matrix"
	"github.com/yourbasic/bit"
)

// Problem is the read-only input shared by every search call.
type Problem struct {
	// Dist is the all-pairs hop-count matrix (see matrix.NewDistances).
	Dist *matrix.Dense

	// Rewards[i] is the reward rate of vertex i.
	Rewards []int

	// Start is the vertex index both agents depart from.
	Start int
}

// NewProblem builds a Problem from g, resolving start by ID.
//
// Errors:
//   - ErrStartNotFound: start is not a vertex of g.
//   - matrix errors from FromGraph.
//
// Complexity: O(V³) for the distance matrix.
func NewProblem(g *core.Graph, start string) (Problem, error) {
	if g == nil {
		return Problem{}, matrix.ErrGraphNil
	}
	idx, err := g.Index(start)
	if err != nil {
		return Problem{}, fmt.Errorf("%w: %q", ErrStartNotFound, start)
	}
	snap := g.Snapshot()
	dist, err := matrix.NewDistances(snap.Adjacency)
	if err != nil {
		return Problem{}, err
	}

	return Problem{Dist: dist, Rewards: snap.Rewards, Start: idx}, nil
}

// Candidates returns the indices with strictly positive reward.
// Complexity: O(n).
func Candidates(rewards []int) *bit.Set {
	s := bit.New()
	for i, r := range rewards {
		if r > 0 {
			s.Add(i)
		}
	}

	return s
}

// validateProblem checks shape, start and rewards.
// Complexity: O(n).
func validateProblem(p Problem) error {
	if p.Dist == nil {
		return ErrNilMatrix
	}
	if err := matrix.ValidateOrder(p.Dist, len(p.Rewards)); err != nil {
		return fmt.Errorf("%w: %v", ErrDimensionMismatch, err)
	}
	if p.Start < 0 || p.Start >= len(p.Rewards) {
		return ErrStartOutOfRange
	}
	for i, r := range p.Rewards {
		if r < 0 {
			return fmt.Errorf("%w: vertex %d has %d", ErrNegativeReward, i, r)
		}
	}

	return nil
}

// candidateNodes resolves the candidate universe into an ascending slice of
// vertex indices. Zero-reward vertices are dropped.
//
// Errors:
//   - ErrCandidateOutOfRange: override names an index ≥ n.
//   - ErrTooManyCandidates: more than MaxCandidates remain.
func candidateNodes(p Problem, override *bit.Set) ([]int, error) {
	src := override
	if src == nil {
		src = Candidates(p.Rewards)
	}

	var (
		n     = len(p.Rewards)
		nodes = make([]int, 0, src.Size())
		bad   = -1
	)
	src.Visit(func(i int) (skip bool) {
		if i >= n {
			bad = i
			return true
		}
		if p.Rewards[i] > 0 {
			nodes = append(nodes, i)
		}
		return false
	})
	if bad >= 0 {
		return nil, fmt.Errorf("%w: %d (n=%d)", ErrCandidateOutOfRange, bad, n)
	}
	if len(nodes) > MaxCandidates {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyCandidates, len(nodes), MaxCandidates)
	}

	return nodes, nil
}

// buildOptions applies opts over DefaultOptions.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

// prepare runs the shared validation pipeline and returns a ready engine.
func prepare(p Problem, opts []Option) (*engine, Options, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, o, err
	}
	if err = validateProblem(p); err != nil {
		return nil, o, err
	}
	nodes, err := candidateNodes(p, o.Candidates)
	if err != nil {
		return nil, o, err
	}

	return newEngine(p, nodes, o), o, nil
}
