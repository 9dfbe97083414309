// SPDX-License-Identifier: MIT
// Package search: options, results and sentinel errors.

package search

import (
	"context"
	"errors"
	"fmt"

	"github.com/yourbasic/bit"
)

// Sentinel errors for search execution.
var (
	// ErrNilMatrix is returned when Problem.Dist is nil.
	ErrNilMatrix = errors.New("search: distance matrix is nil")

	// ErrDimensionMismatch is returned when the reward vector and matrix disagree.
	ErrDimensionMismatch = errors.New("search: reward vector does not match matrix order")

	// ErrStartOutOfRange is returned when Problem.Start is not a vertex index.
	ErrStartOutOfRange = errors.New("search: start vertex out of range")

	// ErrStartNotFound is returned by NewProblem for an unknown start ID.
	ErrStartNotFound = errors.New("search: start vertex not found")

	// ErrNegativeReward is returned when a reward is below zero.
	ErrNegativeReward = errors.New("search: negative reward")

	// ErrCandidateOutOfRange is returned when a candidate index is not a vertex.
	ErrCandidateOutOfRange = errors.New("search: candidate out of range")

	// ErrTooManyCandidates is returned when more than MaxCandidates are eligible.
	ErrTooManyCandidates = errors.New("search: too many candidates")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// MaxCandidates is the largest candidate set the mask representation holds.
const MaxCandidates = 64

// PairMode selects the two-agent algorithm.
type PairMode int

const (
	// PairPartition combines per-set optima of both agents over disjoint sets.
	PairPartition PairMode = iota

	// PairRelay lets the primary agent hand the untouched candidates to the
	// secondary agent at any point of its walk.
	PairRelay
)

// String implements fmt.Stringer.
func (m PairMode) String() string {
	switch m {
	case PairPartition:
		return "partition"
	case PairRelay:
		return "relay"
	default:
		return fmt.Sprintf("PairMode(%d)", int(m))
	}
}

// ParsePairMode maps "partition" / "relay" to a PairMode.
func ParsePairMode(s string) (PairMode, error) {
	switch s {
	case "partition", "":
		return PairPartition, nil
	case "relay":
		return PairRelay, nil
	default:
		return 0, fmt.Errorf("%w: unknown pair mode %q", ErrOptionViolation, s)
	}
}

// Option configures search behavior via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds parameters and callbacks for a search run.
type Options struct {
	// Ctx allows cancellation and deadlines; checked every few thousand states.
	Ctx context.Context

	// Candidates overrides the candidate universe. nil means "every vertex
	// with positive reward". Zero-reward entries are ignored.
	Candidates *bit.Set

	// Memo enables memoization on (vertex, remaining set, time). In
	// PairPartition it prunes walks reaching a known state with no better
	// yield.
	Memo bool

	// PairMode selects the two-agent algorithm for MaxRewardPair.
	PairMode PairMode

	// Workers bounds the goroutines evaluating independent root branches.
	// 0 or 1 runs sequentially.
	Workers int

	// OnActivate is called for every activation of the reported optimal
	// plan, in order (primary agent first).
	OnActivate func(a Activation)

	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - positive-reward candidates
//   - memoization on
//   - PairPartition
//   - sequential execution
//   - no-op OnActivate.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		Memo:       true,
		PairMode:   PairPartition,
		Workers:    1,
		OnActivate: func(Activation) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithCandidates restricts the search to the given vertex indices.
func WithCandidates(s *bit.Set) Option {
	return func(o *Options) { o.Candidates = s }
}

// WithMemo toggles memoization. Results are the same either way.
func WithMemo(on bool) Option {
	return func(o *Options) { o.Memo = on }
}

// WithPairMode selects the two-agent algorithm.
func WithPairMode(m PairMode) Option {
	return func(o *Options) {
		switch m {
		case PairPartition, PairRelay:
			o.PairMode = m
		default:
			o.err = fmt.Errorf("%w: unknown pair mode %d", ErrOptionViolation, int(m))
		}
	}
}

// WithWorkers bounds root-level parallelism.
//
//	n > 1: up to n goroutines
//	n == 0 or 1: sequential
//	n < 0: invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithOnActivate registers a callback for each activation of the result.
func WithOnActivate(fn func(a Activation)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnActivate = fn
		}
	}
}

// Activation is one step of a plan.
type Activation struct {
	// Agent is 0 for the primary (or only) agent and 1 for the secondary.
	Agent int

	// Node is the activated vertex index.
	Node int

	// Remaining is the time left right after activation.
	Remaining int

	// Gained is Reward[Node] × Remaining.
	Gained int
}

// Result is the outcome of a single-agent search.
type Result struct {
	// Reward is the maximum total reward.
	Reward int

	// Path is one optimal activation order.
	Path []Activation

	// Evaluated counts search states visited (memo hits included).
	Evaluated int
}

// Nodes returns the vertex indices of Path in order.
func (r Result) Nodes() []int {
	out := make([]int, len(r.Path))
	for i, a := range r.Path {
		out[i] = a.Node
	}

	return out
}

// PairResult is the outcome of a two-agent search.
type PairResult struct {
	// Reward is Primary.Reward + Secondary.Reward.
	Reward int

	// Primary and Secondary hold each agent's share of the plan.
	Primary   Result
	Secondary Result

	// Evaluated counts search states visited across both agents.
	Evaluated int
}
