// SPDX-License-Identifier: MIT
// Package search - recursive reward search engine.
//
// The engine holds everything a search needs as explicit fields rather than
// closures, so forks for parallel branches are plain struct copies with
// fresh mutable state.
//
// Candidate sets are uint64 masks over "slots": slot s stands for vertex
// nodes[s]. Masks double as memo keys and as subset-table keys.
//
// Cancellation: the context is polled every 4096 states; once it fires the
// engine records the error and every recursive call unwinds with 0.

package search

import (
	"context"
	"math/bits"

	"github.com/katalvlaran/valveflow/matrix"
	"golang.org/x/sync/errgroup"
)

// ctxCheckMask sets the context polling period (power of two minus one).
const ctxCheckMask = 4095

// stateKey identifies a search state: current vertex, remaining slots and
// remaining time fully determine the best continuation.
type stateKey struct {
	cur  int
	mask uint64
	time int
}

// engine holds the read-only problem data and per-run mutable state.
type engine struct {
	// Problem data (shared read-only across forks)
	dist    *matrix.Dense
	rewards []int
	nodes   []int // slot → vertex index, ascending
	start   int

	// Policy
	useMemo bool
	workers int
	ctx     context.Context

	// Two-agent relay: budget the secondary agent restarts with.
	secondBudget int

	// Memo tables (nil when memoization is off)
	memo       map[stateKey]int
	relayMemo  map[stateKey]int
	secondMemo map[uint64]int

	// Accounting / cancellation
	steps int
	err   error
}

// newEngine wires a validated problem into a fresh engine.
func newEngine(p Problem, nodes []int, o Options) *engine {
	e := &engine{
		dist:    p.Dist,
		rewards: p.Rewards,
		nodes:   nodes,
		start:   p.Start,
		useMemo: o.Memo,
		workers: o.Workers,
		ctx:     o.Ctx,
	}
	e.reset()

	return e
}

// reset drops memo tables and accounting.
func (e *engine) reset() {
	e.steps, e.err = 0, nil
	e.memo, e.relayMemo, e.secondMemo = nil, nil, nil
	if e.useMemo {
		e.memo = make(map[stateKey]int)
		e.relayMemo = make(map[stateKey]int)
		e.secondMemo = make(map[uint64]int)
	}
}

// fork returns a copy sharing the problem data with its own memo and counters.
func (e *engine) fork(ctx context.Context) *engine {
	c := *e
	c.ctx = ctx
	c.reset()

	return &c
}

// full is the mask with every candidate slot set.
func (e *engine) full() uint64 {
	k := len(e.nodes)
	if k >= MaxCandidates {
		return ^uint64(0)
	}

	return uint64(1)<<uint(k) - 1
}

// tick counts a state and polls the context sparsely.
// It reports true when the search must unwind.
func (e *engine) tick() bool {
	if e.err != nil {
		return true
	}
	e.steps++
	if e.steps&ctxCheckMask == 0 {
		if err := e.ctx.Err(); err != nil {
			e.err = err
			return true
		}
	}

	return false
}

// step evaluates moving from cur to the vertex in slot with time remaining.
// The move is admitted only if travel + activation is strictly below time;
// unreachable vertices are never admitted.
func (e *engine) step(cur, slot, time int) (gain, left int, ok bool) {
	node := e.nodes[slot]
	d := e.dist.Get(cur, node)
	if d >= matrix.Unreachable {
		return 0, 0, false
	}
	cost := d + 1
	if cost >= time {
		return 0, 0, false
	}
	left = time - cost

	return e.rewards[node] * left, left, true
}

// best returns the maximum reward reachable from cur with the slots in mask
// still available and time units left. Visiting nothing yields 0.
func (e *engine) best(cur int, mask uint64, time int) int {
	if time <= 0 || mask == 0 || e.tick() {
		return 0
	}
	var key stateKey
	if e.memo != nil {
		key = stateKey{cur: cur, mask: mask, time: time}
		if v, ok := e.memo[key]; ok {
			return v
		}
	}

	var (
		top, slot, gain, left, v int
		ok                       bool
		bit                      uint64
	)
	for rest := mask; rest != 0; rest &= rest - 1 {
		slot = bits.TrailingZeros64(rest)
		if gain, left, ok = e.step(cur, slot, time); !ok {
			continue
		}
		bit = uint64(1) << uint(slot)
		v = gain + e.best(e.nodes[slot], mask&^bit, left)
		if v > top {
			top = v
		}
	}

	if e.memo != nil && e.err == nil {
		e.memo[key] = top
	}

	return top
}

// trace replays best from (cur, mask, time) and returns one optimal order:
// at every level the lowest slot whose value matches the optimum is taken.
func (e *engine) trace(agent, cur int, mask uint64, time int) []Activation {
	var path []Activation
	for {
		target := e.best(cur, mask, time)
		if target == 0 || e.err != nil {
			return path
		}
		moved := false
		for rest := mask; rest != 0; rest &= rest - 1 {
			slot := bits.TrailingZeros64(rest)
			gain, left, ok := e.step(cur, slot, time)
			if !ok {
				continue
			}
			node, next := e.nodes[slot], mask&^(uint64(1)<<uint(slot))
			if gain+e.best(node, next, left) == target {
				path = append(path, Activation{Agent: agent, Node: node, Remaining: left, Gained: gain})
				cur, mask, time = node, next, left
				moved = true
				break
			}
		}
		if !moved {
			return path
		}
	}
}

// branch is one root move evaluated on its own forked engine.
type branch struct {
	slot  int
	gain  int
	left  int
	value int // gain + continuation
	kid   *engine
}

// continuation is the value function evaluated below a root move.
type continuation func(e *engine, cur int, mask uint64, time int) int

// fanOut evaluates every affordable root move in parallel (bounded by
// e.workers). Each branch owns its forked engine, so no state is shared.
func (e *engine) fanOut(cur int, mask uint64, time int, cont continuation) ([]branch, error) {
	var branches []branch
	for rest := mask; rest != 0; rest &= rest - 1 {
		slot := bits.TrailingZeros64(rest)
		if gain, left, ok := e.step(cur, slot, time); ok {
			branches = append(branches, branch{slot: slot, gain: gain, left: left})
		}
	}

	g, ctx := errgroup.WithContext(e.ctx)
	g.SetLimit(e.workers)
	for i := range branches {
		b := &branches[i]
		b.kid = e.fork(ctx)
		g.Go(func() error {
			v := cont(b.kid, e.nodes[b.slot], mask&^(uint64(1)<<uint(b.slot)), b.left)
			if b.kid.err != nil {
				return b.kid.err
			}
			b.value = b.gain + v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	// The group context is canceled once Wait returns; forks keep tracing
	// under the caller's context.
	for i := range branches {
		branches[i].kid.ctx = e.ctx
	}

	return branches, nil
}

// pickBranch returns the index of the best branch whose value exceeds floor,
// lowest slot first on ties, or -1.
func pickBranch(branches []branch, floor int) int {
	top, idx := floor, -1
	for i, b := range branches {
		if b.value > top {
			top, idx = b.value, i
		}
	}

	return idx
}

// evaluated sums the state counters of e and its branches.
func evaluated(e *engine, branches []branch) int {
	n := e.steps
	for _, b := range branches {
		if b.kid != nil {
			n += b.kid.steps
		}
	}

	return n
}

// sumGained adds up the yields of a path.
func sumGained(path []Activation) int {
	total := 0
	for _, a := range path {
		total += a.Gained
	}

	return total
}

// emit reports every activation of path to the OnActivate hook.
func emit(o Options, path []Activation) {
	for _, a := range path {
		o.OnActivate(a)
	}
}
