// SPDX-License-Identifier: MIT
// Package search - two-agent dispatcher and the relay algorithm.
//
// Relay: the primary agent walks from the origin. At every state it may
// stop and hand the untouched candidates to the secondary agent, who starts
// over from the origin with its own budget. Because the secondary agent only
// sees what the primary left behind, the two activation sets are disjoint
// and their yields add up.

package search

import "math/bits"

// MaxRewardPair returns the best combined reward of two agents leaving
// p.Start together with budgets primary and secondary, activating disjoint
// candidate sets. The algorithm is chosen by WithPairMode; both modes return
// the same total.
//
// The result is never below MaxReward(p, primary) or MaxReward(p, secondary):
// either agent may simply stay idle.
func MaxRewardPair(p Problem, primary, secondary int, opts ...Option) (PairResult, error) {
	e, o, err := prepare(p, opts)
	if err != nil {
		return PairResult{}, err
	}
	if err = e.ctx.Err(); err != nil {
		return PairResult{}, err
	}

	var res PairResult
	switch o.PairMode {
	case PairRelay:
		res, err = e.solveRelay(primary, secondary)
	default:
		res, err = e.solvePartition(primary, secondary)
	}
	if err != nil {
		return PairResult{}, err
	}
	emit(o, res.Primary.Path)
	emit(o, res.Secondary.Path)

	return res, nil
}

// newPairResult assembles a PairResult from both agents' paths.
func newPairResult(primary, secondary []Activation, evaluated int) PairResult {
	p := Result{Reward: sumGained(primary), Path: primary}
	s := Result{Reward: sumGained(secondary), Path: secondary}

	return PairResult{
		Reward:    p.Reward + s.Reward,
		Primary:   p,
		Secondary: s,
		Evaluated: evaluated,
	}
}

// handoff is the secondary agent's best over mask from the origin.
func (e *engine) handoff(mask uint64) int {
	if e.secondMemo != nil {
		if v, ok := e.secondMemo[mask]; ok {
			return v
		}
	}
	v := e.best(e.start, mask, e.secondBudget)
	if e.secondMemo != nil && e.err == nil {
		e.secondMemo[mask] = v
	}

	return v
}

// relay returns the best combined reward when the primary agent stands at
// cur with time left and mask untouched.
func (e *engine) relay(cur int, mask uint64, time int) int {
	if e.tick() {
		return 0
	}
	var key stateKey
	if e.relayMemo != nil {
		key = stateKey{cur: cur, mask: mask, time: time}
		if v, ok := e.relayMemo[key]; ok {
			return v
		}
	}

	top := e.handoff(mask)
	var (
		slot, gain, left, v int
		ok                  bool
	)
	for rest := mask; time > 0 && rest != 0; rest &= rest - 1 {
		slot = bits.TrailingZeros64(rest)
		if gain, left, ok = e.step(cur, slot, time); !ok {
			continue
		}
		v = gain + e.relay(e.nodes[slot], mask&^(uint64(1)<<uint(slot)), left)
		if v > top {
			top = v
		}
	}

	if e.relayMemo != nil && e.err == nil {
		e.relayMemo[key] = top
	}

	return top
}

// traceRelay replays relay and splits the plan between both agents.
// A handoff is preferred over a primary move of equal value.
func (e *engine) traceRelay(cur int, mask uint64, time int) (primary, secondary []Activation) {
	for {
		target := e.relay(cur, mask, time)
		if e.err != nil {
			return primary, nil
		}
		if e.handoff(mask) == target {
			return primary, e.trace(1, e.start, mask, e.secondBudget)
		}
		moved := false
		for rest := mask; rest != 0; rest &= rest - 1 {
			slot := bits.TrailingZeros64(rest)
			gain, left, ok := e.step(cur, slot, time)
			if !ok {
				continue
			}
			node, next := e.nodes[slot], mask&^(uint64(1)<<uint(slot))
			if gain+e.relay(node, next, left) == target {
				primary = append(primary, Activation{Agent: 0, Node: node, Remaining: left, Gained: gain})
				cur, mask, time = node, next, left
				moved = true
				break
			}
		}
		if !moved {
			return primary, nil
		}
	}
}

// solveRelay runs the relay algorithm from the origin.
func (e *engine) solveRelay(primary, secondary int) (PairResult, error) {
	e.secondBudget = secondary
	full := e.full()

	if e.workers <= 1 {
		e.relay(e.start, full, primary)
		p, s := e.traceRelay(e.start, full, primary)
		if e.err != nil {
			return PairResult{}, e.err
		}

		return newPairResult(p, s, e.steps), nil
	}

	// Handing everything over at the origin is the floor every root move
	// has to beat.
	floor := e.handoff(full)
	if e.err != nil {
		return PairResult{}, e.err
	}
	branches, err := e.fanOut(e.start, full, primary, (*engine).relay)
	if err != nil {
		return PairResult{}, err
	}
	i := pickBranch(branches, floor)
	if i < 0 {
		s := e.trace(1, e.start, full, secondary)
		if e.err != nil {
			return PairResult{}, e.err
		}

		return newPairResult(nil, s, evaluated(e, branches)), nil
	}

	b := branches[i]
	node := e.nodes[b.slot]
	p, s := b.kid.traceRelay(node, full&^(uint64(1)<<uint(b.slot)), b.left)
	if b.kid.err != nil {
		return PairResult{}, b.kid.err
	}
	p = append([]Activation{{Agent: 0, Node: node, Remaining: b.left, Gained: b.gain}}, p...)

	return newPairResult(p, s, evaluated(e, branches)), nil
}
