// SPDX-License-Identifier: MIT

package search

// MaxReward returns the best total reward a single agent can release from
// p.Start within budget time units, together with one optimal order.
//
// A budget of 0 or less, or a budget too small to reach and activate any
// candidate, yields a zero Result without error.
//
// Errors: see the package documentation.
func MaxReward(p Problem, budget int, opts ...Option) (Result, error) {
	e, o, err := prepare(p, opts)
	if err != nil {
		return Result{}, err
	}
	res, err := e.solveSingle(0, e.start, e.full(), budget)
	if err != nil {
		return Result{}, err
	}
	emit(o, res.Path)

	return res, nil
}

// solveSingle runs best/trace from (cur, mask, budget), fanning out the
// root moves when more than one worker is configured.
func (e *engine) solveSingle(agent, cur int, mask uint64, budget int) (Result, error) {
	if err := e.ctx.Err(); err != nil {
		return Result{}, err
	}

	if e.workers <= 1 {
		reward := e.best(cur, mask, budget)
		path := e.trace(agent, cur, mask, budget)
		if e.err != nil {
			return Result{}, e.err
		}

		return Result{Reward: reward, Path: path, Evaluated: e.steps}, nil
	}

	branches, err := e.fanOut(cur, mask, budget, (*engine).best)
	if err != nil {
		return Result{}, err
	}
	i := pickBranch(branches, 0)
	if i < 0 {
		return Result{Evaluated: evaluated(e, branches)}, nil
	}

	b := branches[i]
	node := e.nodes[b.slot]
	path := append([]Activation{{Agent: agent, Node: node, Remaining: b.left, Gained: b.gain}},
		b.kid.trace(agent, node, mask&^(uint64(1)<<uint(b.slot)), b.left)...)
	if b.kid.err != nil {
		return Result{}, b.kid.err
	}

	return Result{Reward: b.value, Path: path, Evaluated: evaluated(e, branches)}, nil
}
