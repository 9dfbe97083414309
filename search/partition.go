// SPDX-License-Identifier: MIT
// Package search - disjoint-partition two-agent search.
//
// Each agent's walk is enumerated once, recording for every set of
// activated candidates the best yield and one order reaching it. The answer
// is the best sum over pairs of disjoint recorded sets:
//
//	max over S of primary[S] + within(secondary, U \ S)
//
// where within(t, X) is the best recorded yield of t over subsets of X.
// For k ≤ denseSubsetLimit candidates within is a dense superset closure
// (O(2^k · k)); above that the recorded sets are scanned pairwise, sorted
// by yield so the scan stops early.

package search

import (
	"math/bits"
	"sort"

	"golang.org/x/sync/errgroup"
)

// denseSubsetLimit caps the candidate count for the dense closure table.
var denseSubsetLimit = 20

// subsetBest is the best recorded walk over one exact set of candidates.
type subsetBest struct {
	reward int
	path   []Activation
}

// subsetTable maps an activated-set mask to its best walk.
type subsetTable map[uint64]subsetBest

// recorder enumerates every admissible walk of one agent.
type recorder struct {
	e     *engine
	table subsetTable
	path  []Activation

	// seen holds the best yield reaching (cur, visited, time); nil when
	// memoization is off. A state reached again with no better yield
	// cannot record anything new.
	seen map[stateKey]int
}

// walk visits every admissible continuation, recording visited sets.
func (r *recorder) walk(cur int, remaining, visited uint64, time, acc int) {
	if r.e.tick() {
		return
	}
	if r.seen != nil {
		key := stateKey{cur: cur, mask: visited, time: time}
		if prev, ok := r.seen[key]; ok && acc <= prev {
			return
		}
		r.seen[key] = acc
	}
	if prev, ok := r.table[visited]; !ok || acc > prev.reward {
		r.table[visited] = subsetBest{reward: acc, path: append([]Activation(nil), r.path...)}
	}

	for rest := remaining; rest != 0; rest &= rest - 1 {
		slot := bits.TrailingZeros64(rest)
		gain, left, ok := r.e.step(cur, slot, time)
		if !ok {
			continue
		}
		node, bit := r.e.nodes[slot], uint64(1)<<uint(slot)
		r.path = append(r.path, Activation{Node: node, Remaining: left, Gained: gain})
		r.walk(node, remaining&^bit, visited|bit, left, acc+gain)
		r.path = r.path[:len(r.path)-1]
	}
}

// record builds the subset table for one agent with the given budget.
func (e *engine) record(budget int) (subsetTable, error) {
	r := &recorder{e: e, table: make(subsetTable)}
	if e.useMemo {
		r.seen = make(map[stateKey]int)
	}
	r.walk(e.start, e.full(), 0, budget, 0)

	return r.table, e.err
}

// solvePartition computes both subset tables and combines them.
func (e *engine) solvePartition(primary, secondary int) (PairResult, error) {
	var (
		t1, t2 subsetTable
		err    error
		kids   []*engine
	)
	switch {
	case primary == secondary:
		if t1, err = e.record(primary); err != nil {
			return PairResult{}, err
		}
		t2 = t1
	case e.workers > 1:
		g, ctx := errgroup.WithContext(e.ctx)
		k1, k2 := e.fork(ctx), e.fork(ctx)
		kids = append(kids, k1, k2)
		g.Go(func() (gerr error) { t1, gerr = k1.record(primary); return gerr })
		g.Go(func() (gerr error) { t2, gerr = k2.record(secondary); return gerr })
		if err = g.Wait(); err != nil {
			return PairResult{}, err
		}
	default:
		if t1, err = e.record(primary); err != nil {
			return PairResult{}, err
		}
		if t2, err = e.record(secondary); err != nil {
			return PairResult{}, err
		}
	}

	var m1, m2 uint64
	if len(e.nodes) <= denseSubsetLimit {
		m1, m2 = combineDense(t1, t2, len(e.nodes))
	} else {
		m1, m2 = combineSparse(t1, t2)
	}

	steps := e.steps
	for _, k := range kids {
		steps += k.steps
	}

	return newPairResult(withAgent(t1[m1].path, 0), withAgent(t2[m2].path, 1), steps), nil
}

// sortedMasks returns the keys of t ascending.
func sortedMasks(t subsetTable) []uint64 {
	out := make([]uint64, 0, len(t))
	for m := range t {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// combineDense closes t2 over subsets in a 2^k table and pairs every set of
// t1 with the best of t2 inside its complement.
// Ties resolve to the lowest primary mask, then the lowest secondary mask.
func combineDense(t1, t2 subsetTable, k int) (uint64, uint64) {
	size := 1 << uint(k)
	val := make([]int, size)
	src := make([]uint64, size)
	for i := range val {
		val[i] = -1
	}
	for m, b := range t2 {
		val[m], src[m] = b.reward, m
	}
	for b := 0; b < k; b++ {
		bit := 1 << uint(b)
		for s := 0; s < size; s++ {
			if s&bit == 0 {
				continue
			}
			sub := s ^ bit
			if val[sub] > val[s] || (val[sub] == val[s] && src[sub] < src[s]) {
				val[s], src[s] = val[sub], src[sub]
			}
		}
	}

	full := uint64(size - 1)
	top, best1, best2 := -1, uint64(0), uint64(0)
	for _, m1 := range sortedMasks(t1) {
		rest := full &^ m1
		if v := t1[m1].reward + val[rest]; v > top {
			top, best1, best2 = v, m1, src[rest]
		}
	}

	return best1, best2
}

// combineSparse pairs recorded sets directly. t2 is scanned by descending
// yield, so the inner loop stops once no disjoint set can beat the best.
func combineSparse(t1, t2 subsetTable) (uint64, uint64) {
	type entry struct {
		mask   uint64
		reward int
	}
	second := make([]entry, 0, len(t2))
	for m, b := range t2 {
		second = append(second, entry{mask: m, reward: b.reward})
	}
	sort.Slice(second, func(i, j int) bool {
		if second[i].reward != second[j].reward {
			return second[i].reward > second[j].reward
		}
		return second[i].mask < second[j].mask
	})

	top, best1, best2 := -1, uint64(0), uint64(0)
	for _, m1 := range sortedMasks(t1) {
		r1 := t1[m1].reward
		for _, s := range second {
			if r1+s.reward <= top {
				break
			}
			if m1&s.mask == 0 {
				top, best1, best2 = r1+s.reward, m1, s.mask
				break
			}
		}
	}

	return best1, best2
}

// withAgent returns a copy of path labeled with agent.
func withAgent(path []Activation, agent int) []Activation {
	if len(path) == 0 {
		return nil
	}
	out := make([]Activation, len(path))
	for i, a := range path {
		a.Agent = agent
		out[i] = a
	}

	return out
}
