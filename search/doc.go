// Package search finds the visitation order of reward-bearing valves that
// maximizes total released reward within a fixed time budget.
//
// What
//
//   - MaxReward: one agent starts at Problem.Start with a budget of T time
//     units. Moving to candidate c costs dist(cur, c) + 1 (travel plus one
//     unit to activate). A move is admitted only when that cost is strictly
//     below the remaining time; activating c then yields
//     reward[c] × (remaining − cost). Each candidate is activated at most
//     once. The result is the best total over all orders, 0 included.
//   - MaxRewardPair: two agents leave the origin together, each with its own
//     budget, and activate disjoint sets of candidates. Their yields add up.
//
// Candidates
//
//	A candidate is a vertex with strictly positive reward. Zero-reward
//	vertices only matter through the distance matrix. Candidate sets are
//	exchanged as *bit.Set; internally they are packed into a uint64 mask,
//	so at most 64 candidates are supported (ErrTooManyCandidates).
//
// Pair modes
//
//   - PairPartition (default): enumerate every set each agent can activate
//     alone, keep the best yield per set, then take the best sum over
//     disjoint pairs of sets. Provably optimal.
//   - PairRelay: the primary agent walks; at any point it may hand the
//     still-untouched candidates to the secondary agent, who restarts from
//     the origin with its own budget. Both modes return the same total.
//
// Determinism
//
//	Candidates are tried in ascending vertex index and ties keep the first
//	order found, so reported paths are reproducible. With WithWorkers(n>1)
//	independent root branches run on separate goroutines; each branch owns
//	its state, and the merge keeps the lowest index on ties.
//
// Complexity (k = |candidates|)
//
//   - Without memo: O(k!) worst case, bounded in practice by the budget.
//   - With memo (default): states are (vertex, remaining set, time), at most
//     O((k+1) · 2^k · T).
//   - PairPartition adds O(2^k · k) for the subset closure when k ≤ 20 and a
//     pairwise scan of recorded sets otherwise.
//
// Usage
//
//	p, err := search.NewProblem(g, "AA")
//	res, err := search.MaxReward(p, 30)
//	pair, err := search.MaxRewardPair(p, 26, 26,
//	    search.WithWorkers(4),
//	    search.WithOnActivate(func(a search.Activation) { /* ... */ }),
//	)
//
// Errors
//
//   - ErrNilMatrix, ErrDimensionMismatch  malformed Problem.
//   - ErrStartOutOfRange, ErrStartNotFound bad origin.
//   - ErrNegativeReward                   negative reward in the vector.
//   - ErrCandidateOutOfRange               WithCandidates names a bad index.
//   - ErrTooManyCandidates                 more than 64 candidates.
//   - ErrOptionViolation                   invalid Option.
//   - context.Canceled / DeadlineExceeded  from WithContext.
package search
