// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/katalvlaran/valveflow/config"
	"github.com/katalvlaran/valveflow/parse"
	"github.com/katalvlaran/valveflow/search"
	"go.uber.org/zap"
)

type answers struct {
	solo search.Result
	pair search.PairResult
}

// solve runs both searches described by cfg.
func solve(ctx context.Context, cfg *config.Config, log *zap.Logger) (answers, error) {
	f, err := os.Open(cfg.Input)
	if err != nil {
		return answers{}, err
	}
	defer f.Close()

	g, err := parse.Parse(f)
	if err != nil {
		return answers{}, fmt.Errorf("%s: %w", cfg.Input, err)
	}
	p, err := search.NewProblem(g, cfg.Start)
	if err != nil {
		return answers{}, err
	}
	mode, err := search.ParsePairMode(cfg.PairMode)
	if err != nil {
		return answers{}, err
	}
	names := g.Snapshot().Names
	log.Info("network loaded",
		zap.String("input", cfg.Input),
		zap.Int("valves", g.VertexCount()),
		zap.Int("tunnels", g.TunnelCount()),
		zap.Int("candidates", search.Candidates(p.Rewards).Size()),
	)

	opts := []search.Option{
		search.WithContext(ctx),
		search.WithMemo(cfg.Memo),
		search.WithWorkers(cfg.Workers),
		search.WithPairMode(mode),
		search.WithOnActivate(func(a search.Activation) {
			log.Debug("activate",
				zap.Int("agent", a.Agent),
				zap.String("valve", names[a.Node]),
				zap.Int("remaining", a.Remaining),
				zap.Int("gained", a.Gained),
			)
		}),
	}

	var ans answers
	begin := time.Now()
	if ans.solo, err = search.MaxReward(p, cfg.SoloBudget, opts...); err != nil {
		return answers{}, fmt.Errorf("solo search: %w", err)
	}
	log.Info("solo search done",
		zap.Int("budget", cfg.SoloBudget),
		zap.Int("reward", ans.solo.Reward),
		zap.Int("evaluated", ans.solo.Evaluated),
		zap.Duration("took", time.Since(begin)),
	)

	begin = time.Now()
	if ans.pair, err = search.MaxRewardPair(p, cfg.PairBudget, cfg.PairBudget, opts...); err != nil {
		return answers{}, fmt.Errorf("pair search: %w", err)
	}
	log.Info("pair search done",
		zap.Int("budget", cfg.PairBudget),
		zap.Stringer("mode", mode),
		zap.Int("reward", ans.pair.Reward),
		zap.Int("primary", ans.pair.Primary.Reward),
		zap.Int("secondary", ans.pair.Secondary.Reward),
		zap.Int("evaluated", ans.pair.Evaluated),
		zap.Duration("took", time.Since(begin)),
	)

	return ans, nil
}
