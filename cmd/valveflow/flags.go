// SPDX-License-Identifier: MIT
package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/katalvlaran/valveflow/config"
)

const usage = `
valveflow - best pressure release over a valve network.

Usage:
  valveflow [options] [INPUT]

Arguments:
  INPUT
    Valve description file ("Valve AA has flow rate=0; tunnels lead to valves DD, II").

Options:
`

// parseFlags layers defaults, the -config file and explicit flags, then
// validates the result.
func parseFlags(args []string, output io.Writer) (*config.Config, error) {
	fs := flag.NewFlagSet("valveflow", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprint(output, usage)
		fs.PrintDefaults()
	}

	def := config.Default()
	cfgPath := fs.String("config", "", "Path to a YAML configuration file.")
	input := fs.String("input", "", "Path to the valve description file.")
	start := fs.String("start", def.Start, "Valve both agents start from.")
	solo := fs.Int("solo", def.SoloBudget, "Time budget of the single agent.")
	pair := fs.Int("pair", def.PairBudget, "Time budget of each agent in the two-agent search.")
	mode := fs.String("mode", def.PairMode, "Two-agent algorithm: 'partition' or 'relay'.")
	workers := fs.Int("workers", def.Workers, "Goroutines evaluating root branches.")
	memo := fs.Bool("memo", def.Memo, "Memoize search states.")
	level := fs.String("log-level", def.LogLevel, "Logging level: 'debug', 'info', 'warn', 'error'.")
	dev := fs.Bool("dev", def.Development, "Human-readable development logging.")

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, err
		}
		return nil, &exitError{code: 2, msg: err.Error()}
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return nil, err
	}

	// Only flags given on the command line override the file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "input":
			cfg.Input = *input
		case "start":
			cfg.Start = *start
		case "solo":
			cfg.SoloBudget = *solo
		case "pair":
			cfg.PairBudget = *pair
		case "mode":
			cfg.PairMode = *mode
		case "workers":
			cfg.Workers = *workers
		case "memo":
			cfg.Memo = *memo
		case "log-level":
			cfg.LogLevel = *level
		case "dev":
			cfg.Development = *dev
		}
	})
	if fs.NArg() > 0 {
		cfg.Input = fs.Arg(0)
	}

	if err = cfg.Validate(); err != nil {
		return nil, &exitError{code: 2, msg: err.Error()}
	}

	return cfg, nil
}
