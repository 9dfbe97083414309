// SPDX-License-Identifier: MIT
// Command valveflow reads a valve network description and prints the best
// pressure released by one agent and by two cooperating agents.
//
// Usage:
//
//	valveflow [options] [INPUT]
//
// Settings come from defaults, then the optional -config YAML file, then
// explicit flags.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// exitError carries a process exit code.
type exitError struct {
	code int
	msg  string
}

func (e *exitError) Error() string { return e.msg }

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var ee *exitError
		if errors.As(err, &ee) {
			if ee.msg != "" {
				fmt.Fprintln(os.Stderr, ee.msg)
			}
			os.Exit(ee.code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run is main without the process concerns, for tests.
func run(ctx context.Context, out, errOut io.Writer, args []string) error {
	cfg, err := parseFlags(args, errOut)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	log, err := newLogger(cfg, errOut)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ans, err := solve(ctx, cfg, log)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "solo: %d\npair: %d\n", ans.solo.Reward, ans.pair.Reward)

	return nil
}
