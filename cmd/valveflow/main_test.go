package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/valveflow/config"
	"github.com/stretchr/testify/require"
)

const sample = `Valve AA has flow rate=0; tunnels lead to valves DD, II, BB
Valve BB has flow rate=13; tunnels lead to valves CC, AA
Valve CC has flow rate=2; tunnels lead to valves DD, BB
Valve DD has flow rate=20; tunnels lead to valves CC, AA, EE
Valve EE has flow rate=3; tunnels lead to valves FF, DD
Valve FF has flow rate=0; tunnels lead to valves EE, GG
Valve GG has flow rate=0; tunnels lead to valves FF, HH
Valve HH has flow rate=22; tunnel leads to valve GG
Valve II has flow rate=0; tunnels lead to valves AA, JJ
Valve JJ has flow rate=21; tunnel leads to valve II
`

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestRun_Sample(t *testing.T) {
	input := writeFile(t, "valves.txt", sample)

	for _, mode := range []string{"partition", "relay"} {
		var out, logs bytes.Buffer
		err := run(context.Background(), &out, &logs, []string{"-mode", mode, "-workers", "2", input})
		require.NoError(t, err, mode)
		require.Equal(t, "solo: 1651\npair: 1707\n", out.String(), mode)
		require.Contains(t, logs.String(), "pair search done")
	}
}

func TestRun_ConfigFileAndOverride(t *testing.T) {
	input := writeFile(t, "valves.txt", sample)
	cfgPath := writeFile(t, "run.yaml", "input: "+input+"\nsolo_budget: 5\nlog_level: debug\n")

	var out, logs bytes.Buffer
	require.NoError(t, run(context.Background(), &out, &logs, []string{"-config", cfgPath, "-pair", "0"}))
	require.Equal(t, "solo: 63\npair: 0\n", out.String()) // DD then EE
	require.Contains(t, logs.String(), `"valve":"DD"`)
}

func TestRun_Errors(t *testing.T) {
	var out, logs bytes.Buffer

	// no input at all
	err := run(context.Background(), &out, &logs, nil)
	var ee *exitError
	require.ErrorAs(t, err, &ee)
	require.Equal(t, 2, ee.code)
	require.Contains(t, ee.msg, "input is required")

	err = run(context.Background(), &out, &logs, []string{"-bogus"})
	require.ErrorAs(t, err, &ee)
	require.Equal(t, 2, ee.code)

	err = run(context.Background(), &out, &logs, []string{"-start", "ZZ", writeFile(t, "v.txt", sample)})
	require.Error(t, err)
	require.Contains(t, err.Error(), "ZZ")

	err = run(context.Background(), &out, &logs, []string{writeFile(t, "bad.txt", "Valve AA\n")})
	require.Error(t, err)
	require.Contains(t, err.Error(), "line 1")

	require.NoError(t, run(context.Background(), &out, &logs, []string{"-h"}))
	require.Empty(t, out.String())
}

func TestRun_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out, logs bytes.Buffer
	err := run(ctx, &out, &logs, []string{writeFile(t, "v.txt", sample)})
	require.ErrorIs(t, err, context.Canceled)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.Default()
	cfg.LogLevel = "warn"
	log, err := newLogger(cfg, &buf)
	require.NoError(t, err)
	log.Info("hidden")
	log.Warn("shown")
	require.NoError(t, log.Sync())
	require.False(t, strings.Contains(buf.String(), "hidden"))
	require.True(t, strings.Contains(buf.String(), "shown"))
}
