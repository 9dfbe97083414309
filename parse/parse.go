// SPDX-License-Identifier: MIT

package parse

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/katalvlaran/valveflow/core"
)

// Sentinel errors for parsing.
var (
	// ErrSyntax is returned for a line that does not match the valve grammar.
	ErrSyntax = errors.New("parse: syntax error")

	// ErrDuplicateValve is returned when a valve is declared twice.
	ErrDuplicateValve = errors.New("parse: duplicate valve")

	// ErrUnknownValve is returned when a tunnel names an undeclared valve.
	ErrUnknownValve = errors.New("parse: tunnel to unknown valve")

	// ErrEmptyInput is returned when no valve is declared.
	ErrEmptyInput = errors.New("parse: no valves")
)

var lineRx = regexp.MustCompile(
	`^Valve ([A-Za-z]+) has flow rate=(\d+); tunnels? leads? to valves? ([A-Za-z]+(?:, [A-Za-z]+)*)$`)

// Line is one parsed valve declaration.
type Line struct {
	Valve   string
	Reward  int
	Tunnels []string
}

// ParseLine parses a single declaration.
func ParseLine(s string) (Line, error) {
	m := lineRx.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return Line{}, fmt.Errorf("%w: %q", ErrSyntax, s)
	}
	reward, err := strconv.Atoi(m[2])
	if err != nil {
		return Line{}, fmt.Errorf("%w: flow rate %q: %v", ErrSyntax, m[2], err)
	}

	return Line{Valve: m[1], Reward: reward, Tunnels: strings.Split(m[3], ", ")}, nil
}

// Lines scans r and returns every declaration in order. Blank lines are
// skipped; errors carry the 1-based line number.
func Lines(r io.Reader) ([]Line, error) {
	var (
		out []Line
		sc  = bufio.NewScanner(r)
		no  int
	)
	for sc.Scan() {
		no++
		text := sc.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		l, err := ParseLine(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", no, err)
		}
		out = append(out, l)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

// Parse reads r and builds the valve network.
func Parse(r io.Reader) (*core.Graph, error) {
	lines, err := Lines(r)
	if err != nil {
		return nil, err
	}

	return Build(lines)
}

// Build registers all valves in order, then all tunnels.
func Build(lines []Line) (*core.Graph, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyInput
	}
	g := core.NewGraph()
	for _, l := range lines {
		if g.HasVertex(l.Valve) {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateValve, l.Valve)
		}
		if err := g.AddVertex(l.Valve, l.Reward); err != nil {
			return nil, fmt.Errorf("valve %s: %w", l.Valve, err)
		}
	}
	for _, l := range lines {
		for _, to := range l.Tunnels {
			if !g.HasVertex(to) {
				return nil, fmt.Errorf("%w: %s → %s", ErrUnknownValve, l.Valve, to)
			}
			if err := g.AddTunnel(l.Valve, to); err != nil {
				return nil, fmt.Errorf("tunnel %s → %s: %w", l.Valve, to, err)
			}
		}
	}

	return g, nil
}
