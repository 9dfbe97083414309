// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/valveflow/core"
)

// BenchmarkAddTunnel measures adding tunnels along a growing chain.
func BenchmarkAddTunnel(b *testing.B) {
	g := core.NewGraph()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.AddTunnel(fmt.Sprintf("V%d", i), fmt.Sprintf("V%d", i+1))
	}
}

// BenchmarkSnapshot measures the dense copy of a 1000-leaf star.
func BenchmarkSnapshot(b *testing.B) {
	g := core.NewGraph()
	for i := 0; i < 1000; i++ {
		_ = g.AddTunnel("Hub", fmt.Sprintf("Leaf%d", i))
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Snapshot()
	}
}
