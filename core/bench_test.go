package core_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/diagraph/core"
)

// starGraph builds one symptom hub linked to n disease vertices.
func starGraph(n int) *core.Graph {
	g := core.New()
	_ = g.AddVertex("hub", core.KindSymptom)
	for i := 0; i < n; i++ {
		name := fmt.Sprintf("d%d", i)
		_ = g.AddVertex(name, core.KindDisease)
		_ = g.AddEdge("hub", name, 1+i%7)
	}

	return g
}

// BenchmarkNeighbors measures the copy cost of reading a high-degree vertex.
func BenchmarkNeighbors(b *testing.B) {
	const N = 1000
	g := starGraph(N)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = g.Neighbors("hub")
	}
}

// BenchmarkWeightOf measures constant-time weight lookups.
func BenchmarkWeightOf(b *testing.B) {
	const N = 1000
	g := starGraph(N)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = g.WeightOf("hub", "d500")
	}
}
