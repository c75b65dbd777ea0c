package pathfind_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/diagraph/core"
	"github.com/katalvlaran/diagraph/pathfind"
)

// BenchmarkShortestPath_Chain searches end to end across a symptom/disease
// chain of N vertices.
func BenchmarkShortestPath_Chain(b *testing.B) {
	const N = 2000
	g := core.New()
	for i := 0; i <= N; i++ {
		kind := core.KindSymptom
		if i%2 == 1 {
			kind = core.KindDisease
		}
		_ = g.AddVertex(fmt.Sprintf("v%d", i), kind)
	}
	for i := 0; i < N; i++ {
		_ = g.AddEdge(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1), 1+i%5)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = pathfind.ShortestPath(g, "v0", fmt.Sprintf("v%d", N))
	}
}

// BenchmarkWeight prices a fixed 100-hop path.
func BenchmarkWeight(b *testing.B) {
	const N = 100
	g := core.New()
	path := make([]string, 0, N+1)
	for i := 0; i <= N; i++ {
		kind := core.KindSymptom
		if i%2 == 1 {
			kind = core.KindDisease
		}
		name := fmt.Sprintf("v%d", i)
		_ = g.AddVertex(name, kind)
		path = append(path, name)
	}
	for i := 0; i < N; i++ {
		_ = g.AddEdge(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1), 1+i%5)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = pathfind.Weight(g, path)
	}
}
