package pathfind_test

import (
	"fmt"

	"github.com/katalvlaran/diagraph/core"
	"github.com/katalvlaran/diagraph/pathfind"
)

// ExampleShortestPath finds the corridor between two reported symptoms
// and prices it.
//
//	Headache ──(2)── Flu ──(4)── Fever
func ExampleShortestPath() {
	g := core.New()
	_ = g.AddVertex("Headache", core.KindSymptom)
	_ = g.AddVertex("Fever", core.KindSymptom)
	_ = g.AddVertex("Flu", core.KindDisease)
	_ = g.AddEdge("Headache", "Flu", 2)
	_ = g.AddEdge("Fever", "Flu", 4)

	path := pathfind.ShortestPath(g, "Headache", "Fever")
	fmt.Println(path)
	fmt.Println(pathfind.Weight(g, path))
	// Output:
	// [Headache Flu Fever]
	// 0.75
}

// ExampleShortestPath_unreachable shows the nil sentinel for a pair with
// no connecting route.
func ExampleShortestPath_unreachable() {
	g := core.New()
	_ = g.AddVertex("Headache", core.KindSymptom)
	_ = g.AddVertex("Rash", core.KindSymptom)

	path := pathfind.ShortestPath(g, "Headache", "Rash")
	fmt.Println(len(path))
	// Output:
	// 0
}
