package core_test

import (
	"fmt"

	"github.com/katalvlaran/diagraph/core"
)

// ExampleGraph builds the smallest possible clinic: one symptom, one
// disease, one weighted edge. Severity 2 becomes weight 1/2 on both
// endpoints.
func ExampleGraph() {
	g := core.New()
	_ = g.AddVertex("Headache", core.KindSymptom)
	_ = g.AddVertex("Flu", core.KindDisease)
	_ = g.AddEdge("Headache", "Flu", 2)

	fmt.Println(g.Adjacent("Flu", "Headache"))
	fmt.Println(g.WeightOf("Headache", "Flu"))
	fmt.Println(g.VertexNames())
	// Output:
	// true
	// 0.5
	// [Headache Flu]
}

// ExampleGraph_Neighbors shows that neighbor order is the order edges
// were added, which keeps every traversal over the graph reproducible.
func ExampleGraph_Neighbors() {
	g := core.New()
	_ = g.AddVertex("Nausea", core.KindSymptom)
	for _, disease := range []string{"Gastritis", "Migraine", "Vertigo"} {
		_ = g.AddVertex(disease, core.KindDisease)
		_ = g.AddEdge("Nausea", disease, 3)
	}

	nbrs, _ := g.Neighbors("Nausea")
	fmt.Println(nbrs)
	// Output:
	// [Gastritis Migraine Vertigo]
}
