package builder_test

import (
	"fmt"

	"github.com/katalvlaran/diagraph/builder"
	"github.com/katalvlaran/diagraph/dataset"
)

// ExampleBuild assembles a two-disease clinic that shares one symptom.
func ExampleBuild() {
	severity := map[string]int{"headache": 2, "fever": 4, "nausea": 5}
	records := []dataset.Disease{
		{Name: "Flu", Symptoms: []string{"headache", "fever"}},
		{Name: "Migraine", Symptoms: []string{"headache", "nausea"}},
	}

	g, _ := builder.Build(severity, records)
	fmt.Println(g.VertexNames())
	fmt.Println(g.WeightOf("Flu", "headache"))

	nbrs, _ := g.Neighbors("headache")
	fmt.Println(nbrs)
	// Output:
	// [Flu headache fever Migraine nausea]
	// 0.5
	// [Flu Migraine]
}
