package diagnose

import (
	"fmt"

	"github.com/katalvlaran/diagraph/core"
	"github.com/katalvlaran/diagraph/pathfind"
)

// Scores computes the disease-likelihood distribution for the reported
// symptoms. The graph is read-only; concurrent calls over the same graph
// are safe as long as no writer runs alongside them.
//
// Returns ErrNilGraph for a nil graph, ErrNoSymptoms for an empty list,
// and a wrapped core.ErrVertexNotFound naming the first symptom that is
// absent from the graph. An empty ScoreMap with a nil error means no
// disease earned a score.
func Scores(g *core.Graph, symptoms []string) (ScoreMap, error) {
	// 1) Validate the graph handle.
	if g == nil {
		return nil, ErrNilGraph
	}

	// 2) Collapse duplicates, keeping first-occurrence order for pair
	//    generation.
	distinct := dedup(symptoms)
	if len(distinct) == 0 {
		return nil, ErrNoSymptoms
	}

	// 3) Fail fast on names outside the graph.
	for _, name := range distinct {
		if !g.HasVertex(name) {
			return nil, fmt.Errorf("diagnose: symptom %q: %w", name, core.ErrVertexNotFound)
		}
	}

	// 4) Accumulate raw scores: direct edges for a lone symptom, pairwise
	//    shortest paths otherwise.
	r := &runner{graph: g, raw: make(map[string]float64)}
	if len(distinct) == 1 {
		r.scoreSingle(distinct[0])
	} else {
		r.scorePairs(distinct)
	}

	// 5) Drop zeros, invert, and normalize to percentages.
	return r.normalize(), nil
}

// runner accumulates raw per-disease contributions for one request.
type runner struct {
	graph *core.Graph
	raw   map[string]float64
}

// scoreSingle credits each disease adjacent to the symptom with the
// weight of their direct edge.
func (r *runner) scoreSingle(symptom string) {
	neighbors, err := r.graph.Neighbors(symptom)
	if err != nil {
		return // symptom is validated before scoring; it cannot be absent
	}
	for _, name := range neighbors {
		if r.isDisease(name) {
			r.raw[name] = r.graph.WeightOf(name, symptom)
		}
	}
}

// scorePairs walks every unordered symptom pair in input order and
// credits each disease on the connecting shortest path with the path's
// accumulated weight. Unreachable pairs contribute nothing.
func (r *runner) scorePairs(symptoms []string) {
	for i := 0; i < len(symptoms); i++ {
		for j := i + 1; j < len(symptoms); j++ {
			path := pathfind.ShortestPath(r.graph, symptoms[i], symptoms[j])
			if len(path) == 0 {
				continue
			}
			weight := pathfind.Weight(r.graph, path)
			for _, name := range path {
				if r.isDisease(name) {
					r.raw[name] += weight
				}
			}
		}
	}
}

// isDisease reports whether name carries the disease kind.
func (r *runner) isDisease(name string) bool {
	kind, err := r.graph.KindOf(name)
	return err == nil && kind == core.KindDisease
}

// normalize removes zero raw scores, inverts the remainder, and scales
// the inverted values to percentages of their own sum. The zero filter
// runs before inversion; see the package documentation.
func (r *runner) normalize() ScoreMap {
	inverted := make(ScoreMap, len(r.raw))
	for disease, raw := range r.raw {
		if raw == 0 {
			continue
		}
		inverted[disease] = 1 / raw
	}
	if len(inverted) == 0 {
		return ScoreMap{}
	}

	var sum float64
	for _, v := range inverted {
		sum += v
	}
	for disease, v := range inverted {
		inverted[disease] = v / sum * 100
	}
	return inverted
}

// dedup collapses repeated names to their first occurrence, preserving
// input order.
func dedup(symptoms []string) []string {
	seen := make(map[string]bool, len(symptoms))
	distinct := make([]string, 0, len(symptoms))
	for _, s := range symptoms {
		if seen[s] {
			continue
		}
		seen[s] = true
		distinct = append(distinct, s)
	}
	return distinct
}
