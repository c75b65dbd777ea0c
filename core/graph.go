// Package core implements mutation and lookup methods of the diagnosis graph.
package core

import "fmt"

// AddVertex inserts an isolated vertex under its unique name.
// Returns ErrEmptyName, ErrBadKind, or ErrDuplicateVertex on invalid input.
func (g *Graph) AddVertex(name string, kind Kind) error {
	if name == "" {
		return ErrEmptyName
	}
	if !kind.Valid() {
		return fmt.Errorf("%w: %q", ErrBadKind, kind)
	}
	if _, exists := g.vertices[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateVertex, name)
	}
	g.vertices[name] = &vertex{
		name:    name,
		kind:    kind,
		weights: make(map[string]float64),
	}
	g.order = append(g.order, name)

	return nil
}

// AddEdge connects name1 and name2 with symmetric weight 1/severity.
// Both endpoints must already exist and differ; severity must be >= 1.
// Re-adding an existing pair overwrites the stored weight on both
// endpoints instead of failing, which keeps repeated builder passes
// idempotent per (disease, symptom) pair.
// Returns ErrVertexNotFound, ErrSelfLoop, or ErrBadSeverity.
func (g *Graph) AddEdge(name1, name2 string, severity int) error {
	v1, ok := g.vertices[name1]
	if !ok {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, name1)
	}
	v2, ok := g.vertices[name2]
	if !ok {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, name2)
	}
	if name1 == name2 {
		return fmt.Errorf("%w: %q", ErrSelfLoop, name1)
	}
	if severity < 1 {
		return fmt.Errorf("%w: got %d", ErrBadSeverity, severity)
	}

	weight := 1 / float64(severity)
	_, existed := v1.weights[name2]
	v1.link(name2, weight)
	v2.link(name1, weight)
	if !existed {
		g.edges++
	}

	return nil
}

// Neighbors returns the neighbor names of name in first-edge-added order.
// The slice is a copy; callers may keep or mutate it freely.
// Returns ErrVertexNotFound if name is absent.
func (g *Graph) Neighbors(name string) ([]string, error) {
	v, ok := g.vertices[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, name)
	}
	out := make([]string, len(v.neighbors))
	copy(out, v.neighbors)

	return out, nil
}

// Adjacent reports whether an edge exists between name1 and name2.
// Unknown names yield false, never an error; adjacency is symmetric.
func (g *Graph) Adjacent(name1, name2 string) bool {
	v, ok := g.vertices[name1]
	if !ok {
		return false
	}
	if _, ok = g.vertices[name2]; !ok {
		return false
	}
	_, linked := v.weights[name2]

	return linked
}

// KindOf returns the kind tag of name.
// Returns ErrVertexNotFound if name is absent.
func (g *Graph) KindOf(name string) (Kind, error) {
	v, ok := g.vertices[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrVertexNotFound, name)
	}

	return v.kind, nil
}

// WeightOf returns the weight of the edge between name1 and name2, or 0.0
// when they are not adjacent (unknown names included). The zero is a
// sentinel meaning "no path contribution", not an error.
func (g *Graph) WeightOf(name1, name2 string) float64 {
	v, ok := g.vertices[name1]
	if !ok {
		return 0
	}

	return v.weights[name2]
}

// VertexNames returns every vertex name in insertion order.
func (g *Graph) VertexNames() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// HasVertex reports whether name exists in the graph.
func (g *Graph) HasVertex(name string) bool {
	_, ok := g.vertices[name]

	return ok
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int { return len(g.vertices) }

// EdgeCount returns the number of distinct undirected edges.
func (g *Graph) EdgeCount() int { return g.edges }
