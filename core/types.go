// Package core provides type and error definitions for the diagnosis graph.
package core

import "errors"

// Sentinel errors for graph construction and lookups.
var (
	// ErrEmptyName is returned when a vertex name is the empty string.
	ErrEmptyName = errors.New("core: vertex name is empty")

	// ErrBadKind is returned when a vertex kind is neither KindSymptom nor KindDisease.
	ErrBadKind = errors.New("core: unknown vertex kind")

	// ErrDuplicateVertex is returned when adding a vertex name that already exists.
	ErrDuplicateVertex = errors.New("core: vertex already exists")

	// ErrVertexNotFound is returned when referencing a vertex name that is absent.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrSelfLoop is returned when adding an edge from a vertex to itself.
	ErrSelfLoop = errors.New("core: self-loops not allowed")

	// ErrBadSeverity is returned when an edge severity is below 1.
	ErrBadSeverity = errors.New("core: severity must be at least 1")
)

// Kind tags a vertex as a symptom or a disease.
type Kind string

const (
	// KindSymptom marks a reported-symptom vertex.
	KindSymptom Kind = "symptom"

	// KindDisease marks a candidate-disease vertex.
	KindDisease Kind = "disease"
)

// Valid reports whether k is one of the two known kinds.
func (k Kind) Valid() bool { return k == KindSymptom || k == KindDisease }

// vertex is a single node of the diagnosis graph. It owns its incident
// edges: neighbor names in first-edge-added order plus a weight per
// neighbor. Neighbor order is never sorted; traversal tie-breaking
// depends on it staying exactly as built.
type vertex struct {
	name      string
	kind      Kind
	neighbors []string           // insertion order, unique
	weights   map[string]float64 // neighbor name -> edge weight
}

// link records name as a neighbor of v, preserving first-added order.
// Re-linking an existing neighbor only updates the stored weight.
func (v *vertex) link(name string, weight float64) {
	if _, seen := v.weights[name]; !seen {
		v.neighbors = append(v.neighbors, name)
	}
	v.weights[name] = weight
}

// Graph is an undirected weighted graph keyed by vertex name. Every
// vertex's name equals its table key, and no neighbor entry references
// a name absent from the table. Populate once via AddVertex/AddEdge,
// then treat as read-only.
type Graph struct {
	vertices map[string]*vertex
	order    []string // vertex names in insertion order
	edges    int      // undirected edge count
}

// New returns an empty diagnosis graph.
func New() *Graph {
	return &Graph{vertices: make(map[string]*vertex)}
}
