// Package core defines the weighted undirected graph at the heart of the
// diagnosis engine: typed vertices (symptom or disease), symmetric weighted
// edges, and deterministic read accessors.
//
// What
//
//   - Vertices are identified by unique names and tagged with a Kind
//     (KindSymptom or KindDisease).
//   - Edges are undirected and stored symmetrically on both endpoints with
//     identical weight 1/severity, where severity >= 1 rates how strongly a
//     symptom indicates a disease. Higher severity means lower weight, so
//     strongly indicated pairs sit closer in path-cost terms.
//   - Mutation is construction-only: AddVertex and AddEdge populate the graph
//     once; afterwards it is read through Neighbors, Adjacent, KindOf,
//     WeightOf, VertexNames and the count helpers.
//
// Why
//
//   - One shared graph joins symptoms and diseases, so shortest paths between
//     reported symptoms pass through candidate diseases and their path weight
//     can be folded into a likelihood score.
//
// Determinism
//
//	Neighbors returns names in first-edge-added order and VertexNames returns
//	names in insertion order. Nothing is sorted and no map iteration order
//	leaks into results, so traversal tie-breaking is fully reproducible.
//
// Concurrency
//
//	The graph is not internally synchronized. Build it on one goroutine, then
//	share it read-only; all accessors are safe under that discipline.
//
// Complexity (V = vertices, deg = vertex degree)
//
//   - AddVertex, AddEdge, Adjacent, KindOf, WeightOf, HasVertex: O(1)
//   - Neighbors: O(deg) for the returned copy
//   - VertexNames: O(V) for the returned copy
//
// Usage
//
//	g := core.New()
//	_ = g.AddVertex("Headache", core.KindSymptom)
//	_ = g.AddVertex("Flu", core.KindDisease)
//	_ = g.AddEdge("Headache", "Flu", 2) // weight 0.5 on both endpoints
//
// Errors
//
//   - ErrEmptyName        vertex name is the empty string.
//   - ErrBadKind          kind is neither KindSymptom nor KindDisease.
//   - ErrDuplicateVertex  AddVertex on an existing name.
//   - ErrVertexNotFound   reference to an absent name.
//   - ErrSelfLoop         AddEdge with identical endpoints.
//   - ErrBadSeverity      AddEdge with severity < 1.
//
// Adjacent and WeightOf never fail: unknown names yield false and 0.0. The
// 0.0 from WeightOf is a sentinel meaning "no path contribution"; callers
// that must tell it apart from a real weight check Adjacent first.
package core
