// Package diagnose converts a set of reported symptoms into a normalized
// disease-likelihood distribution over the diagnosis graph.
//
// What
//
//   - Scores takes the read-only graph and a non-empty list of symptom
//     names and returns a ScoreMap: disease name → percentage, summing to
//     100 across the returned diseases.
//   - One reported symptom: every adjacent disease is credited with its
//     direct edge weight.
//   - Several reported symptoms: for every unordered pair (input order,
//     i<j), the hop-count shortest path between them is found and every
//     disease on that path is credited with the path's total weight,
//     accumulating across pairs.
//
// Why
//
//   - Edge weights are 1/severity, so strongly indicated diseases sit on
//     light corridors between symptoms. A small accumulated raw score
//     therefore means a strong candidate, which is why raw scores are
//     inverted before normalization.
//
// Normalization
//
//	Diseases whose raw score is exactly 0 are dropped before inversion: a
//	zero means "no weighted contribution found", not "zero distance", and
//	inversion is undefined on it. The surviving scores are inverted (1/raw)
//	and scaled to percentages of their own sum. If every raw score is zero
//	the result is an empty map, not an error.
//
// Determinism
//
//	Scoring is read-only and stateless: the same graph and symptom list
//	produce the identical ScoreMap on every call. Pair order follows input
//	order; path selection inherits pathfind's fixed tie-breaking.
//
// Complexity (n = reported symptoms, V = vertices, E = edges)
//
//   - Time:   O(n² · (V + E)) for the pairwise searches
//   - Memory: O(V) per search plus the result map
//
// Usage
//
//	scores, err := diagnose.Scores(g, []string{"headache", "fever"})
//	if err != nil { ... }
//	for disease, pct := range scores { ... }
//
// Errors
//
//   - ErrNilGraph            nil graph pointer.
//   - ErrNoSymptoms          empty symptom list (after deduplication).
//   - core.ErrVertexNotFound a symptom name absent from the graph, wrapped
//     with the offending name. Scoring fails fast rather than skipping
//     unknown names silently.
//
// Unreachable symptom pairs and diseases off every path are expected
// outcomes, not errors; they simply contribute nothing.
package diagnose
