// SPDX-License-Identifier: MIT
// Package: diagraph/builder
//
// Package builder assembles the diagnosis graph from parsed corpus records.
//
// What
//
//   - Build takes the severity lookup and the disease records produced by
//     dataset ingestion and constructs a core.Graph: one disease vertex per
//     record, one symptom vertex per first mention, and one disease↔symptom
//     edge per pair, weighted 1/severity.
//
// Why
//
//   - Keeping assembly separate from parsing (dataset) and from queries
//     (pathfind, diagnose) means the graph is built exactly once, from typed
//     records, with no I/O in the loop.
//
// Determinism
//
//	Records are processed in slice order and symptoms in record order, so
//	vertex insertion order, and with it every downstream traversal order, is
//	identical across runs for equal input.
//
// Idempotence
//
//	A (disease, symptom) pair repeating across records re-adds the same
//	edge; core treats that as a weight overwrite, so the resulting topology
//	is independent of how many co-occurrence rows mentioned the pair.
//
// Complexity
//
//	O(D + S + E) for D disease records, S distinct symptoms, E pairs.
//
// Usage
//
//	g, err := builder.Build(rs.Severity, rs.Diseases)
//	if err != nil { ... }
//
// Errors
//
//   - ErrNilSeverity     severity lookup is nil.
//   - ErrNoDiseases      record collection is empty.
//   - ErrMissingSeverity a referenced symptom has no severity entry; the
//     wrap names the symptom and its disease.
//   - core sentinels surfaced unchanged from vertex/edge insertion
//     (ErrEmptyName, ErrSelfLoop, ErrBadSeverity).
//
// All errors carry the "Build:" context and are checked via errors.Is.
package builder
