// Package dataset ingests the four tabular files of the diagnosis corpus
// and produces the typed records the graph builder consumes.
//
// What
//
//   - Load reads four CSV files: symptom severity ratings, disease-to-symptom
//     co-occurrence rows, disease descriptions, and disease precautions.
//   - The result is a Ruleset: a severity map, the symptom vocabulary in
//     severity-file order, and one Disease record per distinct disease with
//     its unioned symptom set and ordered advice (description first, then
//     precautions).
//
// Why
//
//   - The engine itself never touches files. Parsing lives here so the graph
//     builder stays a pure transformation over already-typed records.
//
// File conventions
//
//	Every file has a header row, which is skipped. Cells are trimmed of
//	surrounding whitespace. Empty cells in co-occurrence and precaution rows
//	are ignored. A disease repeating across co-occurrence rows unions its
//	symptoms, preserving first-seen order. Severity values must parse as
//	integers >= 1.
//
// Usage
//
//	rs, err := dataset.Load(dataset.ConfigForDir("./data"))
//	if err != nil { ... }
//	g, err := builder.Build(rs.Severity, rs.Diseases)
//
// Errors
//
//   - ErrMissingPath       a Config path is empty.
//   - ErrShortRow          a severity or description row lacks its value cell.
//   - ErrBadSeverityValue  a severity cell is not an integer >= 1.
//   - ErrUnknownDisease    a description or precaution row names a disease
//     absent from the co-occurrence file.
//
// All are wrapped with the offending file stage and checked via errors.Is.
package dataset
