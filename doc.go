// Package diagraph is an in-memory symptom checker: it turns a CSV
// corpus of diseases, symptoms and severities into a weighted undirected
// graph and ranks likely diseases for any set of reported symptoms.
//
// 🚀 What is diagraph?
//
//	A small, deterministic diagnosis engine that brings together:
//		• Core primitives: typed symptom/disease vertices, severity-weighted edges
//		• Traversal: hop-count BFS returning the full vertex path
//		• Scoring: pairwise path accumulation, inversion, percentage normalization
//		• Ingestion: the four-file CSV corpus (severity, co-occurrence, advice)
//		• Surfaces: REST API, one-shot CLI, interactive terminal session
//
// ✨ Why choose diagraph?
//
//   - Deterministic: insertion-ordered adjacency, reproducible rankings
//   - Explainable: every percentage traces back to concrete paths and severities
//   - Honest errors: sentinel values checked with errors.Is, no silent skips
//
// Under the hood, everything is organized under these packages:
//
//	core/     — the weighted graph container and its invariants
//	pathfind/ — breadth-first shortest path and path weighting
//	builder/  — corpus records to graph assembly
//	dataset/  — CSV ingestion into a Ruleset
//	diagnose/ — the likelihood scorer
//	internal/ — config, HTTP server, terminal UI
//	cmd/      — the diagraph binary (serve, diagnose, tui)
//
// Quick ASCII example:
//
//	    Headache───Flu───Fever
//	        │
//	    Migraine───Nausea
//
//	two diseases bridging three symptoms; reporting Fever and Nausea
//	walks the corridor between them and scores both diseases.
//
// Dive into README.md and examples/ for full walkthroughs.
//
//	go get github.com/katalvlaran/diagraph
package diagraph
