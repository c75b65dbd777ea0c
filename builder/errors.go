// SPDX-License-Identifier: MIT
// Package: diagraph/builder
//
// errors.go - sentinel errors for graph assembly.
//
// Error policy:
//   - Only package-level sentinels are exposed; callers branch with errors.Is.
//   - Sentinels are never pre-formatted; context is attached via %w wrapping.

package builder

import "errors"

// ErrNilSeverity indicates Build received a nil severity lookup.
// Usage: if errors.Is(err, ErrNilSeverity) { /* supply the severity map */ }.
var ErrNilSeverity = errors.New("builder: severity lookup is nil")

// ErrNoDiseases indicates Build received an empty record collection.
// Usage: if errors.Is(err, ErrNoDiseases) { /* check corpus ingestion */ }.
var ErrNoDiseases = errors.New("builder: no disease records")

// ErrMissingSeverity indicates a referenced symptom has no severity entry.
// Usage: if errors.Is(err, ErrMissingSeverity) { /* fix the severity file */ }.
var ErrMissingSeverity = errors.New("builder: symptom has no severity entry")
