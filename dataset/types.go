// Package dataset provides type and error definitions for corpus ingestion.
package dataset

import (
	"errors"
	"sort"
)

// Sentinel errors for corpus ingestion.
var (
	// ErrMissingPath is returned when a Config path is empty.
	ErrMissingPath = errors.New("dataset: file path is empty")

	// ErrShortRow is returned when a row lacks its value cell.
	ErrShortRow = errors.New("dataset: row has too few cells")

	// ErrBadSeverityValue is returned when a severity cell is not an integer >= 1.
	ErrBadSeverityValue = errors.New("dataset: severity is not a positive integer")

	// ErrUnknownDisease is returned when an advice row names an unknown disease.
	ErrUnknownDisease = errors.New("dataset: disease not present in co-occurrence file")
)

// Disease is one fully assembled record: the disease name, its unioned
// symptom set in first-seen order, and its ordered advisory strings
// (description first, then precautions).
type Disease struct {
	Name        string
	Symptoms    []string
	Advice      []string
	Description string
}

// Ruleset is the parsed corpus handed to the graph builder and to the
// presentation layers. Immutable after Load.
type Ruleset struct {
	// Severity maps each symptom name to its integer rating (>= 1).
	Severity map[string]int

	// Diseases holds one record per distinct disease, in first-seen order.
	Diseases []Disease

	vocabulary []string       // symptom names in severity-file order
	index      map[string]int // disease name -> position in Diseases
}

// Symptoms returns the symptom vocabulary in severity-file order.
// The slice is a copy; callers may keep or mutate it. Rulesets assembled
// by hand, without Load, fall back to the Severity keys in sorted order.
func (r *Ruleset) Symptoms() []string {
	if r.vocabulary == nil {
		names := make([]string, 0, len(r.Severity))
		for name := range r.Severity {
			names = append(names, name)
		}
		sort.Strings(names)

		return names
	}

	out := make([]string, len(r.vocabulary))
	copy(out, r.vocabulary)

	return out
}

// Disease returns the record for name and whether it exists. Rulesets
// assembled by hand, without Load, fall back to a linear scan.
func (r *Ruleset) Disease(name string) (Disease, bool) {
	if r.index != nil {
		i, ok := r.index[name]
		if !ok {
			return Disease{}, false
		}

		return r.Diseases[i], true
	}

	for _, d := range r.Diseases {
		if d.Name == name {
			return d, true
		}
	}

	return Disease{}, false
}

// DiseaseNames returns every disease name in first-seen order.
func (r *Ruleset) DiseaseNames() []string {
	out := make([]string, len(r.Diseases))
	for i, d := range r.Diseases {
		out[i] = d.Name
	}

	return out
}
