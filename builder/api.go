// SPDX-License-Identifier: MIT
// Package: diagraph/builder
//
// api.go - the single public entry-point assembling the diagnosis graph.

package builder

import (
	"fmt"

	"github.com/katalvlaran/diagraph/core"
	"github.com/katalvlaran/diagraph/dataset"
)

// Build constructs the diagnosis graph from a severity lookup and the
// parsed disease records. Records are processed in slice order and
// symptoms in record order: one disease vertex per record, one symptom
// vertex per first mention, one disease↔symptom edge per pair carrying
// weight 1/severity. Any error is wrapped with the "Build:" context and
// returned immediately; no partial cleanup is attempted.
func Build(severityByName map[string]int, diseases []dataset.Disease) (*core.Graph, error) {
	if severityByName == nil {
		return nil, fmt.Errorf("Build: %w", ErrNilSeverity)
	}
	if len(diseases) == 0 {
		return nil, fmt.Errorf("Build: %w", ErrNoDiseases)
	}

	g := core.New()
	for _, d := range diseases {
		if err := addRecord(g, d, severityByName); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return g, nil
}

// addRecord inserts one disease record: its vertex, its symptoms'
// vertices, and the weighted edges between them. Vertices already
// present are reused, so shared symptoms join diseases in one component.
func addRecord(g *core.Graph, d dataset.Disease, severityByName map[string]int) error {
	if !g.HasVertex(d.Name) {
		if err := g.AddVertex(d.Name, core.KindDisease); err != nil {
			return err
		}
	}
	for _, symptom := range d.Symptoms {
		if !g.HasVertex(symptom) {
			if err := g.AddVertex(symptom, core.KindSymptom); err != nil {
				return err
			}
		}
		severity, ok := severityByName[symptom]
		if !ok {
			return fmt.Errorf("%w: %q (disease %q)", ErrMissingSeverity, symptom, d.Name)
		}
		if err := g.AddEdge(d.Name, symptom, severity); err != nil {
			return err
		}
	}

	return nil
}
