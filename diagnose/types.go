package diagnose

import "errors"

// Sentinel errors returned by Scores. Match with errors.Is.
var (
	// ErrNilGraph is returned when the graph pointer is nil.
	ErrNilGraph = errors.New("diagnose: graph is nil")

	// ErrNoSymptoms is returned when no symptom names remain after
	// deduplication.
	ErrNoSymptoms = errors.New("diagnose: no symptoms reported")
)

// ScoreMap maps disease names to likelihood percentages. The values of a
// non-empty map sum to 100 within floating-point tolerance. A fresh map
// is built per call and never retained by the scorer.
type ScoreMap map[string]float64
