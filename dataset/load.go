// Package dataset implements CSV loading of the diagnosis corpus.
package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Canonical file names of the corpus, as published.
const (
	DefaultSeverityFile    = "Symptom-severity.csv"
	DefaultDatasetFile     = "dataset.csv"
	DefaultDescriptionFile = "symptom_Description.csv"
	DefaultPrecautionFile  = "symptom_precaution.csv"
)

// Config names the four corpus files.
type Config struct {
	SeverityPath    string
	DatasetPath     string
	DescriptionPath string
	PrecautionPath  string
}

// ConfigForDir returns a Config pointing at the canonical file names inside dir.
func ConfigForDir(dir string) Config {
	return Config{
		SeverityPath:    filepath.Join(dir, DefaultSeverityFile),
		DatasetPath:     filepath.Join(dir, DefaultDatasetFile),
		DescriptionPath: filepath.Join(dir, DefaultDescriptionFile),
		PrecautionPath:  filepath.Join(dir, DefaultPrecautionFile),
	}
}

// Validate reports the first empty path as ErrMissingPath.
func (c Config) Validate() error {
	fields := []struct{ name, path string }{
		{"severity", c.SeverityPath},
		{"dataset", c.DatasetPath},
		{"description", c.DescriptionPath},
		{"precaution", c.PrecautionPath},
	}
	for _, f := range fields {
		if f.path == "" {
			return fmt.Errorf("%w: %s", ErrMissingPath, f.name)
		}
	}

	return nil
}

// Load parses the four corpus files into a Ruleset. Files are read in a
// fixed order: severity, co-occurrence, descriptions, precautions; the
// advice files require their diseases to exist in the co-occurrence file.
func Load(cfg Config) (*Ruleset, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("dataset.Load: %w", err)
	}

	rs := &Ruleset{
		Severity: make(map[string]int),
		index:    make(map[string]int),
	}
	if err := rs.loadSeverity(cfg.SeverityPath); err != nil {
		return nil, fmt.Errorf("dataset.Load severity: %w", err)
	}
	if err := rs.loadCooccurrence(cfg.DatasetPath); err != nil {
		return nil, fmt.Errorf("dataset.Load dataset: %w", err)
	}
	if err := rs.loadDescriptions(cfg.DescriptionPath); err != nil {
		return nil, fmt.Errorf("dataset.Load descriptions: %w", err)
	}
	if err := rs.loadPrecautions(cfg.PrecautionPath); err != nil {
		return nil, fmt.Errorf("dataset.Load precautions: %w", err)
	}

	return rs, nil
}

// readRows opens path and returns all rows after the header row.
// Column counts vary per row in the published corpus, so no width check.
func readRows(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	return rows[1:], nil
}

// loadSeverity fills Severity and the vocabulary. A repeated symptom
// keeps its first vocabulary position; its last rating wins.
func (r *Ruleset) loadSeverity(path string) error {
	rows, err := readRows(path)
	if err != nil {
		return err
	}
	for _, row := range rows {
		if len(row) < 2 {
			return fmt.Errorf("%w: %v", ErrShortRow, row)
		}
		name := strings.TrimSpace(row[0])
		raw := strings.TrimSpace(row[1])
		severity, convErr := strconv.Atoi(raw)
		if convErr != nil || severity < 1 {
			return fmt.Errorf("%w: %s=%q", ErrBadSeverityValue, name, raw)
		}
		if _, seen := r.Severity[name]; !seen {
			r.vocabulary = append(r.vocabulary, name)
		}
		r.Severity[name] = severity
	}

	return nil
}

// loadCooccurrence builds one Disease record per distinct disease,
// unioning trimmed non-empty symptom cells across repeated rows in
// first-seen order.
func (r *Ruleset) loadCooccurrence(path string) error {
	rows, err := readRows(path)
	if err != nil {
		return err
	}
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		name := strings.TrimSpace(row[0])
		i, seen := r.index[name]
		if !seen {
			i = len(r.Diseases)
			r.index[name] = i
			r.Diseases = append(r.Diseases, Disease{Name: name})
		}
		for _, cell := range row[1:] {
			symptom := strings.TrimSpace(cell)
			if symptom == "" {
				continue
			}
			r.Diseases[i].Symptoms = appendUnique(r.Diseases[i].Symptoms, symptom)
		}
	}

	return nil
}

// loadDescriptions sets each disease's Description and opens its advice
// list with it.
func (r *Ruleset) loadDescriptions(path string) error {
	rows, err := readRows(path)
	if err != nil {
		return err
	}
	for _, row := range rows {
		if len(row) < 2 {
			return fmt.Errorf("%w: %v", ErrShortRow, row)
		}
		name := strings.TrimSpace(row[0])
		i, ok := r.index[name]
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownDisease, name)
		}
		text := strings.TrimSpace(row[1])
		r.Diseases[i].Description = text
		r.Diseases[i].Advice = append(r.Diseases[i].Advice, text)
	}

	return nil
}

// loadPrecautions appends every non-empty precaution cell to the
// disease's advice, after its description.
func (r *Ruleset) loadPrecautions(path string) error {
	rows, err := readRows(path)
	if err != nil {
		return err
	}
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		name := strings.TrimSpace(row[0])
		i, ok := r.index[name]
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownDisease, name)
		}
		for _, cell := range row[1:] {
			if text := strings.TrimSpace(cell); text != "" {
				r.Diseases[i].Advice = append(r.Diseases[i].Advice, text)
			}
		}
	}

	return nil
}

// appendUnique grows list with value unless it is already present.
func appendUnique(list []string, value string) []string {
	for _, have := range list {
		if have == value {
			return list
		}
	}

	return append(list, value)
}
