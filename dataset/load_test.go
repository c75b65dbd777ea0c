package dataset_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/diagraph/dataset"
)

// writeCorpus materializes a small four-file corpus in dir.
func writeCorpus(t *testing.T, dir string, severity, cooccurrence, descriptions, precautions string) dataset.Config {
	t.Helper()
	files := map[string]string{
		dataset.DefaultSeverityFile:    severity,
		dataset.DefaultDatasetFile:     cooccurrence,
		dataset.DefaultDescriptionFile: descriptions,
		dataset.DefaultPrecautionFile:  precautions,
	}
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}

	return dataset.ConfigForDir(dir)
}

func TestLoad_FullCorpus(t *testing.T) {
	cfg := writeCorpus(t, t.TempDir(),
		"Symptom,weight\nheadache,3\n fever ,5\nnausea,4\n",
		"Disease,Symptom_1,Symptom_2,Symptom_3\n"+
			"Flu,headache,fever,\n"+
			"Migraine,headache,nausea,\n"+
			"Flu,fever,nausea,\n", // repeated disease row, symptoms unioned
		"Disease,Description\nFlu,A viral infection.\nMigraine,A neurological condition.\n",
		"Disease,P1,P2,P3,P4\nFlu,rest,fluids,,\nMigraine,dark room,,,\n",
	)

	rs, err := dataset.Load(cfg)
	require.NoError(t, err)

	// severity ratings, trimmed
	assert.Equal(t, map[string]int{"headache": 3, "fever": 5, "nausea": 4}, rs.Severity)
	// vocabulary keeps severity-file order
	assert.Equal(t, []string{"headache", "fever", "nausea"}, rs.Symptoms())

	// diseases in first-seen order, symptom union preserving first-seen order
	assert.Equal(t, []string{"Flu", "Migraine"}, rs.DiseaseNames())
	flu, ok := rs.Disease("Flu")
	require.True(t, ok)
	assert.Equal(t, []string{"headache", "fever", "nausea"}, flu.Symptoms)

	// advice opens with the description, then non-empty precautions
	assert.Equal(t, "A viral infection.", flu.Description)
	assert.Equal(t, []string{"A viral infection.", "rest", "fluids"}, flu.Advice)

	migraine, ok := rs.Disease("Migraine")
	require.True(t, ok)
	assert.Equal(t, []string{"headache", "nausea"}, migraine.Symptoms)
	assert.Equal(t, []string{"A neurological condition.", "dark room"}, migraine.Advice)

	_, ok = rs.Disease("Ghost")
	assert.False(t, ok)
}

func TestLoad_RepeatedSymptomKeepsFirstPosition(t *testing.T) {
	cfg := writeCorpus(t, t.TempDir(),
		"Symptom,weight\nheadache,3\nfever,5\nheadache,7\n", // re-rated later
		"Disease,Symptom_1\nFlu,headache\n",
		"Disease,Description\nFlu,desc\n",
		"Disease,P1\nFlu,rest\n",
	)

	rs, err := dataset.Load(cfg)
	require.NoError(t, err)

	assert.Equal(t, []string{"headache", "fever"}, rs.Symptoms(), "first position wins")
	assert.Equal(t, 7, rs.Severity["headache"], "last rating wins")
}

func TestSymptoms_HandAssembledFallsBackToSortedKeys(t *testing.T) {
	rs := &dataset.Ruleset{Severity: map[string]int{"nausea": 4, "fever": 5, "headache": 3}}
	assert.Equal(t, []string{"fever", "headache", "nausea"}, rs.Symptoms())

	var empty dataset.Ruleset
	assert.Empty(t, empty.Symptoms())
}

func TestLoad_BadSeverity(t *testing.T) {
	for _, raw := range []string{"zero", "0", "-2", "1.5"} {
		cfg := writeCorpus(t, t.TempDir(),
			"Symptom,weight\nheadache,"+raw+"\n",
			"Disease,Symptom_1\nFlu,headache\n",
			"Disease,Description\nFlu,desc\n",
			"Disease,P1\nFlu,rest\n",
		)
		_, err := dataset.Load(cfg)
		assert.ErrorIs(t, err, dataset.ErrBadSeverityValue, "severity %q", raw)
	}
}

func TestLoad_ShortRows(t *testing.T) {
	cfg := writeCorpus(t, t.TempDir(),
		"Symptom,weight\nheadache\n", // missing rating cell
		"Disease,Symptom_1\nFlu,headache\n",
		"Disease,Description\nFlu,desc\n",
		"Disease,P1\nFlu,rest\n",
	)
	_, err := dataset.Load(cfg)
	assert.ErrorIs(t, err, dataset.ErrShortRow)

	cfg = writeCorpus(t, t.TempDir(),
		"Symptom,weight\nheadache,3\n",
		"Disease,Symptom_1\nFlu,headache\n",
		"Disease,Description\nFlu\n", // missing description cell
		"Disease,P1\nFlu,rest\n",
	)
	_, err = dataset.Load(cfg)
	assert.ErrorIs(t, err, dataset.ErrShortRow)
}

func TestLoad_UnknownDiseaseInAdviceFiles(t *testing.T) {
	cfg := writeCorpus(t, t.TempDir(),
		"Symptom,weight\nheadache,3\n",
		"Disease,Symptom_1\nFlu,headache\n",
		"Disease,Description\nCholera,desc\n",
		"Disease,P1\nFlu,rest\n",
	)
	_, err := dataset.Load(cfg)
	assert.ErrorIs(t, err, dataset.ErrUnknownDisease)

	cfg = writeCorpus(t, t.TempDir(),
		"Symptom,weight\nheadache,3\n",
		"Disease,Symptom_1\nFlu,headache\n",
		"Disease,Description\nFlu,desc\n",
		"Disease,P1\nCholera,rest\n",
	)
	_, err = dataset.Load(cfg)
	assert.ErrorIs(t, err, dataset.ErrUnknownDisease)
}

func TestLoad_MissingFileAndConfig(t *testing.T) {
	cfg := dataset.ConfigForDir(t.TempDir()) // no files written
	_, err := dataset.Load(cfg)
	assert.Error(t, err)

	bad := dataset.Config{DatasetPath: "x", DescriptionPath: "y", PrecautionPath: "z"}
	assert.ErrorIs(t, bad.Validate(), dataset.ErrMissingPath)
	assert.ErrorIs(t, dataset.Config{}.Validate(), dataset.ErrMissingPath)
}

func TestConfigForDir(t *testing.T) {
	cfg := dataset.ConfigForDir("data")
	assert.Equal(t, filepath.Join("data", "Symptom-severity.csv"), cfg.SeverityPath)
	assert.Equal(t, filepath.Join("data", "dataset.csv"), cfg.DatasetPath)
	assert.Equal(t, filepath.Join("data", "symptom_Description.csv"), cfg.DescriptionPath)
	assert.Equal(t, filepath.Join("data", "symptom_precaution.csv"), cfg.PrecautionPath)
	assert.NoError(t, cfg.Validate())
}
