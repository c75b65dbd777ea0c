package main

import (
	"fmt"
	"log"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/diagraph/diagnose"
)

// runDiagnose scores the symptoms given as arguments and prints the
// ranked distribution to stdout.
func runDiagnose(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("load configuration: %v", err)
	}

	logger, err := cfg.Log.NewLogger()
	if err != nil {
		log.Fatalf("build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	graph, rules, err := loadEngine(cfg, logger)
	if err != nil {
		logger.Fatal("load corpus", zap.Error(err))
	}

	scores, err := diagnose.Scores(graph, args)
	if err != nil {
		logger.Fatal("diagnosis failed", zap.Error(err))
	}
	if len(scores) == 0 {
		fmt.Println("no disease matches this combination of symptoms")
		return
	}

	type row struct {
		disease string
		pct     float64
	}
	rows := make([]row, 0, len(scores))
	for disease, pct := range scores {
		rows = append(rows, row{disease, pct})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].pct != rows[j].pct {
			return rows[i].pct > rows[j].pct
		}
		return rows[i].disease < rows[j].disease
	})
	if n := cfg.Diagnose.TopN; n > 0 && len(rows) > n {
		rows = rows[:n]
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DISEASE\tLIKELIHOOD")
	for _, r := range rows {
		fmt.Fprintf(w, "%s\t%.2f%%\n", r.disease, r.pct)
	}
	w.Flush()

	if !withAdvice {
		return
	}
	for _, r := range rows {
		record, ok := rules.Disease(r.disease)
		if !ok || len(record.Advice) == 0 {
			continue
		}
		fmt.Printf("\n%s:\n", r.disease)
		for _, line := range record.Advice {
			fmt.Printf("  - %s\n", line)
		}
	}
}
