package main

import (
	"log"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/diagraph/internal/tui"
)

// runTUI loads the corpus and hands control to the interactive session.
func runTUI(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("load configuration: %v", err)
	}

	// The event loop owns the terminal; keep structured logs out of it.
	logger := zap.NewNop()

	graph, rules, err := loadEngine(cfg, logger)
	if err != nil {
		log.Fatalf("load corpus: %v", err)
	}

	if err := tui.Run(graph, rules, tui.DefaultConfig()); err != nil {
		log.Fatalf("terminal session: %v", err)
	}
}
