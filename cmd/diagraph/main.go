package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/katalvlaran/diagraph/builder"
	"github.com/katalvlaran/diagraph/core"
	"github.com/katalvlaran/diagraph/dataset"
	"github.com/katalvlaran/diagraph/internal/config"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig merges the configuration sources with the global CLI flags.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, err
	}
	if dataDir != "" {
		cfg.Data.Dir = dataDir
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if httpAddr != "" {
		cfg.HTTP.Addr = httpAddr
	}
	if topResults > 0 {
		cfg.Diagnose.TopN = topResults
	}
	return cfg, nil
}

// loadEngine ingests the corpus and assembles the diagnosis graph.
func loadEngine(cfg config.Config, logger *zap.Logger) (*core.Graph, *dataset.Ruleset, error) {
	rules, err := dataset.Load(cfg.Data.DatasetConfig())
	if err != nil {
		return nil, nil, err
	}

	graph, err := builder.Build(rules.Severity, rules.Diseases)
	if err != nil {
		return nil, nil, err
	}

	logger.Info("diagnosis graph assembled",
		zap.Int("vertices", graph.VertexCount()),
		zap.Int("edges", graph.EdgeCount()),
		zap.Int("diseases", len(rules.Diseases)),
	)
	return graph, rules, nil
}
