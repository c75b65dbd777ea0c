package main

import (
	"github.com/spf13/cobra"
)

var (
	configPath string
	dataDir    string
	logLevel   string
	httpAddr   string
	topResults int
	withAdvice bool

	rootCmd = &cobra.Command{
		Use:   "diagraph",
		Short: "Symptom checker built on a weighted symptom-disease graph",
		Long: `diagraph loads a CSV corpus of diseases, symptoms, and severities,
assembles a weighted undirected graph from it, and ranks likely diseases
for a set of reported symptoms. It can answer one-shot questions, serve
a REST API, or run an interactive terminal session.`,
	}

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Serve the diagnosis API over HTTP",
		Run:   runServe, // Defined in cmd_serve.go
	}

	diagnoseCmd = &cobra.Command{
		Use:   "diagnose [symptom...]",
		Short: "Score the given symptoms once and print the ranking",
		Args:  cobra.MinimumNArgs(1),
		Run:   runDiagnose, // Defined in cmd_diagnose.go
	}

	tuiCmd = &cobra.Command{
		Use:   "tui",
		Short: "Start the interactive terminal session",
		Run:   runTUI, // Defined in cmd_tui.go
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to the YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "", "directory holding the CSV corpus (overrides config)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)")

	serveCmd.Flags().StringVar(&httpAddr, "addr", "", "listen address (overrides config)")
	diagnoseCmd.Flags().IntVar(&topResults, "top", 0, "show only the N strongest diseases (0 = all)")
	diagnoseCmd.Flags().BoolVar(&withAdvice, "advice", false, "print description and precautions per disease")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(diagnoseCmd)
	rootCmd.AddCommand(tuiCmd)
}
