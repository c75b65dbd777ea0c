package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/katalvlaran/diagraph/core"
	"github.com/katalvlaran/diagraph/dataset"
)

// Run starts the interactive session and blocks until the user quits.
func Run(graph *core.Graph, rules *dataset.Ruleset, config Config) error {
	program := tea.NewProgram(New(graph, rules, config), tea.WithAltScreen())
	_, err := program.Run()
	return err
}
