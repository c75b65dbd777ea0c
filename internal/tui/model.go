// Package tui provides the interactive terminal front end: filter the
// symptom vocabulary, toggle a selection, and read the scored diagnosis
// with its advisory text.
//
// The model is single-threaded inside the bubbletea event loop; do not
// touch it from other goroutines.
package tui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/katalvlaran/diagraph/core"
	"github.com/katalvlaran/diagraph/dataset"
	"github.com/katalvlaran/diagraph/diagnose"
)

// mode selects which pane the model renders.
type mode int

const (
	// modeSelect shows the symptom picker.
	modeSelect mode = iota

	// modeResults shows the scored diagnosis.
	modeResults
)

// Result is one scored disease with its advisory text, ready to render.
type Result struct {
	Disease    string
	Likelihood float64
	Advice     []string
}

// Config controls the TUI dimensions before the terminal reports its own.
type Config struct {
	// Width overrides terminal width (0 = wait for the terminal).
	Width int

	// Height overrides terminal height (0 = wait for the terminal).
	Height int
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{Width: 80, Height: 24}
}

// Model is the bubbletea model of the diagnosis session.
type Model struct {
	graph  *core.Graph
	rules  *dataset.Ruleset
	config Config

	search   textinput.Model
	viewport viewport.Model

	vocabulary []string
	filtered   []string
	cursor     int

	selected      map[string]bool
	selectedOrder []string

	results []Result
	mode    mode
	errText string

	width    int
	height   int
	ready    bool
	quitting bool
}

// New builds a Model over a diagnosis graph and its ruleset. The symptom
// vocabulary comes from the ruleset in severity-file order; entries no
// disease references are still offered and fail softly at diagnosis time.
func New(graph *core.Graph, rules *dataset.Ruleset, config Config) Model {
	search := textinput.New()
	search.Prompt = "filter> "
	search.Placeholder = "type to filter symptoms"
	search.CharLimit = 64
	search.Focus()

	var vocabulary []string
	if rules != nil {
		vocabulary = rules.Symptoms()
	}

	return Model{
		graph:      graph,
		rules:      rules,
		config:     config,
		search:     search,
		vocabulary: vocabulary,
		filtered:   vocabulary,
		selected:   make(map[string]bool),
		width:      config.Width,
		height:     config.Height,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeViewport()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey routes one key press to the active pane.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit

	case tea.KeyCtrlR:
		m.reset()
		return m, nil

	case tea.KeyCtrlD:
		m.runDiagnosis()
		return m, nil

	case tea.KeyEsc:
		if m.mode == modeResults {
			m.mode = modeSelect
			return m, nil
		}
		if m.search.Value() != "" {
			m.search.SetValue("")
			m.refilter()
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	}

	if m.mode == modeResults {
		return m.handleResultsKey(msg)
	}
	return m.handleSelectKey(msg)
}

// handleSelectKey edits the filter, moves the cursor, and toggles symptoms.
func (m Model) handleSelectKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyUp:
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case tea.KeyDown:
		if m.cursor < len(m.filtered)-1 {
			m.cursor++
		}
		return m, nil

	case tea.KeyEnter:
		if m.cursor < len(m.filtered) {
			m.toggle(m.filtered[m.cursor])
			m.errText = ""
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.refilter()
	return m, cmd
}

// handleResultsKey scrolls the results pane.
func (m Model) handleResultsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyUp:
		m.viewport.LineUp(1)
	case tea.KeyDown:
		m.viewport.LineDown(1)
	case tea.KeyPgUp:
		m.viewport.HalfViewUp()
	case tea.KeyPgDown:
		m.viewport.HalfViewDown()
	case tea.KeyEnter:
		m.mode = modeSelect
	}
	return m, nil
}

// toggle flips a symptom in and out of the selection, keeping selection
// order for the scorer.
func (m *Model) toggle(name string) {
	if m.selected[name] {
		delete(m.selected, name)
		for i, s := range m.selectedOrder {
			if s == name {
				m.selectedOrder = append(m.selectedOrder[:i], m.selectedOrder[i+1:]...)
				break
			}
		}
		return
	}
	m.selected[name] = true
	m.selectedOrder = append(m.selectedOrder, name)
}

// reset clears the selection, the filter, and any previous diagnosis.
func (m *Model) reset() {
	m.selected = make(map[string]bool)
	m.selectedOrder = nil
	m.results = nil
	m.errText = ""
	m.mode = modeSelect
	m.search.SetValue("")
	m.refilter()
}

// runDiagnosis scores the current selection and switches to the results
// pane on success.
func (m *Model) runDiagnosis() {
	if len(m.selectedOrder) == 0 {
		m.errText = "select at least one symptom"
		return
	}

	scores, err := diagnose.Scores(m.graph, m.selectedOrder)
	if err != nil {
		m.errText = err.Error()
		return
	}
	if len(scores) == 0 {
		m.errText = "no disease matches this combination"
		return
	}

	m.results = buildResults(scores, m.rules)
	m.errText = ""
	m.mode = modeResults
	m.resizeViewport()
	m.viewport.SetContent(m.renderResults())
	m.viewport.GotoTop()
}

// refilter narrows the vocabulary by the search text and clamps the cursor.
func (m *Model) refilter() {
	query := strings.ToLower(strings.TrimSpace(m.search.Value()))
	if query == "" {
		m.filtered = m.vocabulary
	} else {
		filtered := make([]string, 0, len(m.vocabulary))
		for _, name := range m.vocabulary {
			if strings.Contains(strings.ToLower(name), query) {
				filtered = append(filtered, name)
			}
		}
		m.filtered = filtered
	}

	if m.cursor >= len(m.filtered) {
		m.cursor = len(m.filtered) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// resizeViewport fits the results pane between header and footer.
func (m *Model) resizeViewport() {
	headerHeight := 3
	footerHeight := 2
	height := m.height - headerHeight - footerHeight
	if height < 1 {
		height = 1
	}

	if !m.ready {
		m.viewport = viewport.New(m.width, height)
		m.ready = true
		return
	}
	m.viewport.Width = m.width
	m.viewport.Height = height
}

// buildResults joins scores with disease records, strongest first, ties
// by name.
func buildResults(scores diagnose.ScoreMap, rules *dataset.Ruleset) []Result {
	results := make([]Result, 0, len(scores))
	for name, pct := range scores {
		result := Result{Disease: name, Likelihood: pct}
		if rules != nil {
			if record, ok := rules.Disease(name); ok {
				result.Advice = record.Advice
			}
		}
		results = append(results, result)
	}
	sort.Slice(results, func(i, j int) bool {
		if results[i].Likelihood != results[j].Likelihood {
			return results[i].Likelihood > results[j].Likelihood
		}
		return results[i].Disease < results[j].Disease
	})
	return results
}
