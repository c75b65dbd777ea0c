package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Bold(true)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	scoreStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("75")).
			Bold(true)

	adviceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// listHeight is how many symptom rows the picker shows at once.
const listHeight = 12

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return "Bye.\n"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("diagraph · symptom checker"))
	b.WriteString("\n\n")

	if m.mode == modeResults {
		b.WriteString(m.viewport.View())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter/esc back · ctrl+r reset · ctrl+c quit"))
		return b.String()
	}

	b.WriteString(m.search.View())
	b.WriteString("\n\n")
	b.WriteString(m.renderPicker())
	b.WriteString("\n")
	b.WriteString(m.renderSelection())

	if m.errText != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errText))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ move · enter toggle · ctrl+d diagnose · ctrl+r reset · ctrl+c quit"))
	return b.String()
}

// renderPicker shows a window of the filtered vocabulary around the cursor.
func (m Model) renderPicker() string {
	if len(m.filtered) == 0 {
		return countStyle.Render("no symptom matches the filter")
	}

	start := 0
	if m.cursor >= listHeight {
		start = m.cursor - listHeight + 1
	}
	end := start + listHeight
	if end > len(m.filtered) {
		end = len(m.filtered)
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		name := m.filtered[i]

		marker := "[ ]"
		if m.selected[name] {
			marker = selectedStyle.Render("[x]")
		}

		line := fmt.Sprintf("%s %s", marker, name)
		if i == m.cursor {
			line = cursorStyle.Render("> ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString(countStyle.Render(fmt.Sprintf("%d of %d symptoms", len(m.filtered), len(m.vocabulary))))
	return b.String()
}

// renderSelection lists the chosen symptoms in selection order.
func (m Model) renderSelection() string {
	if len(m.selectedOrder) == 0 {
		return countStyle.Render("nothing selected")
	}
	return selectedStyle.Render("selected: ") + strings.Join(m.selectedOrder, ", ")
}

// renderResults formats the scored diseases for the viewport.
func (m Model) renderResults() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("diagnosis for: %s\n\n", strings.Join(m.selectedOrder, ", ")))

	for i, r := range m.results {
		b.WriteString(scoreStyle.Render(fmt.Sprintf("%2d. %s · %.2f%%", i+1, r.Disease, r.Likelihood)))
		b.WriteString("\n")
		for _, line := range r.Advice {
			b.WriteString(adviceStyle.Render("    • " + line))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}
