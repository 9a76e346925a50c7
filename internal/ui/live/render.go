package live

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

const (
	headerColor  = lipgloss.Color("33")
	summaryColor = lipgloss.Color("242")
	datasetColor = lipgloss.Color("240")
	footerColor  = lipgloss.Color("244")
)

// renderHeader shows run identity and, while running, elapsed time.
func renderHeader(state State, now time.Time, noColor bool) string {
	parts := []string{"Run " + state.RunID}
	if state.Model != "" {
		parts = append(parts, "Model: "+state.Model)
	}
	if !state.StartedAt.IsZero() && !state.Finished {
		parts = append(parts, "Elapsed: "+now.Sub(state.StartedAt).Round(100*time.Millisecond).String())
	}
	return stylize(strings.Join(parts, " | "), noColor, headerColor)
}

// renderSummary shows the status counts line.
func renderSummary(state State, noColor bool) string {
	counts := state.Counts
	fields := []struct {
		label string
		value int
	}{
		{"Queued", counts.Queued},
		{"Generating", counts.Generating},
		{"Scoring", counts.Scoring},
		{"Done", counts.Done},
		{"Correct", counts.Correct},
		{"WrongTool", counts.Incorrect},
		{"Invalid", counts.Invalid},
		{"Error", counts.Errors},
	}
	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field.label+": "+fmtInt(field.value))
	}
	return stylize(strings.Join(parts, " "), noColor, summaryColor)
}

// renderDatasetLine shows which test set is being scored.
func renderDatasetLine(state State, noColor bool) string {
	if state.DatasetPath == "" {
		return ""
	}
	line := "Dataset " + state.DatasetPath
	if state.Total > 0 {
		line += " | " + fmtInt(state.Total) + " samples"
	}
	return stylize(line, noColor, datasetColor)
}

// renderFooter shows the most recent sample event.
func renderFooter(state State, noColor bool) string {
	if state.LastEvent == "" {
		return ""
	}
	return stylize("Last event: "+state.LastEvent, noColor, footerColor)
}

func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
