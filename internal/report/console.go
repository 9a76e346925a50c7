package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"globebench/internal/runner"
)

// WriteConsole prints a human-readable run summary.
func WriteConsole(w io.Writer, results runner.Results, noColor bool) {
	fmt.Fprintln(w, stylize("Run "+results.RunID, noColor, lipgloss.Color("33")))
	fmt.Fprintf(w, "Model %s at %s | dataset %s (%d samples)\n",
		results.Model.Name, results.Model.Endpoint, results.Dataset.Path, results.Dataset.Samples)
	fmt.Fprintln(w)

	summary := results.Summary
	fmt.Fprintf(w, "Tool accuracy:  %s\n", stylize(formatPercent(summary.ToolAccuracy), noColor, rateColor(summary.ToolAccuracy)))
	fmt.Fprintf(w, "Valid outputs:  %s\n", stylize(formatPercent(summary.OutputValidRate), noColor, rateColor(summary.OutputValidRate)))
	fmt.Fprintf(w, "Exact matches:  %s\n", stylize(formatPercent(summary.ExactMatchRate), noColor, rateColor(summary.ExactMatchRate)))
	fmt.Fprintf(w, "Avg coord err:  %s\n", formatCoordError(summary.AvgCoordError))
	fmt.Fprintln(w)

	if len(results.PerTool) > 0 {
		fmt.Fprintln(w, perToolTable(results, noColor))
	}
}

func perToolTable(results runner.Results, noColor bool) string {
	headerStyle := lipgloss.NewStyle().Bold(true)
	if noColor {
		headerStyle = lipgloss.NewStyle()
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return lipgloss.NewStyle()
		}).
		Headers("TOOL", "CORRECT", "ACCURACY")
	for _, tool := range sortedTools(results.PerTool) {
		stats := results.PerTool[tool]
		t.Row(tool, formatRatio(stats.Correct, stats.Total), formatPercent(stats.Accuracy))
	}
	return t.Render()
}

func rateColor(rate float64) lipgloss.Color {
	switch {
	case rate >= 0.9:
		return lipgloss.Color("34")
	case rate >= 0.5:
		return lipgloss.Color("178")
	default:
		return lipgloss.Color("160")
	}
}

func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
