package live

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"globebench/internal/runner"
)

// formatIndex formats a sample index for the table.
func formatIndex(index int) string {
	return "S" + pad2(index+1)
}

// pad2 left-pads a number to two digits when needed.
func pad2(value int) string {
	if value >= 10 {
		return fmtInt(value)
	}
	return "0" + fmtInt(value)
}

// fmtInt converts an int to string.
func fmtInt(value int) string {
	return strconv.Itoa(value)
}

// formatInstruction truncates instruction text for display.
func formatInstruction(text string) string {
	normalized := strings.Join(strings.Fields(text), " ")
	if normalized == "" {
		return ""
	}
	const limit = 60
	if len(normalized) <= limit {
		return normalized
	}
	return normalized[:limit-3] + "..."
}

// formatStatus renders a status string for a row.
func formatStatus(row SampleRow, noColor bool) string {
	text := statusText(row)
	if noColor {
		return text
	}
	return statusStyle(row.Status).Render(text)
}

// statusText renders the primary status text.
func statusText(row SampleRow) string {
	switch row.Status {
	case runner.SampleQueued:
		return "queued"
	case runner.SampleGenerating:
		return "generating"
	case runner.SampleScoring:
		return "scoring"
	case runner.SampleCorrect:
		return "correct"
	case runner.SampleIncorrect:
		return "wrong tool"
	case runner.SampleInvalid:
		return "invalid"
	case runner.SampleError:
		if row.Error != "" {
			return "error: " + row.Error
		}
		return "error"
	default:
		return string(row.Status)
	}
}

// formatCoordError renders a row's coordinate error.
func formatCoordError(value *float64) string {
	if value == nil {
		return ""
	}
	return fmt.Sprintf("%.2f", *value)
}

// formatRowDuration returns elapsed or total time for a row.
func formatRowDuration(row SampleRow, now time.Time) string {
	if !row.FinishedAt.IsZero() && !row.StartedAt.IsZero() {
		return row.FinishedAt.Sub(row.StartedAt).Round(100 * time.Millisecond).String()
	}
	if !row.StartedAt.IsZero() {
		return now.Sub(row.StartedAt).Round(100 * time.Millisecond).String()
	}
	return ""
}

// statusStyle selects a style for a given status.
func statusStyle(status runner.SampleEventType) lipgloss.Style {
	color := lipgloss.Color("244")
	switch status {
	case runner.SampleCorrect:
		color = lipgloss.Color("42")
	case runner.SampleIncorrect:
		color = lipgloss.Color("220")
	case runner.SampleInvalid, runner.SampleError:
		color = lipgloss.Color("196")
	case runner.SampleGenerating:
		color = lipgloss.Color("33")
	case runner.SampleScoring:
		color = lipgloss.Color("201")
	case runner.SampleQueued:
		color = lipgloss.Color("246")
	}
	return lipgloss.NewStyle().Foreground(color)
}
