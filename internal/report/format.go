// Package report renders evaluation results for the console and as HTML.
package report

import "fmt"

// formatPercent returns a percentage string for report output.
func formatPercent(rate float64) string {
	return fmt.Sprintf("%.1f%%", rate*100)
}

// formatCoordError renders an optional coordinate error.
func formatCoordError(value *float64) string {
	if value == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.4f", *value)
}

// formatRatio renders a correct/total pair.
func formatRatio(correct, total int) string {
	return fmt.Sprintf("%d/%d", correct, total)
}
