package report

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/a-h/templ"

	"globebench/internal/runner"
)

const maxReportExamples = 50

// RunReportPage builds the single-run HTML report component.
func RunReportPage(results runner.Results) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := writeHeader(w, results); err != nil {
			return err
		}
		if err := writeSummaryTable(w, results); err != nil {
			return err
		}
		if err := writePerToolTable(w, results); err != nil {
			return err
		}
		if err := writeExamplesTable(w, results); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</body></html>\n")
		return err
	})
}

// RenderHTML renders the single-run report into a string.
func RenderHTML(ctx context.Context, results runner.Results) (string, error) {
	var builder strings.Builder
	if err := RunReportPage(results).Render(ctx, &builder); err != nil {
		return "", err
	}
	return builder.String(), nil
}

func writeHeader(w io.Writer, results runner.Results) error {
	_, err := fmt.Fprintf(w,
		`<!doctype html><html><head><meta charset="utf-8"><title>Globebench Report %[1]s</title>`+
			`<style>body{font-family:sans-serif;margin:2rem}table{border-collapse:collapse;margin-bottom:1.5rem}`+
			`td,th{border:1px solid #ccc;padding:0.3rem 0.6rem;text-align:left}th{background:#f0f0f0}`+
			`.bad{background:#fdd}.good{background:#dfd}</style></head><body>`+
			`<h1>Run %[1]s</h1><p>Model %[2]s at %[3]s &middot; dataset %[4]s (%[5]d samples)</p>`,
		templ.EscapeString(results.RunID),
		templ.EscapeString(results.Model.Name),
		templ.EscapeString(results.Model.Endpoint),
		templ.EscapeString(results.Dataset.Path),
		results.Dataset.Samples,
	)
	return err
}

func writeSummaryTable(w io.Writer, results runner.Results) error {
	summary := results.Summary
	_, err := fmt.Fprintf(w,
		`<h2>Summary</h2><table><tr><th>Samples</th><th>Tool accuracy</th><th>Valid outputs</th>`+
			`<th>Exact matches</th><th>Avg coord error</th></tr>`+
			`<tr><td>%d</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr></table>`,
		summary.Total,
		formatPercent(summary.ToolAccuracy),
		formatPercent(summary.OutputValidRate),
		formatPercent(summary.ExactMatchRate),
		templ.EscapeString(formatCoordError(summary.AvgCoordError)),
	)
	return err
}

func writePerToolTable(w io.Writer, results runner.Results) error {
	if _, err := io.WriteString(w, `<h2>Per tool</h2><table><tr><th>Tool</th><th>Correct</th><th>Accuracy</th></tr>`); err != nil {
		return err
	}
	for _, tool := range sortedTools(results.PerTool) {
		stats := results.PerTool[tool]
		if _, err := fmt.Fprintf(w, `<tr><td>%s</td><td>%s</td><td>%s</td></tr>`,
			templ.EscapeString(tool),
			formatRatio(stats.Correct, stats.Total),
			formatPercent(stats.Accuracy),
		); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</table>")
	return err
}

func writeExamplesTable(w io.Writer, results runner.Results) error {
	if _, err := io.WriteString(w,
		`<h2>Examples</h2><table><tr><th>#</th><th>Instruction</th><th>Expected</th>`+
			`<th>Predicted</th><th>Tool</th><th>Coord error</th></tr>`); err != nil {
		return err
	}
	for idx, example := range results.Examples {
		if idx >= maxReportExamples {
			break
		}
		class := "bad"
		verdict := "miss"
		if example.ToolMatch {
			class = "good"
			verdict = "match"
		}
		if _, err := fmt.Fprintf(w,
			`<tr class="%s"><td>%d</td><td>%s</td><td><code>%s</code></td><td><code>%s</code></td><td>%s</td><td>%s</td></tr>`,
			class,
			idx+1,
			templ.EscapeString(example.Instruction),
			templ.EscapeString(example.Expected),
			templ.EscapeString(example.Predicted),
			verdict,
			templ.EscapeString(formatCoordError(example.CoordError)),
		); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</table>")
	return err
}

func sortedTools(perTool map[string]runner.ToolReport) []string {
	tools := make([]string, 0, len(perTool))
	for tool := range perTool {
		tools = append(tools, tool)
	}
	sort.Strings(tools)
	return tools
}
