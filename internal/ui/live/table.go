package live

import (
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// tableStyles returns table styles for the UI.
func tableStyles(noColor bool) table.Styles {
	if noColor {
		return table.DefaultStyles()
	}
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Foreground(lipgloss.Color("252"))
	return styles
}

// defaultColumns returns the initial table layout.
func defaultColumns() []table.Column {
	return columnsForWidth(100)
}

// columnsForWidth sizes columns to the available terminal width.
func columnsForWidth(width int) []table.Column {
	const fixed = 5 + 14 + 9 + 9
	instruction := width - fixed - 10
	if instruction < 20 {
		instruction = 20
	}
	if instruction > 60 {
		instruction = 60
	}
	return []table.Column{
		{Title: "#", Width: 5},
		{Title: "Instruction", Width: instruction},
		{Title: "Status", Width: 14},
		{Title: "CoordErr", Width: 9},
		{Title: "Elapsed", Width: 9},
	}
}

// rowsForState converts UI state into table rows.
func rowsForState(state State, now time.Time, noColor bool) []table.Row {
	rows := make([]table.Row, 0, len(state.Rows))
	for _, row := range state.Rows {
		rows = append(rows, table.Row{
			formatIndex(row.Index),
			formatInstruction(row.Instruction),
			formatStatus(row, noColor),
			formatCoordError(row.CoordError),
			formatRowDuration(row, now),
		})
	}
	return rows
}
