package monitor

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

const (
	ansiClearScreen = "\x1b[2J"
	ansiCursorHome  = "\x1b[H"
	ansiClearLine   = "\x1b[K"

	defaultTermWidth = 80
	maxBarWidth      = 50
	saveGlyph        = " \U0001F4BE"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	failureStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
)

// Renderer owns the fixed-anchor terminal display for one monitored run.
// It repositions the cursor to the top of the screen and rewrites the same
// lines on every render, so the display never scrolls or flickers.
type Renderer struct {
	out     io.Writer
	width   func() int
	noColor bool
}

// NewRenderer builds a renderer writing to out. Width is probed per render
// so resizes between iterations are picked up.
func NewRenderer(out io.Writer, noColor bool) *Renderer {
	return &Renderer{
		out:     out,
		width:   func() int { return probeWidth(out) },
		noColor: noColor,
	}
}

// Begin clears the screen and draws the initial zero-progress frame.
func (r *Renderer) Begin(state ProgressState) {
	fmt.Fprint(r.out, ansiClearScreen)
	r.Render(state)
}

// Render repositions to the anchor and rewrites the header, status line
// and progress bar for the current state.
func (r *Renderer) Render(state ProgressState) {
	width := r.width()
	fmt.Fprint(r.out, ansiCursorHome)
	fmt.Fprintln(r.out, ansiClearLine+r.styled(headerStyle, "Training"))
	fmt.Fprintln(r.out, ansiClearLine)
	fmt.Fprintln(r.out, ansiClearLine+truncate(statusLine(state), width))
	fmt.Fprintln(r.out, ansiClearLine+progressBar(state.CurrentIter, state.TotalIters, barWidth(width)))
	fmt.Fprintln(r.out, ansiClearLine)
}

// Finish moves below the display and prints the terminal outcome line.
func (r *Renderer) Finish(exitCode int) {
	fmt.Fprint(r.out, "\n\n")
	if exitCode == 0 {
		fmt.Fprintln(r.out, r.styled(successStyle, "✓ Training complete"))
		return
	}
	fmt.Fprintln(r.out, r.styled(failureStyle, fmt.Sprintf("✗ Training failed (exit code %d)", exitCode)))
}

// Interrupted prints the operator-interrupt outcome line.
func (r *Renderer) Interrupted() {
	fmt.Fprint(r.out, "\n\n")
	fmt.Fprintln(r.out, r.styled(failureStyle, "Training interrupted."))
}

func (r *Renderer) styled(style lipgloss.Style, text string) string {
	if r.noColor {
		return text
	}
	return style.Render(text)
}

// statusLine formats the one-line training status. The validation suffix
// appears only once a validation loss has been observed; the save glyph
// only while the latest iteration's weights are saved.
func statusLine(state ProgressState) string {
	if !state.SeenIter && state.ValLoss == nil {
		return fmt.Sprintf("iter:0/%d | loss:-.--- | 0 tok/s | 0.0GB", state.TotalIters)
	}
	val := ""
	if state.ValLoss != nil {
		val = fmt.Sprintf(" | val:%.3f", *state.ValLoss)
	}
	saved := ""
	if state.JustSaved {
		saved = saveGlyph
	}
	return fmt.Sprintf("iter:%d/%d | loss:%.3f%s | %.0f tok/s | %.1fGB%s",
		state.CurrentIter, state.TotalIters, state.TrainLoss, val, state.TokensPerSec, state.PeakMemory, saved)
}

// progressBar renders a fixed-width proportional bar. A zero total renders
// an empty bar instead of dividing by zero.
func progressBar(current, total, width int) string {
	if width < 1 {
		width = 1
	}
	if total <= 0 {
		return "[" + strings.Repeat("░", width) + "]   0.0%"
	}
	if current < 0 {
		current = 0
	}
	if current > total {
		current = total
	}
	filled := width * current / total
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	percent := float64(current) / float64(total) * 100
	return fmt.Sprintf("[%s] %5.1f%%", bar, percent)
}

func barWidth(termWidth int) int {
	width := termWidth - 20
	if width > maxBarWidth {
		width = maxBarWidth
	}
	if width < 10 {
		width = 10
	}
	return width
}

func truncate(text string, width int) string {
	if width <= 2 || len(text) <= width-2 {
		return text
	}
	return text[:width-5] + "..."
}

func probeWidth(out io.Writer) int {
	if file, ok := out.(*os.File); ok {
		if width, _, err := term.GetSize(int(file.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return defaultTermWidth
}
