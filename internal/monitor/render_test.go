package monitor

import (
	"bytes"
	"strings"
	"testing"
)

// TestProgressBarZeroTotal verifies the zero-total guard.
func TestProgressBarZeroTotal(t *testing.T) {
	bar := progressBar(5, 0, 10)
	if !strings.Contains(bar, "0.0%") {
		t.Fatalf("expected zero percent, got %q", bar)
	}
	if strings.Contains(bar, "█") {
		t.Fatalf("expected empty bar, got %q", bar)
	}
}

// TestProgressBarProportion verifies fill and percent formatting.
func TestProgressBarProportion(t *testing.T) {
	bar := progressBar(25, 100, 20)
	if got := strings.Count(bar, "█"); got != 5 {
		t.Fatalf("expected 5 filled cells, got %d in %q", got, bar)
	}
	if !strings.Contains(bar, " 25.0%") {
		t.Fatalf("expected 25.0%%, got %q", bar)
	}

	full := progressBar(100, 100, 20)
	if strings.Contains(full, "░") {
		t.Fatalf("expected full bar, got %q", full)
	}
	if !strings.Contains(full, "100.0%") {
		t.Fatalf("expected 100.0%%, got %q", full)
	}
}

// TestProgressBarClampsOverrun verifies iterations past the total stay
// within the bar.
func TestProgressBarClampsOverrun(t *testing.T) {
	bar := progressBar(150, 100, 20)
	if !strings.Contains(bar, "100.0%") {
		t.Fatalf("expected clamp at 100%%, got %q", bar)
	}
}

// TestStatusLineFormats verifies the status line variants.
func TestStatusLineFormats(t *testing.T) {
	state := NewProgressState(200)
	if got := statusLine(state); got != "iter:0/200 | loss:-.--- | 0 tok/s | 0.0GB" {
		t.Fatalf("unexpected initial status: %q", got)
	}

	state, _ = Apply(state, "Iter 10: Train loss 1.234, It/sec 2.1, Tokens/sec 512.0, Peak mem 4.2")
	if got := statusLine(state); got != "iter:10/200 | loss:1.234 | 512 tok/s | 4.2GB" {
		t.Fatalf("unexpected status: %q", got)
	}

	state, _ = Apply(state, "Iter 10: Val loss 2.000")
	if got := statusLine(state); !strings.Contains(got, " | val:2.000 | ") {
		t.Fatalf("expected validation suffix, got %q", got)
	}

	state, _ = Apply(state, "Saved adapter weights.")
	if got := statusLine(state); !strings.Contains(got, saveGlyph) {
		t.Fatalf("expected save glyph, got %q", got)
	}
}

// TestRendererRenderRewritesAnchor verifies the fixed-anchor frame layout.
func TestRendererRenderRewritesAnchor(t *testing.T) {
	var buf bytes.Buffer
	renderer := NewRenderer(&buf, true)
	state := NewProgressState(100)
	state, _ = Apply(state, "Iter 50: Train loss 1.000, It/sec 2.0, Tokens/sec 400.0, Peak mem 3.5")

	renderer.Render(state)
	out := buf.String()
	if !strings.HasPrefix(out, ansiCursorHome) {
		t.Fatal("expected cursor repositioned to home")
	}
	if !strings.Contains(out, "Training") {
		t.Fatal("expected header")
	}
	if !strings.Contains(out, "iter:50/100") {
		t.Fatalf("expected status line, got %q", out)
	}
	if got := strings.Count(out, ansiClearLine); got != 5 {
		t.Fatalf("expected 5 cleared lines, got %d", got)
	}
}

// TestRendererRendersOncePerMatchedLine verifies one-line-in, at most
// one-render-out.
func TestRendererRendersOncePerMatchedLine(t *testing.T) {
	var buf bytes.Buffer
	renderer := NewRenderer(&buf, true)
	state := NewProgressState(100)

	lines := []string{
		"Loading model from checkpoint",
		"Iter 10: Train loss 1.234, It/sec 2.1, Tokens/sec 512.0, Peak mem 4.2",
		"Saved adapter weights.",
		"random noise",
	}
	for _, line := range lines {
		var render bool
		state, render = Apply(state, line)
		if render {
			renderer.Render(state)
		}
	}
	if got := strings.Count(buf.String(), ansiCursorHome); got != 1 {
		t.Fatalf("expected exactly 1 render, got %d", got)
	}
}

// TestRendererFinish verifies the outcome lines.
func TestRendererFinish(t *testing.T) {
	var buf bytes.Buffer
	NewRenderer(&buf, true).Finish(0)
	if !strings.Contains(buf.String(), "✓ Training complete") {
		t.Fatalf("expected success line, got %q", buf.String())
	}

	buf.Reset()
	NewRenderer(&buf, true).Finish(3)
	if !strings.Contains(buf.String(), "✗ Training failed (exit code 3)") {
		t.Fatalf("expected failure line, got %q", buf.String())
	}

	buf.Reset()
	NewRenderer(&buf, true).Interrupted()
	if !strings.Contains(buf.String(), "Training interrupted.") {
		t.Fatalf("expected interrupt line, got %q", buf.String())
	}
}
