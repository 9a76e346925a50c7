package monitor

import "testing"

// TestApplyIterationLine verifies the iteration pattern updates state and
// requests exactly one render.
func TestApplyIterationLine(t *testing.T) {
	state := NewProgressState(100)
	state, render := Apply(state, "Iter 10: Train loss 1.234, It/sec 2.1, Tokens/sec 512.0, Peak mem 4.2")
	if !render {
		t.Fatal("expected render after iteration line")
	}
	if state.CurrentIter != 10 {
		t.Fatalf("expected iter 10, got %d", state.CurrentIter)
	}
	if state.TrainLoss != 1.234 {
		t.Fatalf("expected loss 1.234, got %v", state.TrainLoss)
	}
	if state.ItersPerSec != 2.1 {
		t.Fatalf("expected 2.1 it/s, got %v", state.ItersPerSec)
	}
	if state.TokensPerSec != 512.0 {
		t.Fatalf("expected 512 tok/s, got %v", state.TokensPerSec)
	}
	if state.PeakMemory != 4.2 {
		t.Fatalf("expected 4.2GB peak, got %v", state.PeakMemory)
	}

	state, render = Apply(state, "some unrelated log line")
	if render {
		t.Fatal("expected no render for unmatched line")
	}
	if state.CurrentIter != 10 {
		t.Fatalf("unmatched line changed state: %+v", state)
	}
}

// TestApplyValidationLine verifies the validation pattern.
func TestApplyValidationLine(t *testing.T) {
	state := NewProgressState(100)
	state, render := Apply(state, "Iter 20: Val loss 2.345")
	if !render {
		t.Fatal("expected render after validation line")
	}
	if state.ValLoss == nil || *state.ValLoss != 2.345 {
		t.Fatalf("unexpected val loss: %v", state.ValLoss)
	}
	if state.SeenIter {
		t.Fatal("validation line must not mark an iteration as seen")
	}
}

// TestApplySaveLine verifies save lines set the flag without rendering,
// and the next iteration resets it.
func TestApplySaveLine(t *testing.T) {
	state := NewProgressState(100)
	state, _ = Apply(state, "Iter 10: Train loss 1.0, It/sec 2.0, Tokens/sec 500.0, Peak mem 4.0")

	state, render := Apply(state, "Saved adapter weights to adapters/adapters.safetensors.")
	if render {
		t.Fatal("save-only line must not render")
	}
	if !state.JustSaved {
		t.Fatal("expected save flag set")
	}

	state, render = Apply(state, "Iter 20: Train loss 0.9, It/sec 2.0, Tokens/sec 500.0, Peak mem 4.0")
	if !render {
		t.Fatal("expected render after iteration line")
	}
	if state.JustSaved {
		t.Fatal("expected save flag reset on new iteration")
	}
}

// TestApplyValLossUndefinedUntilObserved verifies the optional semantics.
func TestApplyValLossUndefinedUntilObserved(t *testing.T) {
	state := NewProgressState(100)
	state, _ = Apply(state, "Iter 10: Train loss 1.0, It/sec 2.0, Tokens/sec 500.0, Peak mem 4.0")
	if state.ValLoss != nil {
		t.Fatalf("expected undefined val loss, got %v", *state.ValLoss)
	}
}
