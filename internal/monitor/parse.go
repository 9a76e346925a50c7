package monitor

import (
	"regexp"
	"strconv"
)

// Patterns for the MLX fine-tuning output. Lines matching none of them
// are ignored content, not errors.
var (
	iterPattern = regexp.MustCompile(`Iter (\d+): Train loss ([\d.]+).*It/sec ([\d.]+).*Tokens/sec ([\d.]+).*Peak mem ([\d.]+)`)
	valPattern  = regexp.MustCompile(`Iter \d+: Val loss ([\d.]+)`)
	savePattern = regexp.MustCompile(`Saved adapter weights`)
)

// Apply folds one output line into the state. The returned flag reports
// whether the display should be re-rendered: exactly the lines matching
// the iteration or validation pattern, never save-only or unmatched lines.
func Apply(state ProgressState, line string) (ProgressState, bool) {
	render := false

	if m := iterPattern.FindStringSubmatch(line); m != nil {
		if iter, err := strconv.Atoi(m[1]); err == nil {
			state.CurrentIter = iter
		}
		if loss, ok := parseFloat(m[2]); ok {
			state.TrainLoss = loss
		}
		if its, ok := parseFloat(m[3]); ok {
			state.ItersPerSec = its
		}
		if toks, ok := parseFloat(m[4]); ok {
			state.TokensPerSec = toks
		}
		if mem, ok := parseFloat(m[5]); ok {
			state.PeakMemory = mem
		}
		state.JustSaved = false
		state.SeenIter = true
		render = true
	}

	if m := valPattern.FindStringSubmatch(line); m != nil {
		if loss, ok := parseFloat(m[1]); ok {
			state.ValLoss = &loss
		}
		render = true
	}

	if savePattern.MatchString(line) {
		state.JustSaved = true
	}

	return state, render
}

func parseFloat(text string) (float64, bool) {
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}
