package generate

import (
	"context"
	"fmt"
	"sync"
)

// Replay returns canned outputs keyed by instruction. It backs offline
// evaluation of recorded generations and the test suite.
type Replay struct {
	mu      sync.Mutex
	outputs map[string]string
	calls   int
}

// NewReplay builds a replay generator over an instruction → output map.
func NewReplay(outputs map[string]string) *Replay {
	return &Replay{outputs: outputs}
}

// Generate returns the recorded output for the instruction.
func (r *Replay) Generate(_ context.Context, instruction string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	output, ok := r.outputs[instruction]
	if !ok {
		return "", fmt.Errorf("no recorded output for instruction %q", instruction)
	}
	return output, nil
}

// Calls reports how many generations were requested.
func (r *Replay) Calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}
