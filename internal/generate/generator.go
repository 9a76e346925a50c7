// Package generate invokes the model under evaluation. Generation is an
// external capability: given an instruction it returns raw text which must
// never be assumed to contain valid structured output.
package generate

import "context"

// systemPrompt frames the instruction the same way the fine-tuning data
// does, so evaluation measures the deployed prompt format.
const systemPrompt = "You are an AI assistant that controls CesiumJS. " +
	"Convert natural language commands into JSON tool calls."

// Generator produces raw model output for an instruction.
type Generator interface {
	// Generate returns the model's raw text for the instruction. The
	// text may contain arbitrary content around, or instead of, the
	// requested tool call.
	Generate(ctx context.Context, instruction string) (string, error)
}
