// Package toolcall recovers structured globe tool-call records from raw
// model output. Generated text routinely wraps the target JSON in chat
// markup, markdown fences, or trailing commentary, so extraction runs a
// ladder of progressively looser strategies and stops at the first success.
package toolcall

import (
	"encoding/json"
	"regexp"
	"strings"
)

// Record is the canonical decoded form of a tool invocation.
type Record struct {
	Tool        string
	ToolPresent bool
	Arguments   map[string]Value
}

var (
	// nestedObjectPattern matches a brace group containing at most one
	// level of nested brace groups.
	nestedObjectPattern = regexp.MustCompile(`\{[^{}]*(?:\{[^{}]*\}[^{}]*)*\}`)
	// looseObjectPattern matches from a "{" to the next "}" non-greedily.
	looseObjectPattern = regexp.MustCompile(`(?s)\{.*?\}`)
)

// strategies is the extraction ladder, most structurally faithful first.
var strategies = []func(string) (Record, bool){
	decodeRecord,
	scanFor(nestedObjectPattern),
	scanFor(looseObjectPattern),
}

// Extract recovers a tool-call record from free-form text. The second
// return value reports whether any strategy produced a record; absence is
// an expected outcome, not an error.
func Extract(text string) (Record, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Record{}, false
	}
	for _, attempt := range strategies {
		if record, ok := attempt(trimmed); ok {
			return record, true
		}
	}
	return Record{}, false
}

// scanFor builds a strategy that tries every pattern match in order of
// appearance and returns the first candidate that decodes.
func scanFor(pattern *regexp.Regexp) func(string) (Record, bool) {
	return func(text string) (Record, bool) {
		for _, candidate := range pattern.FindAllString(text, -1) {
			if record, ok := decodeRecord(candidate); ok {
				return record, true
			}
		}
		return Record{}, false
	}
}

// decodeRecord parses a candidate string as a single JSON document and
// builds a record from it. Only JSON objects qualify; arrays and scalars
// count as extraction failures.
func decodeRecord(candidate string) (Record, bool) {
	var value Value
	if err := json.Unmarshal([]byte(candidate), &value); err != nil {
		return Record{}, false
	}
	object, ok := value.ObjectValue()
	if !ok {
		return Record{}, false
	}
	record := Record{Arguments: map[string]Value{}}
	if tool, found := object["tool"]; found {
		if name, isString := tool.StringValue(); isString {
			record.Tool = name
			record.ToolPresent = true
		}
	}
	if args, found := object["arguments"]; found {
		if fields, isObject := args.ObjectValue(); isObject {
			record.Arguments = fields
		}
	}
	return record, true
}
