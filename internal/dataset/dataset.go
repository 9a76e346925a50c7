// Package dataset loads evaluation test sets. A test set is a JSONL file
// with one {"instruction", "output"} object per line, the format the
// fine-tuning pipeline emits for held-out splits.
package dataset

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Sample pairs a natural-language instruction with its expected tool-call
// text. Both strings are opaque to the loader and preserved verbatim.
type Sample struct {
	Instruction string `json:"instruction"`
	Output      string `json:"output"`
}

// Load reads a JSONL test set. Blank lines are skipped; any other
// malformed line fails the load with its line number.
func Load(path string) ([]Sample, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open test set: %w", err)
	}
	defer func() { _ = file.Close() }()

	var samples []Sample
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		sample, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("parse test set line %d: %w", lineNo, err)
		}
		samples = append(samples, sample)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read test set: %w", err)
	}
	return samples, nil
}

// Truncate limits a loaded test set to at most max samples. A non-positive
// max leaves the set unchanged.
func Truncate(samples []Sample, max int) []Sample {
	if max <= 0 || max >= len(samples) {
		return samples
	}
	return samples[:max]
}

func parseLine(line string) (Sample, error) {
	var sample Sample
	decoder := json.NewDecoder(bytes.NewReader([]byte(line)))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&sample); err != nil {
		return Sample{}, err
	}
	if strings.TrimSpace(sample.Instruction) == "" {
		return Sample{}, fmt.Errorf("missing instruction")
	}
	if strings.TrimSpace(sample.Output) == "" {
		return Sample{}, fmt.Errorf("missing output")
	}
	return sample, nil
}
