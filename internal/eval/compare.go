package eval

import (
	"math"
	"strings"

	"globebench/internal/toolcall"
)

// Compare scores a predicted model output against the expected ground
// truth. Every failure mode degrades locally: unparseable text, missing
// fields, and coercion failures reduce individual signals but never abort
// the sample.
func Compare(instruction, expected, predicted string) Sample {
	expectedRecord, expectedOK := toolcall.Extract(expected)
	predictedRecord, predictedOK := toolcall.Extract(predicted)

	sample := Sample{
		Instruction: instruction,
		Expected:    expected,
		Predicted:   predicted,
		OutputValid: predictedOK,
		ExactMatch:  strings.TrimSpace(expected) == strings.TrimSpace(predicted),
	}
	if expectedOK && predictedOK {
		sample.ToolMatch = expectedRecord.ToolPresent == predictedRecord.ToolPresent &&
			expectedRecord.Tool == predictedRecord.Tool
		sample.CoordError = coordinateError(expectedRecord, predictedRecord)
	}
	return sample
}

// coordinateError computes the Euclidean distance in degrees between the
// expected and predicted longitude/latitude arguments. The expected side
// must expose both coordinates as coercible numbers or the error is
// absent; defaulting the ground truth would fabricate it. The predicted
// side defaults missing or non-coercible components to 0.0 so a wrong or
// dropped prediction is penalized with distance rather than excluded.
func coordinateError(expected, predicted toolcall.Record) *float64 {
	expLon, ok := coerceArgument(expected.Arguments, "longitude")
	if !ok {
		return nil
	}
	expLat, ok := coerceArgument(expected.Arguments, "latitude")
	if !ok {
		return nil
	}
	predLon, _ := coerceArgument(predicted.Arguments, "longitude")
	predLat, _ := coerceArgument(predicted.Arguments, "latitude")
	distance := math.Hypot(expLon-predLon, expLat-predLat)
	return &distance
}

// coerceArgument looks up an argument and coerces it to a float. Missing
// keys and non-numeric values report false with a zero value.
func coerceArgument(arguments map[string]toolcall.Value, key string) (float64, bool) {
	value, found := arguments[key]
	if !found {
		return 0, false
	}
	return value.Float()
}
