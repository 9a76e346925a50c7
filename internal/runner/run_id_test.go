package runner

import (
	"regexp"
	"strings"
	"testing"
	"time"
)

// TestFormatRunID verifies the timestamp + entropy layout.
func TestFormatRunID(t *testing.T) {
	ts := time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC)
	if got := FormatRunID(ts, "deadbeef0102"); got != "20250304T050607Z-deadbeef0102" {
		t.Fatalf("unexpected run id: %s", got)
	}
}

// TestNewRunIDShape verifies freshly minted IDs match the layout and
// differ from each other.
func TestNewRunIDShape(t *testing.T) {
	pattern := regexp.MustCompile(`^\d{8}T\d{6}Z-[0-9a-f]{12}$`)
	first, err := NewRunID()
	if err != nil {
		t.Fatalf("new run id: %v", err)
	}
	second, err := NewRunID()
	if err != nil {
		t.Fatalf("new run id: %v", err)
	}
	if !pattern.MatchString(first) {
		t.Fatalf("run id %q does not match layout", first)
	}
	if first == second {
		t.Fatalf("expected distinct run ids, got %q twice", first)
	}
}

// TestRunIDsSortChronologically verifies lexical order tracks time even
// when the entropy suffixes sort the other way.
func TestRunIDsSortChronologically(t *testing.T) {
	earlier := FormatRunID(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), "ffffffffffff")
	later := FormatRunID(time.Date(2025, 1, 1, 0, 0, 1, 0, time.UTC), "000000000000")
	if strings.Compare(earlier, later) >= 0 {
		t.Fatalf("expected %s < %s", earlier, later)
	}
}
