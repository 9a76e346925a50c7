package runner

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// Run IDs look like "20250304T050607Z-deadbeef0102". The UTC timestamp
// prefix makes lexical order match creation order, which latest-run
// resolution depends on; the hex suffix disambiguates same-second runs.

// NewRunID mints an identifier for a new evaluation run.
func NewRunID() (string, error) {
	var entropy [6]byte
	if _, err := rand.Read(entropy[:]); err != nil {
		return "", fmt.Errorf("run id entropy: %w", err)
	}
	return FormatRunID(time.Now(), hex.EncodeToString(entropy[:])), nil
}

// FormatRunID joins a timestamp with an entropy suffix.
func FormatRunID(ts time.Time, suffix string) string {
	return ts.UTC().Format("20060102T150405Z") + "-" + suffix
}
