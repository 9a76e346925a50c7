package runner

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

type verboseStyle int

const (
	styleDefault verboseStyle = iota
	styleSample
	styleMetrics
	styleError
)

const (
	sgrReset   = "\x1b[0m"
	sgrLabel   = "\x1b[2m\x1b[90m" // dim gray, used for the line prefix
	sgrSample  = "\x1b[1m\x1b[34m"
	sgrMetrics = "\x1b[1m\x1b[32m"
	sgrError   = "\x1b[1m\x1b[31m"
)

var styleCodes = map[verboseStyle]string{
	styleSample:  sgrSample,
	styleMetrics: sgrMetrics,
	styleError:   sgrError,
}

// verboseOutput writes styled diagnostic lines during a run. A zero value
// (nil writer) discards everything.
type verboseOutput struct {
	writer  io.Writer
	noColor bool
}

func (v verboseOutput) logf(enabled bool, style verboseStyle, format string, args ...any) {
	if !enabled || v.writer == nil {
		return
	}
	line := fmt.Sprintf(format, args...)
	if v.noColor || !writerSupportsColor(v.writer) {
		fmt.Fprintf(v.writer, "[verbose] %s\n", line)
		return
	}
	if code, ok := styleCodes[style]; ok {
		line = code + line + sgrReset
	}
	fmt.Fprintf(v.writer, "%s %s\n", sgrLabel+"[verbose]"+sgrReset, line)
}

// writerSupportsColor honors the common opt-outs (NO_COLOR, CLICOLOR=0,
// TERM=dumb) and requires the writer to be a terminal.
func writerSupportsColor(writer io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	if strings.EqualFold(os.Getenv("CLICOLOR"), "0") {
		return false
	}
	fder, ok := writer.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(fder.Fd()))
}
