package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// readLine consumes one line, stripping the trailing newline. It passes
// io.EOF through so callers can treat a final unterminated line as input.
func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	line = strings.TrimRight(line, "\r\n")
	if err != nil && err != io.EOF {
		return "", err
	}
	return line, err
}

// promptYesNo asks a yes/no question, re-prompting on garbage input.
// An empty answer (including immediate EOF) takes the default.
func promptYesNo(reader *bufio.Reader, out io.Writer, question string, defaultYes bool) (bool, error) {
	hint := "y/N"
	if defaultYes {
		hint = "Y/n"
	}
	for {
		fmt.Fprintf(out, "%s [%s]: ", question, hint)
		answer, err := readLine(reader)
		if err != nil && err != io.EOF {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "":
			return defaultYes, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		if err == io.EOF {
			return false, fmt.Errorf("invalid response %q", strings.TrimSpace(answer))
		}
		fmt.Fprintln(out, "Please answer yes or no.")
	}
}
