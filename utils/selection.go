package utils

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseSelection turns a 1-based operator choice into an index into n options.
func ParseSelection(input string, n int) (int, error) {
	choice, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidSelection, strings.TrimSpace(input))
	}
	if choice < 1 || choice > n {
		return 0, fmt.Errorf("%w: %d is outside 1-%d", ErrInvalidSelection, choice, n)
	}
	return choice - 1, nil
}

// PromptSelection prints a numbered list under title, asks question, and
// reads one line from in.
func PromptSelection(in *bufio.Reader, out io.Writer, title, question string, options []string) (int, error) {
	fmt.Fprintln(out, title)
	for i, option := range options {
		fmt.Fprintf(out, "%d: %s\n", i+1, option)
	}
	fmt.Fprint(out, question)

	line, err := in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return 0, fmt.Errorf("%w: no input", ErrInvalidSelection)
	}
	return ParseSelection(line, len(options))
}
