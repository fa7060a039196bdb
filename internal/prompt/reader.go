// Package prompt reads validated numeric input from an interactive stream.
//
// Every calculator module trusts its inputs to be range- and sign-checked
// already, so all validation lives here: each Read method loops, printing a
// diagnostic and re-prompting, until the user supplies an acceptable value.
// The only way a Read method does not return a valid value is when the input
// stream itself fails, which ends the process.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Reader prompts on out and reads line-buffered input from in.
type Reader struct {
	in  *bufio.Reader
	out io.Writer

	// exit is called on an unrecoverable stream failure. Overridable in tests.
	exit func(code int)
}

// New creates a Reader for the given streams.
func New(in io.Reader, out io.Writer) *Reader {
	return &Reader{
		in:   bufio.NewReader(in),
		out:  out,
		exit: os.Exit,
	}
}

// line reads one line of input, trimming the trailing newline. A read failure
// (typically end of input) is fatal: there is no retry path once the stream
// is gone.
func (r *Reader) line() string {
	text, err := r.in.ReadString('\n')
	if err != nil && text == "" {
		fmt.Fprintln(r.out, "\nInput error. Exiting.")
		r.exit(1)
		return "" // only reached when exit is stubbed out in tests
	}
	return strings.TrimRight(text, "\r\n")
}

// ReadInt prompts until the user enters an integer within [min, max].
// Malformed input, trailing garbage, and out-of-range values are each
// reported and re-prompted; the returned value is always within range.
func (r *Reader) ReadInt(prompt string, min, max int) int {
	for {
		fmt.Fprint(r.out, prompt)

		num, rest := splitNumber(r.line(), func(s string) bool {
			_, err := strconv.Atoi(s)
			return err == nil
		})
		if num == "" {
			fmt.Fprintln(r.out, "Please enter an integer.")
			continue
		}
		if strings.TrimSpace(rest) != "" {
			fmt.Fprintln(r.out, "Unexpected characters. Try again.")
			continue
		}

		val, _ := strconv.Atoi(num)
		if val < min || val > max {
			fmt.Fprintf(r.out, "Value must be between %d and %d.\n", min, max)
			continue
		}
		return val
	}
}

// ReadPositiveFloat prompts until the user enters a number greater than zero.
func (r *Reader) ReadPositiveFloat(prompt string) float64 {
	for {
		fmt.Fprint(r.out, prompt)

		num, rest := splitNumber(r.line(), func(s string) bool {
			_, err := strconv.ParseFloat(s, 64)
			return err == nil
		})
		if num == "" {
			fmt.Fprintln(r.out, "Enter a valid number.")
			continue
		}
		if strings.TrimSpace(rest) != "" {
			fmt.Fprintln(r.out, "Invalid characters. Try again.")
			continue
		}

		val, _ := strconv.ParseFloat(num, 64)
		if val <= 0 {
			fmt.Fprintln(r.out, "Value must be > 0.")
			continue
		}
		return val
	}
}

// Confirm asks a yes/no question. Only an answer starting with "y" or "Y"
// counts as yes; an empty line, anything else, or a failed read declines.
func (r *Reader) Confirm(prompt string) bool {
	fmt.Fprint(r.out, prompt)

	text, err := r.in.ReadString('\n')
	if err != nil && text == "" {
		return false
	}
	text = strings.TrimSpace(text)
	return strings.HasPrefix(text, "y") || strings.HasPrefix(text, "Y")
}

// splitNumber splits text into its longest leading substring accepted by
// parses and the remainder. Leading whitespace is skipped. An empty num means
// no numeric prefix was found at all, which callers report differently from
// trailing garbage after a valid number.
func splitNumber(text string, parses func(string) bool) (num, rest string) {
	text = strings.TrimLeft(text, " \t")
	for i := len(text); i > 0; i-- {
		if parses(text[:i]) {
			return text[:i], text[i:]
		}
	}
	return "", text
}
