package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rentvehicle/rentkit/pkg/money"
)

func (r *Runner) printf(format string, args ...any) {
	fmt.Fprintf(r.out, format, args...)
}

// readLine prints prompt and returns the next input line with surrounding
// whitespace trimmed. ok is false once input is exhausted.
func (r *Runner) readLine(prompt string) (value string, ok bool) {
	fmt.Fprint(r.out, prompt)
	if !r.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(r.in.Text()), true
}

// readInt reads a line and parses it as an integer. Malformed input
// degrades to -1, which no menu accepts, so callers handle it as an
// ordinary invalid choice.
func (r *Runner) readInt(prompt string) (value int, ok bool) {
	line, ok := r.readLine(prompt)
	if !ok {
		return 0, false
	}

	n, err := strconv.Atoi(line)
	if err != nil {
		return -1, true
	}
	return n, true
}

// readAmount reads a whole rupiah amount, degrading to -1 like readInt.
func (r *Runner) readAmount(prompt string) (value money.Amount, ok bool) {
	line, ok := r.readLine(prompt)
	if !ok {
		return 0, false
	}

	n, err := strconv.ParseInt(line, 10, 64)
	if err != nil {
		return -1, true
	}
	return money.Amount(n), true
}
