package convert

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnrecognizedFormat is returned when the input contains neither of the
// known dump marker literals.
var ErrUnrecognizedFormat = errors.New("unrecognized txpool dump format")

// SyntaxError is returned when the rewritten Content text fails to parse as
// JSON. Line and Column are 1-based positions derived from the byte offset
// reported by the JSON decoder.
type SyntaxError struct {
	Line   int
	Column int

	// Cleaned is the fully rewritten (but invalid) text, preserved so the
	// caller can dump it for offline diagnosis.
	Cleaned string

	err error
}

// Error implements error.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("json syntax error at line %d column %d: %v", e.Line, e.Column, e.err)
}

// Unwrap returns the underlying decoder error.
func (e *SyntaxError) Unwrap() error {
	return e.err
}

// lineCol converts a byte offset into a 1-based line and column position.
func lineCol(text string, offset int64) (int, int) {
	if offset < 0 {
		offset = 0
	}
	if offset > int64(len(text)) {
		offset = int64(len(text))
	}
	head := text[:offset]
	line := strings.Count(head, "\n") + 1
	col := int(offset) - strings.LastIndex(head, "\n")
	return line, col
}
