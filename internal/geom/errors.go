package geom

import (
	"fmt"
	"strings"
)

// FormatError indicates a malformed coordinate line or field
type FormatError struct {
	Line   int // 1-based source line, 0 when the input did not come from a file
	Input  string
	Reason string
	Err    error
}

func (e *FormatError) Error() string {
	var b strings.Builder
	if e.Line > 0 {
		fmt.Fprintf(&b, "line %d: ", e.Line)
	}
	fmt.Fprintf(&b, "malformed coordinate %q: %s", e.Input, e.Reason)
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *FormatError) Unwrap() error { return e.Err }

// DegenerateInputError indicates geometric reference input that cannot be used
type DegenerateInputError struct {
	Reason string
}

func (e *DegenerateInputError) Error() string {
	return "degenerate input: " + e.Reason
}

// FileMissingError indicates an input path that does not exist
type FileMissingError struct {
	Path string
	Err  error
}

func (e *FileMissingError) Error() string {
	return fmt.Sprintf("input file %s does not exist", e.Path)
}

func (e *FileMissingError) Unwrap() error { return e.Err }
