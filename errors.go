package pointplot

import (
	"fmt"
	"strings"
)

// NotFoundError is returned by Load if the input file does not exist or
// cannot be read.
type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("cannot read %s: %v", e.Path, e.Err)
}

func (e *NotFoundError) Unwrap() error { return e.Err }

// ArityError reports a line whose number of fields differs from the
// number of columns.
type ArityError struct {
	Line int // 1-based
	Got  int
	Want int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("line %d: got %d fields, want %d", e.Line, e.Got, e.Want)
}

// ParseError reports a field which is not a floating point literal.
type ParseError struct {
	Line  int // 1-based
	Field int // 1-based
	Token string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d field %d: cannot parse %q as number", e.Line, e.Field, e.Token)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ColumnError reports an unusable column name or list of names.
type ColumnError struct {
	Name   string // empty if not about a single column
	Reason string
}

func (e *ColumnError) Error() string {
	var parts []string
	parts = append(parts, "column")
	if e.Name != "" {
		parts = append(parts, fmt.Sprintf("%q", e.Name))
	}
	parts = append(parts, e.Reason)
	return strings.Join(parts, " ")
}
