/*
File    : prose/internal/diag/diag.go
Package : diag
*/

// Package diag provides line-anchored error formatting for the prose
// interpreter. Every lex, parse, name, type, and arity failure is
// represented as an *Error carrying the source line it happened on;
// Format renders that line from the original source with a caret under
// it, the way go-dws/internal/errors formats compiler diagnostics.
package diag

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Stage names which phase of the pipeline raised the error.
type Stage string

const (
	Lex   Stage = "lex error"
	Parse Stage = "parse error"
	Name  Stage = "name error"
	Type  Stage = "type error"
	Arity Stage = "arity error"
)

// Error is the single error type produced anywhere in the pipeline. All
// errors are fatal — there is no recoverable variant.
type Error struct {
	Stage   Stage
	Line    int
	Message string
}

// New constructs an *Error. Line may be 0 when no source position is
// known (e.g. the EOF token the parser appends to a block's tokens);
// Format then omits the caret.
func New(stage Stage, line int, format string, args ...any) *Error {
	return &Error{Stage: stage, Line: line, Message: fmt.Sprintf(format, args...)}
}

// Error implements the error interface with an uncolored rendering.
func (e *Error) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s at line %d: %s", e.Stage, e.Line, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Stage, e.Message)
}

// Format renders the error against the original source text, including
// the offending line and a caret, colored red when useColor is true. When
// Line is 0 or beyond the last line of source, only the Error() header is
// rendered.
func (e *Error) Format(source string, useColor bool) string {
	var sb strings.Builder

	header := e.Error()
	if useColor {
		sb.WriteString(color.New(color.FgRed, color.Bold).Sprint(header))
	} else {
		sb.WriteString(header)
	}
	sb.WriteByte('\n')

	if e.Line <= 0 {
		return sb.String()
	}
	lines := strings.Split(source, "\n")
	if e.Line > len(lines) {
		return sb.String()
	}
	srcLine := lines[e.Line-1]
	prefix := fmt.Sprintf("%4d | ", e.Line)
	sb.WriteString(prefix)
	sb.WriteString(srcLine)
	sb.WriteByte('\n')
	sb.WriteString(strings.Repeat(" ", len(prefix)))
	caret := "^"
	if useColor {
		caret = color.New(color.FgRed, color.Bold).Sprint("^")
	}
	sb.WriteString(caret)
	return sb.String()
}
