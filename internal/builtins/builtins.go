/*
File    : prose/internal/builtins/builtins.go
Package : builtins
*/

// Package builtins implements the process-wide table of built-in
// functions. Unlike user functions (internal/ast, internal/environment)
// these are plain Go closures over *value.Value slices — there is no
// Declare/Implement phase and no Block body to execute, so they live
// outside the Environment's function table entirely and are consulted
// first on every call.
package builtins

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/proselang/prosec/internal/value"
)

// Builtin is one registered built-in function: a fixed or variable Arity
// (-1 meaning "any number of arguments") and the Go closure implementing
// its effect.
type Builtin struct {
	Name  string
	Arity int // -1 = variadic
	Call  func(args []*value.Value) (*value.Value, error)
}

// Stdout and Stdin are package-level so internal/interp and internal/repl
// can redirect them (e.g. to a strings.Builder in golden tests) without
// this package importing either.
var (
	Stdout io.Writer = os.Stdout
	Stdin  io.Reader = os.Stdin
)

// stdinReader is a persistent buffered reader over Stdin, so sequential
// getInput/ask calls do not lose bytes already buffered past the last '\n'
// between calls. It is rebuilt only when Stdin itself is reassigned (tests
// redirect Stdin to a fresh strings.Reader per case).
var (
	stdinReader    *bufio.Reader
	stdinReaderSrc io.Reader
)

func currentStdinReader() *bufio.Reader {
	if stdinReader == nil || stdinReaderSrc != Stdin {
		stdinReader = bufio.NewReader(Stdin)
		stdinReaderSrc = Stdin
	}
	return stdinReader
}

var table map[string]*Builtin

func init() {
	table = make(map[string]*Builtin)
	register([]string{"getInput", "ask"}, 0, readLine)
	register([]string{"Display", "Show", "Output", "Echo", "Write", "Print"}, -1, printArgs)
	register([]string{"toNumber"}, 1, toNumber)
	register([]string{"toString"}, 1, toStringFn)
}

func register(names []string, arity int, fn func([]*value.Value) (*value.Value, error)) {
	for _, n := range names {
		table[n] = &Builtin{Name: n, Arity: arity, Call: arityChecked(n, arity, fn)}
	}
}

func arityChecked(name string, arity int, fn func([]*value.Value) (*value.Value, error)) func([]*value.Value) (*value.Value, error) {
	if arity < 0 {
		return fn
	}
	return func(args []*value.Value) (*value.Value, error) {
		if len(args) != arity {
			return nil, &ArityError{Name: name, Expected: arity, Got: len(args)}
		}
		return fn(args)
	}
}

// ArityError reports a built-in call with the wrong number of arguments.
// internal/ast type-switches on it to tag the resulting diagnostic as an
// arity error rather than a type error.
type ArityError struct {
	Name     string
	Expected int
	Got      int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("%q expects %d argument(s), got %d", e.Name, e.Expected, e.Got)
}

// Lookup finds a built-in by its case-sensitive surface name.
func Lookup(name string) (*Builtin, bool) {
	b, ok := table[name]
	return b, ok
}

// readLine backs getInput/ask: reads one line from Stdin, newline
// stripped, returned as a String. EOF with no content yields "".
func readLine([]*value.Value) (*value.Value, error) {
	line, err := currentStdinReader().ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("getInput: %w", err)
	}
	return value.String(strings.TrimRight(line, "\r\n")), nil
}

// printArgs backs Display/Show/Output/Echo/Write/Print: prints every
// argument's Number or String representation with no separator, erroring
// if any argument is Boolean or Unknown.
func printArgs(args []*value.Value) (*value.Value, error) {
	var sb strings.Builder
	for _, a := range args {
		switch a.Kind {
		case value.KindNumber, value.KindString:
			sb.WriteString(a.Display())
		default:
			return nil, fmt.Errorf("cannot print a %s value", a.Kind)
		}
	}
	fmt.Fprint(Stdout, sb.String())
	return value.Unknown(), nil
}

// toNumber parses a String argument as a real, raising a runtime error on
// malformed input.
func toNumber(args []*value.Value) (*value.Value, error) {
	a := args[0]
	if a.Kind != value.KindString {
		return nil, fmt.Errorf("toNumber expects a String argument, got %s", a.Kind)
	}
	n, err := value.ParseNumber(a.Str)
	if err != nil {
		return nil, fmt.Errorf("toNumber: %q is not a valid number", a.Str)
	}
	return value.Number(n), nil
}

// toStringFn formats a Number argument as its default decimal
// representation.
func toStringFn(args []*value.Value) (*value.Value, error) {
	a := args[0]
	if a.Kind != value.KindNumber {
		return nil, fmt.Errorf("toString expects a Number argument, got %s", a.Kind)
	}
	return value.String(value.FormatNumber(a.Num)), nil
}
