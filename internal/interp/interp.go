/*
File    : prose/internal/interp/interp.go
Package : interp
*/

// Package interp wires the pipeline together: lex, parse, build a fresh
// Environment, execute. It is the single entry point internal/repl and
// cmd/prose both call so the two presentation layers never duplicate
// pipeline-assembly logic.
package interp

import (
	"io"

	"github.com/proselang/prosec/internal/ast"
	"github.com/proselang/prosec/internal/builtins"
	"github.com/proselang/prosec/internal/diag"
	"github.com/proselang/prosec/internal/environment"
	"github.com/proselang/prosec/internal/lexer"
	"github.com/proselang/prosec/internal/parser"
)

// Result carries the program's root Block, useful to callers (like the
// `prose parse` subcommand) that want the AST without executing it.
type Result struct {
	Program *ast.Block
}

// Compile lexes and parses src, returning its AST without running it.
// Errors are always *diag.Error.
func Compile(src string) (*Result, error) {
	toks, err := lexer.Tokens(src)
	if err != nil {
		return nil, err
	}
	prog, err := parser.Parse(toks)
	if err != nil {
		return nil, err
	}
	return &Result{Program: prog}, nil
}

// Run compiles and executes src against a fresh Environment, directing
// built-in output to stdout. Any failure is returned as a *diag.Error
// whose Stage reflects where it originated (Lex/Parse/Name/Type/Arity).
func Run(src string, stdout io.Writer) error {
	return RunWith(src, environment.New(), stdout)
}

// RunWith executes src as a full, self-contained program against env: its
// top-level statements run inside their own pushed Scope, exactly like a
// file run via `prose run`.
func RunWith(src string, env *environment.Environment, stdout io.Writer) error {
	result, err := Compile(src)
	if err != nil {
		return err
	}
	return execute(result.Program, env, stdout)
}

// RunLine executes one REPL line's statements directly in env's current
// innermost scope rather than pushing a fresh one, so a variable declared
// on one line is still visible on the next (internal/repl uses this;
// internal/ast.Block's "pre-made scope" installation point, normally
// reserved for function-call invocation, serves this purpose too).
func RunLine(src string, env *environment.Environment, stdout io.Writer) error {
	result, err := Compile(src)
	if err != nil {
		return err
	}
	line := &ast.Block{Stmts: result.Program.Stmts, PreMade: true}
	return execute(line, env, stdout)
}

func execute(block *ast.Block, env *environment.Environment, stdout io.Writer) error {
	old := builtins.Stdout
	builtins.Stdout = stdout
	defer func() { builtins.Stdout = old }()

	_, err := block.Execute(env)
	if err == nil {
		return nil
	}
	if rerr, ok := err.(*ast.RuntimeError); ok {
		return diag.New(rerr.Stage, rerr.Line, "%s", rerr.Message)
	}
	return err
}
