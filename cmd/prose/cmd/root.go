/*
File    : prose/cmd/prose/cmd/root.go
Package : cmd
*/

// Package cmd implements prose's cobra command tree: run, lex, parse,
// and repl. Its subcommands are thin — all real work lives in
// internal/interp, internal/lexer, and internal/parser; this package
// only wires CLI flags onto them and maps errors to exit codes.
package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/proselang/prosec/internal/diag"
)

// Version is overwritten by -ldflags at release build time.
var Version = "0.1.0-dev"

var verbose bool

var rootCmd = &cobra.Command{
	Use:     "prose",
	Short:   "prose is an interpreter for a small English-phrased language",
	Version: Version,
	Args:    cobra.ArbitraryArgs,
	RunE:    runFile,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "accepted for all subcommands; does not change any output")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ExitCode maps a pipeline error to a process exit code: 1 for a
// lex/parse/runtime error, 2 for a missing source-file argument, 1 for
// anything else unrecognized.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var missing *missingArgError
	if errors.As(err, &missing) {
		return 2
	}
	var derr *diag.Error
	if errors.As(err, &derr) {
		return 1
	}
	return 1
}

// missingArgError signals the file-argument-missing case distinctly from
// every other failure, so ExitCode can single it out for code 2.
type missingArgError struct{ msg string }

func (e *missingArgError) Error() string { return e.msg }

func errMissingFile() error {
	return &missingArgError{msg: "missing required source file argument"}
}
