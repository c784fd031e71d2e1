/*
File    : prose/cmd/prose/cmd/run.go
Package : cmd
*/

package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/proselang/prosec/internal/diag"
	"github.com/proselang/prosec/internal/interp"
)

var noColor bool

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "run a prose source file",
	Args:  cobra.ArbitraryArgs,
	RunE:  runFile,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored diagnostics")
}

func runFile(_ *cobra.Command, args []string) error {
	if len(args) != 1 {
		return errMissingFile()
	}
	src, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	if err := interp.Run(string(src), os.Stdout); err != nil {
		printPipelineError(args[0], string(src), err)
		return err
	}
	return nil
}

func printPipelineError(filename, src string, err error) {
	derr, ok := err.(*diag.Error)
	if !ok {
		fmt.Fprintf(os.Stderr, "%s: %s\n", filename, err)
		return
	}
	useColor := !noColor && !color.NoColor
	fmt.Fprintln(os.Stderr, derr.Format(src, useColor))
}
