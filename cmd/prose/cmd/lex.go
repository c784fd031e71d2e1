/*
File    : prose/cmd/prose/cmd/lex.go
Package : cmd
*/

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/proselang/prosec/internal/lexer"
)

var lexCmd = &cobra.Command{
	Use:   "lex <file>",
	Short: "tokenize a prose source file and print its tokens",
	Args:  cobra.ArbitraryArgs,
	RunE:  lexFile,
}

func init() {
	rootCmd.AddCommand(lexCmd)
}

func lexFile(_ *cobra.Command, args []string) error {
	if len(args) != 1 {
		return errMissingFile()
	}
	src, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	toks, err := lexer.Tokens(string(src))
	if err != nil {
		printPipelineError(args[0], string(src), err)
		return err
	}
	for _, tok := range toks {
		fmt.Println(tok.String())
	}
	return nil
}
