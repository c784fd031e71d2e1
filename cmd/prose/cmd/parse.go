/*
File    : prose/cmd/prose/cmd/parse.go
Package : cmd
*/

package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/proselang/prosec/internal/ast"
	"github.com/proselang/prosec/internal/interp"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "parse a prose source file and print its AST",
	Args:  cobra.ArbitraryArgs,
	RunE:  parseFile,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func parseFile(_ *cobra.Command, args []string) error {
	if len(args) != 1 {
		return errMissingFile()
	}
	src, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	result, err := interp.Compile(string(src))
	if err != nil {
		printPipelineError(args[0], string(src), err)
		return err
	}
	printNode(os.Stdout, result.Program, 0)
	return nil
}

// printNode renders a node tree for debugging. It type-switches over the
// concrete node types in internal/ast rather than relying on a shared
// String method, since the AST's only required capability is Execute.
func printNode(w io.Writer, n ast.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	switch v := n.(type) {
	case *ast.Block:
		fmt.Fprintf(w, "%sBlock\n", indent)
		for _, s := range v.Stmts {
			printNode(w, s, depth+1)
		}
	case *ast.Literal:
		fmt.Fprintf(w, "%sLiteral(%s)\n", indent, v.Val.Display())
	case *ast.VarRef:
		fmt.Fprintf(w, "%sVarRef(%s)\n", indent, v.Name)
	case *ast.UnaryOp:
		fmt.Fprintf(w, "%sUnaryOp(%c)\n", indent, v.Op)
		printNode(w, v.Child, depth+1)
	case *ast.Expression:
		fmt.Fprintf(w, "%sExpression(%c)\n", indent, v.Op)
		printNode(w, v.Left, depth+1)
		if v.Right != nil {
			printNode(w, v.Right, depth+1)
		}
	case *ast.Condition:
		fmt.Fprintf(w, "%sCondition(%c)\n", indent, v.Op)
		printNode(w, v.Left, depth+1)
		printNode(w, v.Right, depth+1)
	case *ast.VarDeclaration:
		fmt.Fprintf(w, "%sVarDeclaration(%s)\n", indent, v.Name)
	case *ast.Assignment:
		fmt.Fprintf(w, "%sAssignment(%s)\n", indent, v.Name)
		printNode(w, v.RHS, depth+1)
	case *ast.FuncDeclaration:
		fmt.Fprintf(w, "%sFuncDeclaration(%s, params=%v)\n", indent, v.Name, v.Params)
	case *ast.FuncImpl:
		fmt.Fprintf(w, "%sFuncImpl(%s)\n", indent, v.Name)
		printNode(w, v.Body, depth+1)
	case *ast.FunctionCall:
		fmt.Fprintf(w, "%sFunctionCall(%s)\n", indent, v.Name)
		for _, a := range v.Args {
			printNode(w, a, depth+1)
		}
	case *ast.IfStatement:
		fmt.Fprintf(w, "%sIfStatement\n", indent)
		printNode(w, v.Condition, depth+1)
		printNode(w, v.Then, depth+1)
		if v.Else != nil {
			printNode(w, v.Else, depth+1)
		}
	case *ast.WhileStatement:
		fmt.Fprintf(w, "%sWhileStatement\n", indent)
		printNode(w, v.Condition, depth+1)
		printNode(w, v.Body, depth+1)
	default:
		fmt.Fprintf(w, "%s<unknown node>\n", indent)
	}
}
