/*
File    : prose/cmd/prose/main.go
Package : main
*/

package main

import (
	"os"

	"github.com/proselang/prosec/cmd/prose/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(cmd.ExitCode(err))
	}
}
