/*
File    : prose/cmd/prose/cmd/repl.go
Package : cmd
*/

package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/proselang/prosec/internal/config"
	"github.com/proselang/prosec/internal/repl"
)

var configPath string

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "start an interactive prose session",
	Args:  cobra.NoArgs,
	RunE:  startRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
	replCmd.Flags().StringVar(&configPath, "config", ".prose.yaml", "path to an optional settings file")
}

func startRepl(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if noColor {
		cfg.NoColor = true
	}
	return repl.New(cfg).Start(os.Stdout)
}
