/*
File    : prose/internal/repl/repl.go
Package : repl
*/

// Package repl implements the interactive Read-Eval-Print Loop for the
// prose interpreter: readline-backed line editing and history, colored
// diagnostics, and a long-lived Environment so declarations made on one
// line are visible on the next.
package repl

import (
	"errors"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/proselang/prosec/internal/config"
	"github.com/proselang/prosec/internal/diag"
	"github.com/proselang/prosec/internal/environment"
	"github.com/proselang/prosec/internal/interp"
)

var (
	blueColor  = color.New(color.FgBlue)
	redColor   = color.New(color.FgRed, color.Bold)
	greenColor = color.New(color.FgGreen)
	cyanColor  = color.New(color.FgCyan)
)

// Repl is a configured interactive session. Zero value is unusable; build
// one with New.
type Repl struct {
	cfg config.Config
}

// New builds a Repl from cfg.
func New(cfg config.Config) *Repl {
	return &Repl{cfg: cfg}
}

func (r *Repl) printBanner(w io.Writer) {
	line := strings.Repeat("-", 60)
	if r.cfg.NoColor {
		io.WriteString(w, line+"\n"+r.cfg.Banner+"\n"+line+"\n")
		io.WriteString(w, "Type a sentence and press enter. Ctrl+D to exit.\n")
		return
	}
	blueColor.Fprintln(w, line)
	greenColor.Fprintln(w, r.cfg.Banner)
	blueColor.Fprintln(w, line)
	cyanColor.Fprintln(w, "Type a sentence and press enter. Ctrl+D to exit.")
}

// Start runs the loop until EOF (Ctrl+D) or a readline error. Output goes
// to w; input is read through readline regardless of w (readline owns
// stdin directly, matching go-mix's REPL).
func (r *Repl) Start(w io.Writer) error {
	r.printBanner(w)

	rl, err := readline.New(r.cfg.Prompt)
	if err != nil {
		return err
	}
	defer rl.Close()

	env := environment.New()
	for {
		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			}
			io.WriteString(w, "\n")
			return nil
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		rl.SaveHistory(line)
		r.evalLine(w, line, env)
	}
}

// evalLine runs one line with panic recovery, since an unrecognized
// runtime invariant violation should not kill an interactive session the
// way it would a one-shot file run.
func (r *Repl) evalLine(w io.Writer, line string, env *environment.Environment) {
	defer func() {
		if rec := recover(); rec != nil {
			r.printErr(w, line, errors.New("internal error, recovered"))
		}
	}()

	if err := interp.RunLine(line, env, w); err != nil {
		r.printErr(w, line, err)
	}
}

func (r *Repl) printErr(w io.Writer, src string, err error) {
	if derr, ok := err.(*diag.Error); ok {
		if r.cfg.NoColor {
			io.WriteString(w, derr.Format(src, false)+"\n")
			return
		}
		io.WriteString(w, derr.Format(src, true)+"\n")
		return
	}
	if r.cfg.NoColor {
		io.WriteString(w, err.Error()+"\n")
		return
	}
	redColor.Fprintln(w, err.Error())
}
