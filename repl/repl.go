/*
File    : loxwalk/repl/repl.go
Derived from go-mix/repl/repl.go (Akash Maji)
*/

// Package repl implements loxwalk's interactive Read-Eval-Print Loop: one
// readline-backed prompt, one persistent Interpreter so variables and
// functions defined on one line stay visible on the next, and parsing in
// REPLMode so a bare expression without a trailing ';' still prints.
package repl

import (
	"io"
	"strings"

	"github.com/akashmaji946/loxwalk/interpreter"
	"github.com/akashmaji946/loxwalk/lexer"
	"github.com/akashmaji946/loxwalk/parser"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

var (
	blueColor   = color.New(color.FgBlue)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

const exitCommand = ".exit"

// Repl is a REPL session's display configuration.
type Repl struct {
	Banner  string
	Version string
	Prompt  string
}

// New builds a Repl with the given banner/version/prompt.
func New(banner, version, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Prompt: prompt}
}

func (r *Repl) printBanner(w io.Writer) {
	greenColor.Fprintf(w, "%s\n", r.Banner)
	cyanColor.Fprintf(w, "loxwalk %s — type an expression, or '%s' to quit\n", r.Version, exitCommand)
}

// Start runs the loop until the user types .exit or sends EOF (Ctrl-D).
// writer receives both the banner and every print()'d value.
func (r *Repl) Start(writer io.Writer) {
	r.printBanner(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		greenColor.Fprintf(writer, "could not start line editor: %v\n", err)
		return
	}
	defer rl.Close()

	in := interpreter.New(writer)

	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF on Ctrl-D, readline.ErrInterrupt on Ctrl-C
			if err == readline.ErrInterrupt {
				continue
			}
			blueColor.Fprintln(writer, "goodbye")
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == exitCommand {
			blueColor.Fprintln(writer, "goodbye")
			return
		}

		rl.SaveHistory(line)
		r.evalLine(writer, in, line)
	}
}

func (r *Repl) evalLine(writer io.Writer, in *interpreter.Interpreter, line string) {
	lex := lexer.New(line)
	p := parser.New(lex)
	p.REPLMode = true
	stmts := p.Parse()

	if p.HasErrors() {
		for _, e := range p.GetErrors() {
			redColor.Fprintf(writer, "%s\n", e)
		}
		return
	}

	if err := in.Run(stmts); err != nil {
		redColor.Fprintf(writer, "%s\n", err.Error())
	}
}
