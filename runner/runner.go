/*
File    : loxwalk/runner/runner.go
Derived from go-mix/main/main.go's runFile/executeFileWithRecovery (Akash Maji)
*/

// Package runner executes a loxwalk source file start to finish and
// reports whether it succeeded, so cmd/loxwalk can turn that into a process
// exit code. The teacher's equivalent (runFile/executeFileWithRecovery)
// always calls os.Exit internally and its one error path that isn't a
// hard exit (a successful run) leaves the process exit code at the
// default 0 even when evaluation produced an error object — this package
// instead returns the failure to its caller so the exit code reflects it.
package runner

import (
	"fmt"
	"os"

	"github.com/akashmaji946/loxwalk/interpreter"
	"github.com/akashmaji946/loxwalk/lexer"
	"github.com/akashmaji946/loxwalk/parser"
)

// Run reads path, parses it, and interprets it against a fresh
// Interpreter. Parse errors are all printed to stderr and the returned
// error only counts them; a runtime failure is printed and returned as the
// first *values.RuntimeError. It returns nil on success. The caller is expected to map a non-nil
// return into a non-zero process exit code.
func Run(path string) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not read file %q: %w", path, err)
	}

	lex := lexer.New(string(source))
	p := parser.New(lex)
	stmts := p.Parse()

	if p.HasErrors() {
		for _, e := range p.GetErrors() {
			fmt.Fprintln(os.Stderr, e)
		}
		return fmt.Errorf("%d parse error(s)", len(p.GetErrors()))
	}

	in := interpreter.New(os.Stdout)
	if rtErr := in.Run(stmts); rtErr != nil {
		fmt.Fprintln(os.Stderr, rtErr.Error())
		return rtErr
	}
	return nil
}
