/*
File    : loxwalk/cmd/loxwalk/main.go
Derived from go-mix/main/main.go (Akash Maji)
*/
package main

import (
	"fmt"
	"os"

	"github.com/akashmaji946/loxwalk/repl"
	"github.com/akashmaji946/loxwalk/runner"
)

const version = "v0.1.0"

var banner = `
  _  _____  __  ____      ___    _     _  __
 | |/ / _ \ \ \/ /\ \    / / \  | |   | |/ /
 | ' / | | | \  /  \ \/\/ /| _ \ | |   | ' /
 | . \ |_| | /  \   \    / | |_) | |___| . \
 |_|\_\___/ /_/\_\   \/\/  |_.__/|_____|_|\_\
`

func main() {
	args := os.Args[1:]

	if len(args) == 0 {
		repl.New(banner, version, "loxwalk> ").Start(os.Stdout)
		return
	}

	switch args[0] {
	case "--help", "-h":
		printUsage()
		return
	case "--version", "-v":
		fmt.Println("loxwalk " + version)
		return
	}

	if len(args) > 1 {
		fmt.Fprintln(os.Stderr, "usage: loxwalk [script.lox]")
		os.Exit(64)
	}

	if err := runner.Run(args[0]); err != nil {
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("loxwalk — a tree-walking interpreter")
	fmt.Println()
	fmt.Println("usage:")
	fmt.Println("  loxwalk                run the interactive REPL")
	fmt.Println("  loxwalk script.lox     run a script and exit")
	fmt.Println("  loxwalk --help         show this message")
	fmt.Println("  loxwalk --version      show the version")
}
