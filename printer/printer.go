/*
File    : loxwalk/printer/printer.go
Derived from go-mix/print_visitor.go (Akash Maji) and original_source/src/ast_printer.rs
*/

// Package printer renders a parsed program as an indented, parenthesized
// Lisp-style tree for debugging; no CLI flag exposes it. It is never consulted by
// the interpreter — evaluation always walks the parser's own AST types
// directly — so a bug here can never change program behavior, only the
// debug dump.
package printer

import (
	"fmt"
	"strings"

	"github.com/akashmaji946/loxwalk/parser"
)

// Print renders a whole program, one top-level statement per line.
func Print(stmts []parser.Stmt) string {
	var b strings.Builder
	for _, s := range stmts {
		b.WriteString(printStmt(s, 0))
		b.WriteString("\n")
	}
	return b.String()
}

func indent(depth int) string { return strings.Repeat("  ", depth) }

func printStmt(stmt parser.Stmt, depth int) string {
	pad := indent(depth)
	switch s := stmt.(type) {
	case *parser.ExpressionStmt:
		return pad + printExpr(s.Expression)
	case *parser.PrintStmt:
		return pad + "(print " + printExpr(s.Expression) + ")"
	case *parser.VarStmt:
		if s.Initializer == nil {
			return pad + fmt.Sprintf("(var %s)", s.Name.Literal)
		}
		return pad + fmt.Sprintf("(var %s %s)", s.Name.Literal, printExpr(s.Initializer))
	case *parser.BlockStmt:
		var b strings.Builder
		b.WriteString(pad + "(block\n")
		for _, inner := range s.Statements {
			b.WriteString(printStmt(inner, depth+1))
			b.WriteString("\n")
		}
		b.WriteString(pad + ")")
		return b.String()
	case *parser.IfStmt:
		var b strings.Builder
		b.WriteString(pad + "(if " + printExpr(s.Condition) + "\n")
		b.WriteString(printStmt(s.ThenBranch, depth+1))
		if s.ElseBranch != nil {
			b.WriteString("\n" + printStmt(s.ElseBranch, depth+1))
		}
		b.WriteString(")")
		return b.String()
	case *parser.WhileStmt:
		var b strings.Builder
		b.WriteString(pad + "(while " + printExpr(s.Condition) + "\n")
		b.WriteString(printStmt(s.Body, depth+1))
		b.WriteString(")")
		return b.String()
	case *parser.FunctionStmt:
		names := make([]string, len(s.Params))
		for i, p := range s.Params {
			names[i] = p.Literal
		}
		return pad + fmt.Sprintf("(fn %s (%s) ...)", s.Name.Literal, strings.Join(names, " "))
	case *parser.ReturnStmt:
		if s.Value == nil {
			return pad + "(return)"
		}
		return pad + "(return " + printExpr(s.Value) + ")"
	case *parser.ClassStmt:
		return pad + fmt.Sprintf("(class %s)", s.Name.Literal)
	default:
		return pad + "(?)"
	}
}

func printExpr(expr parser.Expr) string {
	switch e := expr.(type) {
	case *parser.LiteralExpr:
		if e.Kind == parser.LiteralString {
			return `"` + e.Tok.Literal + `"`
		}
		return e.Literal()
	case *parser.GroupingExpr:
		return "(group " + printExpr(e.Expression) + ")"
	case *parser.UnaryExpr:
		return "(" + e.Operator.Literal + " " + printExpr(e.Right) + ")"
	case *parser.BinaryExpr:
		return "(" + e.Operator.Literal + " " + printExpr(e.Left) + " " + printExpr(e.Right) + ")"
	case *parser.LogicalExpr:
		return "(" + e.Operator.Literal + " " + printExpr(e.Left) + " " + printExpr(e.Right) + ")"
	case *parser.VariableExpr:
		return e.Name.Literal
	case *parser.AssignExpr:
		return "(= " + e.Name.Literal + " " + printExpr(e.Value) + ")"
	case *parser.CallExpr:
		parts := make([]string, len(e.Args))
		for i, a := range e.Args {
			parts[i] = printExpr(a)
		}
		return "(call " + printExpr(e.Callee) + " " + strings.Join(parts, " ") + ")"
	default:
		return "?"
	}
}
