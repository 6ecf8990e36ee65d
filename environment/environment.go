/*
File    : loxwalk/environment/environment.go
Derived from go-mix/scope/scope.go (Akash Maji)
*/

// Package environment implements the lexically-nested variable scope chain
// the interpreter evaluates against. Unlike the teacher's Scope, a closure
// here captures a live pointer to its defining Environment rather than a
// snapshot copy — assignments made after the closure is created, including
// assignments made by the closure itself, are visible through every
// reference to that environment. That sharing is what makes closures real
// instead of fixed-at-creation-time copies.
package environment

import "github.com/akashmaji946/loxwalk/values"

// Environment is one scope's variable bindings plus a link to its enclosing
// scope. A nil Parent marks the global environment.
type Environment struct {
	vars   map[string]values.Value
	Parent *Environment
}

// New creates an environment nested inside parent. Pass nil to create the
// global environment.
func New(parent *Environment) *Environment {
	return &Environment{vars: make(map[string]values.Value), Parent: parent}
}

// Define creates or overwrites a binding in this environment only. This is
// how `var` always behaves: it never looks at enclosing scopes, so
// redeclaring a name in the same block simply replaces it, while a nested
// block's `var` shadows rather than mutates the outer binding.
func (e *Environment) Define(name string, v values.Value) {
	e.vars[name] = v
}

// Get looks up name in this environment and, failing that, every enclosing
// environment in turn. ok is false if the name is bound nowhere in the
// chain.
func (e *Environment) Get(name string) (values.Value, bool) {
	if v, ok := e.vars[name]; ok {
		return v, true
	}
	if e.Parent != nil {
		return e.Parent.Get(name)
	}
	return nil, false
}

// Assign updates an existing binding in place, searching this environment
// and then each enclosing one. It never creates a new binding: assigning to
// a name that is bound nowhere in the chain fails and leaves every
// environment untouched, matching the language's "no implicit globals"
// assignment rule.
func (e *Environment) Assign(name string, v values.Value) bool {
	if _, ok := e.vars[name]; ok {
		e.vars[name] = v
		return true
	}
	if e.Parent != nil {
		return e.Parent.Assign(name, v)
	}
	return false
}
