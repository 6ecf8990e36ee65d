/*
File    : loxwalk/interpreter/class_stub.go
*/
package interpreter

import "github.com/akashmaji946/loxwalk/values"

// classStub is the runtime value a `class` declaration evaluates to.
// class/super/this are reserved syntax only: a class name is bound like
// any other value so programs can reference it, but attempting to call it
// (the only thing a class value could meaningfully do without a field/
// method model) is a runtime error.
type classStub struct {
	name string
}

func newClassStub(name string) *classStub { return &classStub{name: name} }

func (*classStub) Type() values.Type { return values.Type("class") }

func (c *classStub) String() string { return "<class " + c.name + ">" }
