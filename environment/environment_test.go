/*
File    : loxwalk/environment/environment_test.go
*/
package environment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/loxwalk/values"
)

func TestDefineAndGet(t *testing.T) {
	env := New(nil)
	env.Define("x", values.Number(1))

	v, ok := env.Get("x")
	assert.True(t, ok)
	assert.Equal(t, values.Number(1), v)
}

func TestGetMissing(t *testing.T) {
	env := New(nil)
	_, ok := env.Get("missing")
	assert.False(t, ok)
}

func TestGetFallsThroughToParent(t *testing.T) {
	parent := New(nil)
	parent.Define("x", values.Number(1))
	child := New(parent)

	v, ok := child.Get("x")
	assert.True(t, ok)
	assert.Equal(t, values.Number(1), v)
}

func TestDefineShadowsWithoutMutatingParent(t *testing.T) {
	parent := New(nil)
	parent.Define("x", values.Number(1))
	child := New(parent)
	child.Define("x", values.Number(2))

	childVal, _ := child.Get("x")
	parentVal, _ := parent.Get("x")
	assert.Equal(t, values.Number(2), childVal)
	assert.Equal(t, values.Number(1), parentVal)
}

func TestAssignUpdatesEnclosingBinding(t *testing.T) {
	parent := New(nil)
	parent.Define("x", values.Number(1))
	child := New(parent)

	ok := child.Assign("x", values.Number(9))
	assert.True(t, ok)

	v, _ := parent.Get("x")
	assert.Equal(t, values.Number(9), v)
}

func TestAssignToUndefinedFails(t *testing.T) {
	env := New(nil)
	ok := env.Assign("never_declared", values.Number(1))
	assert.False(t, ok)
}
