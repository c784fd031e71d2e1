/*
File    : prose/internal/environment/environment_test.go
Package : environment
*/

package environment

import (
	"testing"

	"github.com/proselang/prosec/internal/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlobalScopeSeeded(t *testing.T) {
	env := New()
	v, ok := env.LookupVar("five")
	require.True(t, ok)
	assert.Equal(t, 5.0, v.Num)

	nl, ok := env.LookupVar("newline")
	require.True(t, ok)
	assert.Equal(t, "\n", nl.Str)
}

func TestScopeHygiene(t *testing.T) {
	env := New()
	before := env.Depth()
	env.Push()
	require.NoError(t, env.DeclareVar("x"))
	env.Pop()
	assert.Equal(t, before, env.Depth())
}

func TestDoubleDeclarationIsError(t *testing.T) {
	env := New()
	require.NoError(t, env.DeclareVar("x"))
	assert.Error(t, env.DeclareVar("x"))
}

func TestAssignRequiresPriorDeclaration(t *testing.T) {
	env := New()
	assert.Error(t, env.AssignVar("undeclared", value.Number(1)))

	require.NoError(t, env.DeclareVar("x"))
	require.NoError(t, env.AssignVar("x", value.Number(42)))
	v, _ := env.LookupVar("x")
	assert.Equal(t, 42.0, v.Num)
}

func TestInnerScopeShadowsOuter(t *testing.T) {
	env := New()
	require.NoError(t, env.DeclareVar("x"))
	require.NoError(t, env.AssignVar("x", value.Number(1)))

	env.Push()
	require.NoError(t, env.DeclareVar("x"))
	require.NoError(t, env.AssignVar("x", value.Number(2)))
	v, _ := env.LookupVar("x")
	assert.Equal(t, 2.0, v.Num)
	env.Pop()

	v, _ = env.LookupVar("x")
	assert.Equal(t, 1.0, v.Num)
}

// TestAliasingThroughBindParam verifies that a formal parameter bound by
// reference to a caller's handle observes mutation of
// that handle performed inside the callee's scope, because AssignVar
// overwrites the shared handle's contents in place rather than replacing
// the binding with a new pointer.
func TestAliasingThroughBindParam(t *testing.T) {
	env := New()
	require.NoError(t, env.DeclareVar("x"))
	require.NoError(t, env.AssignVar("x", value.Number(5)))
	caller, _ := env.LookupVar("x")

	env.Push()
	env.BindParam("p", caller)
	require.NoError(t, env.AssignVar("p", value.Number(99)))
	env.Pop()

	after, _ := env.LookupVar("x")
	assert.Equal(t, 99.0, after.Num)
}

func TestFunctionDeclareImplementCall(t *testing.T) {
	env := New()
	fn := &Function{Name: "add", Params: []string{"a", "b"}}
	require.NoError(t, env.DeclareFunc(fn))
	assert.Error(t, env.DeclareFunc(fn))

	got, ok := env.LookupFunc("add")
	require.True(t, ok)
	assert.Nil(t, got.Body)
}
