/*
File    : prose/internal/builtins/builtins_test.go
Package : builtins
*/

package builtins

import (
	"strings"
	"testing"

	"github.com/proselang/prosec/internal/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadLineStripsNewline(t *testing.T) {
	old := Stdin
	defer func() { Stdin = old }()
	Stdin = strings.NewReader("hello world\n")

	b, ok := Lookup("ask")
	require.True(t, ok)
	v, err := b.Call(nil)
	require.NoError(t, err)
	assert.Equal(t, "hello world", v.Str)
}

func TestPrintArgsRejectsBoolean(t *testing.T) {
	b, ok := Lookup("Display")
	require.True(t, ok)
	_, err := b.Call([]*value.Value{value.Boolean(true)})
	assert.Error(t, err)
}

func TestPrintArgsWritesNumbersAndStrings(t *testing.T) {
	old := Stdout
	defer func() { Stdout = old }()
	var sb strings.Builder
	Stdout = &sb

	b, ok := Lookup("Print")
	require.True(t, ok)
	_, err := b.Call([]*value.Value{value.Number(5), value.String(" apples")})
	require.NoError(t, err)
	assert.Equal(t, "5 apples", sb.String())
}

func TestToNumberRejectsMalformed(t *testing.T) {
	b, ok := Lookup("toNumber")
	require.True(t, ok)
	_, err := b.Call([]*value.Value{value.String("not-a-number")})
	assert.Error(t, err)

	v, err := b.Call([]*value.Value{value.String("3.5")})
	require.NoError(t, err)
	assert.Equal(t, 3.5, v.Num)
}

func TestToStringFormatsDefault(t *testing.T) {
	b, ok := Lookup("toString")
	require.True(t, ok)
	v, err := b.Call([]*value.Value{value.Number(5)})
	require.NoError(t, err)
	assert.Equal(t, "5", v.Str)
}

func TestArityIsChecked(t *testing.T) {
	b, ok := Lookup("toNumber")
	require.True(t, ok)
	_, err := b.Call(nil)
	assert.Error(t, err)
}
