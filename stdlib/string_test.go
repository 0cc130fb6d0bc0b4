package stdlib_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nustack/nu/interp"
	"github.com/nustack/nu/stdlib"
	"github.com/nustack/nu/value"
)

func callWord(t *testing.T, m interface {
	Lookup(string) (value.Value, bool)
}, name string, in *interp.Interpreter) {
	t.Helper()
	v, ok := m.Lookup(name)
	require.True(t, ok, "word %q not registered", name)
	require.NoError(t, v.Native(in))
}

func TestSplit(t *testing.T) {
	m := stdlib.StringModule()
	in := interp.New()
	in.Stack.Push(value.NewString("a,b,c"))
	in.Stack.Push(value.NewString(","))
	callWord(t, m, "split", in)

	got, err := in.Stack.Pop()
	require.NoError(t, err)
	require.Equal(t, value.List, got.Tag)
	require.Len(t, got.List, 3)
	assert.Equal(t, "a", got.List[0].Str)
	assert.Equal(t, "b", got.List[1].Str)
	assert.Equal(t, "c", got.List[2].Str)
}

func TestJoin(t *testing.T) {
	m := stdlib.StringModule()
	in := interp.New()
	in.Stack.Push(value.NewList([]value.Value{
		value.NewString("a"), value.NewString("b"), value.NewString("c"),
	}))
	in.Stack.Push(value.NewString("-"))
	callWord(t, m, "join", in)

	got, err := in.Stack.Pop()
	require.NoError(t, err)
	assert.Equal(t, "a-b-c", got.Str)
}

func TestContains(t *testing.T) {
	m := stdlib.StringModule()
	in := interp.New()
	in.Stack.Push(value.NewString("hello world"))
	in.Stack.Push(value.NewString("wor"))
	callWord(t, m, "contains", in)

	got, err := in.Stack.Pop()
	require.NoError(t, err)
	assert.True(t, got.Bool)
}

func TestCharacterClassConstants(t *testing.T) {
	m := stdlib.StringModule()
	digits, ok := m.Lookup("digits")
	require.True(t, ok)
	assert.Equal(t, "0123456789", digits.Str)

	letters, ok := m.Lookup("ascii_letters")
	require.True(t, ok)
	assert.Len(t, letters.Str, 52)
}

func TestSplitRejectsNonStringOperands(t *testing.T) {
	m := stdlib.StringModule()
	in := interp.New()
	in.Stack.Push(value.NewInt(1))
	in.Stack.Push(value.NewString(","))
	v, _ := m.Lookup("split")
	assert.Error(t, v.Native(in))
}
