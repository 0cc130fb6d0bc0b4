package stack_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nustack/nu/failure"
	"github.com/nustack/nu/stack"
	"github.com/nustack/nu/value"
)

func TestPushPop(t *testing.T) {
	var s stack.Stack
	s.Push(value.NewInt(1))
	s.Push(value.NewInt(2))
	assert.Equal(t, 2, s.Len())

	v, err := s.Pop()
	require.NoError(t, err)
	assert.Equal(t, value.NewInt(2), v)
	assert.Equal(t, 1, s.Len())
}

func TestPopEmptyUnderflows(t *testing.T) {
	var s stack.Stack
	_, err := s.Pop()
	require.Error(t, err)
	f, ok := failure.As(err)
	require.True(t, ok)
	assert.Equal(t, failure.StackUnderflow, f.Kind)
}

func TestPopNOrder(t *testing.T) {
	var s stack.Stack
	s.Push(value.NewInt(1))
	s.Push(value.NewInt(2))
	s.Push(value.NewInt(3))

	vs, err := s.PopN(2)
	require.NoError(t, err)
	assert.Equal(t, value.NewInt(2), vs[0])
	assert.Equal(t, value.NewInt(3), vs[1])
	assert.Equal(t, 1, s.Len())
}

func TestPopNUnderflow(t *testing.T) {
	var s stack.Stack
	s.Push(value.NewInt(1))
	_, err := s.PopN(2)
	require.Error(t, err)
}

func TestPeekDoesNotPop(t *testing.T) {
	var s stack.Stack
	s.Push(value.NewInt(9))
	v, err := s.Peek()
	require.NoError(t, err)
	assert.Equal(t, value.NewInt(9), v)
	assert.Equal(t, 1, s.Len())
}

func TestTruncateCollectsFromMark(t *testing.T) {
	var s stack.Stack
	s.Push(value.NewInt(1))
	mark := s.Len()
	s.Push(value.NewInt(2))
	s.Push(value.NewInt(3))

	collected := s.Truncate(mark)
	assert.Equal(t, []value.Value{value.NewInt(2), value.NewInt(3)}, collected)
	assert.Equal(t, 1, s.Len())
}

func TestDepthIsACopy(t *testing.T) {
	var s stack.Stack
	s.Push(value.NewInt(1))
	d := s.Depth()
	s.Push(value.NewInt(2))
	assert.Len(t, d, 1)
	assert.Equal(t, 2, s.Len())
}
