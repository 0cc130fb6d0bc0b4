// Package stack implements the operand stack: a LIFO of value.Value with
// bulk-pop support (spec.md §4.C).
package stack

import (
	"github.com/nustack/nu/failure"
	"github.com/nustack/nu/value"
)

// Stack is a LIFO of value.Value. The zero value is an empty, usable Stack.
type Stack struct {
	vs []value.Value
}

// Push pushes one value.
func (s *Stack) Push(v value.Value) { s.vs = append(s.vs, v) }

// PushN pushes several values in argument order (bottom-most first).
func (s *Stack) PushN(vs ...value.Value) { s.vs = append(s.vs, vs...) }

// Len reports the current depth.
func (s *Stack) Len() int { return len(s.vs) }

// Pop pops the top value, failing with StackUnderflow on an empty stack.
func (s *Stack) Pop() (value.Value, error) {
	if len(s.vs) == 0 {
		return value.Value{}, failure.New(failure.StackUnderflow)
	}
	i := len(s.vs) - 1
	v := s.vs[i]
	s.vs = s.vs[:i]
	return v, nil
}

// PopN pops the top n values, returning them in the order they were pushed
// (bottom-most of the popped group first), per spec.md §4.C.
func (s *Stack) PopN(n int) ([]value.Value, error) {
	if len(s.vs) < n {
		return nil, failure.New(failure.StackUnderflow)
	}
	i := len(s.vs) - n
	out := make([]value.Value, n)
	copy(out, s.vs[i:])
	s.vs = s.vs[:i]
	return out, nil
}

// Peek returns the top value without popping it.
func (s *Stack) Peek() (value.Value, error) {
	if len(s.vs) == 0 {
		return value.Value{}, failure.New(failure.StackUnderflow)
	}
	return s.vs[len(s.vs)-1], nil
}

// Depth returns the current stack contents, bottom-first, for inspection
// and test assertions. The returned slice is a copy.
func (s *Stack) Depth() []value.Value {
	out := make([]value.Value, len(s.vs))
	copy(out, s.vs)
	return out
}

// Truncate drops the stack back to depth n, used by list materialization
// (spec.md §4.E) to collect everything pushed since a list-start mark.
func (s *Stack) Truncate(n int) []value.Value {
	collected := make([]value.Value, len(s.vs)-n)
	copy(collected, s.vs[n:])
	s.vs = s.vs[:n]
	return collected
}
