// Package clock is a demonstration native extension, registered under the
// host namespace nu_ext.Time. It shows what a third-party Go package can
// add to the word set without touching the core evaluator: two words, a
// wall-clock reading and a blocking sleep.
package clock

import (
	"time"

	"github.com/nustack/nu/ext"
	"github.com/nustack/nu/failure"
	"github.com/nustack/nu/stack"
	"github.com/nustack/nu/value"
)

// hasStack is the minimal surface clock's words need from an interpreter.
// NativeFunc carries its interpreter argument as interface{} to avoid
// package interp importing any native extension (see value.NativeFunc), so
// words recover the concrete operand stack through this assertion instead
// of depending on package interp directly.
type hasStack interface {
	GetStack() *stack.Stack
}

// Module builds the nu_ext.Time namespace: `now` pushes the current Unix
// time in fractional seconds as a float; `sleep.ms` pops a numeric
// millisecond count and blocks the calling goroutine for that long.
func Module() *ext.Module {
	m := ext.New("Time")
	m.Register("( -- t)", "Seconds since the Unix epoch, as a float.", now, "now")
	m.Register("(ms -- )", "Blocks the interpreter for ms milliseconds.", sleepMS, "sleep.ms")
	return m
}

func now(in interface{}) error {
	s, ok := in.(hasStack)
	if !ok {
		return failure.New(failure.TypeMismatch)
	}
	s.GetStack().Push(value.NewFloat(float64(time.Now().UnixNano()) / 1e9))
	return nil
}

func sleepMS(in interface{}) error {
	s, ok := in.(hasStack)
	if !ok {
		return failure.New(failure.TypeMismatch)
	}
	v, err := s.GetStack().Pop()
	if err != nil {
		return err
	}
	ms, ok := v.AsFloat()
	if !ok {
		return failure.New(failure.TypeMismatch)
	}
	time.Sleep(time.Duration(ms * float64(time.Millisecond)))
	return nil
}
