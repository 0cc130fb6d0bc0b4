package prim

import (
	"github.com/nustack/nu/failure"
	"github.com/nustack/nu/value"
)

func installBind(bind func(value.NativeFunc, ...string)) {
	bind(define, "define", "def")
	bind(lookup, "lookup")
	bind(call, "call")
}

// define (value name-symbol -- ): value is pushed first, then the
// name-symbol, so the name is the top of the two operands popped (spec.md
// §4.H). Writes unconditionally into the innermost frame.
func define(arg interface{}) error {
	in, err := asInterp(arg)
	if err != nil {
		return err
	}
	vs, err := in.Stack.PopN(2)
	if err != nil {
		return err
	}
	val, name := vs[0], vs[1]
	if name.Tag != value.Symbol {
		return failure.New(failure.TypeMismatch)
	}
	in.Scope.Assign(name.Str, val)
	return nil
}

// lookup (name-symbol -- value)
func lookup(arg interface{}) error {
	in, err := asInterp(arg)
	if err != nil {
		return err
	}
	name, err := in.Stack.Pop()
	if err != nil {
		return err
	}
	if name.Tag != value.Symbol {
		return failure.New(failure.TypeMismatch)
	}
	v, err := in.Scope.Lookup(name.Str)
	if err != nil {
		return err
	}
	in.Stack.Push(v)
	return nil
}

// call (callable -- ...): pops a code or native Value and evaluates or
// invokes it against the same stack and scope.
func call(arg interface{}) error {
	in, err := asInterp(arg)
	if err != nil {
		return err
	}
	v, err := in.Stack.Pop()
	if err != nil {
		return err
	}
	if v.Tag != value.Code && v.Tag != value.Native {
		return failure.New(failure.TypeMismatch)
	}
	return in.Call(v)
}
