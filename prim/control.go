package prim

import (
	"github.com/nustack/nu/failure"
	"github.com/nustack/nu/value"
)

func installControl(bind func(value.NativeFunc, ...string)) {
	bind(ifWord, "if")
	bind(cond, "cond")
}

// if (b t f -- ...): evaluates t if b is truthy, else f.
func ifWord(arg interface{}) error {
	in, err := asInterp(arg)
	if err != nil {
		return err
	}
	vs, err := in.Stack.PopN(3)
	if err != nil {
		return err
	}
	b, t, f := vs[0], vs[1], vs[2]
	truthy, ok := b.Truthy()
	if !ok {
		return failure.New(failure.TypeMismatch)
	}
	if truthy {
		return in.Call(t)
	}
	return in.Call(f)
}

// cond (pairs -- ...): pairs is a list of 2-element [test, body] lists.
// Each test is evaluated in turn; the first whose result is truthy has its
// body evaluated and cond stops. No match falls through silently (spec.md
// §9, preserved exactly).
func cond(arg interface{}) error {
	in, err := asInterp(arg)
	if err != nil {
		return err
	}
	pairs, err := in.Stack.Pop()
	if err != nil {
		return err
	}
	if pairs.Tag != value.List {
		return failure.New(failure.TypeMismatch)
	}
	for _, pair := range pairs.List {
		if pair.Tag != value.List || len(pair.List) != 2 {
			return failure.New(failure.TypeMismatch)
		}
		test, body := pair.List[0], pair.List[1]
		if err := in.Call(test); err != nil {
			return err
		}
		result, err := in.Stack.Pop()
		if err != nil {
			return err
		}
		truthy, ok := result.Truthy()
		if !ok {
			return failure.New(failure.TypeMismatch)
		}
		if truthy {
			return in.Call(body)
		}
	}
	return nil
}
