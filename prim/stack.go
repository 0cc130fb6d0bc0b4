package prim

import "github.com/nustack/nu/value"

// installStack registers swap/drop/dup/over/rot, each documented by its
// stack-effect diagram per spec.md §4.H.
func installStack(bind func(value.NativeFunc, ...string)) {
	bind(swap, "swap")
	bind(drop, "drop")
	bind(dup, "dup")
	bind(over, "over")
	bind(rot, "rot")
}

// swap (a b -- b a)
func swap(arg interface{}) error {
	in, err := asInterp(arg)
	if err != nil {
		return err
	}
	vs, err := in.Stack.PopN(2)
	if err != nil {
		return err
	}
	in.Stack.PushN(vs[1], vs[0])
	return nil
}

// drop (a -- )
func drop(arg interface{}) error {
	in, err := asInterp(arg)
	if err != nil {
		return err
	}
	_, err = in.Stack.Pop()
	return err
}

// dup (a -- a a)
func dup(arg interface{}) error {
	in, err := asInterp(arg)
	if err != nil {
		return err
	}
	v, err := in.Stack.Peek()
	if err != nil {
		return err
	}
	in.Stack.Push(v)
	return nil
}

// over (a b -- a b a)
func over(arg interface{}) error {
	in, err := asInterp(arg)
	if err != nil {
		return err
	}
	vs, err := in.Stack.PopN(2)
	if err != nil {
		return err
	}
	in.Stack.PushN(vs[0], vs[1], vs[0])
	return nil
}

// rot (a b c -- b c a)
func rot(arg interface{}) error {
	in, err := asInterp(arg)
	if err != nil {
		return err
	}
	vs, err := in.Stack.PopN(3)
	if err != nil {
		return err
	}
	in.Stack.PushN(vs[1], vs[2], vs[0])
	return nil
}
