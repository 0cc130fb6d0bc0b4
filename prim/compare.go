package prim

import (
	"github.com/nustack/nu/failure"
	"github.com/nustack/nu/value"
)

func installCompare(bind func(value.NativeFunc, ...string)) {
	bind(eq, "=", "eq")
	bind(lt, "<", "lt")
	bind(gt, ">", "gt")
	bind(not, "not")
	bind(or, "or", "|")
	bind(and, "and", "&")
}

// eq (a b -- bool): never raises (spec.md §4.H).
func eq(arg interface{}) error {
	in, err := asInterp(arg)
	if err != nil {
		return err
	}
	vs, err := in.Stack.PopN(2)
	if err != nil {
		return err
	}
	in.Stack.Push(value.NewBool(value.Equal(vs[0], vs[1])))
	return nil
}

// lt (a b -- bool): false on an incompatible pair rather than raising
// (spec.md §4.H; resolved in favor of value.Less's documented behavior --
// see DESIGN.md).
func lt(arg interface{}) error {
	in, err := asInterp(arg)
	if err != nil {
		return err
	}
	vs, err := in.Stack.PopN(2)
	if err != nil {
		return err
	}
	in.Stack.Push(value.NewBool(value.Less(vs[0], vs[1])))
	return nil
}

// gt (a b -- bool)
func gt(arg interface{}) error {
	in, err := asInterp(arg)
	if err != nil {
		return err
	}
	vs, err := in.Stack.PopN(2)
	if err != nil {
		return err
	}
	in.Stack.Push(value.NewBool(value.Less(vs[1], vs[0])))
	return nil
}

// not (a -- bool)
func not(arg interface{}) error {
	in, err := asInterp(arg)
	if err != nil {
		return err
	}
	v, err := in.Stack.Pop()
	if err != nil {
		return err
	}
	b, ok := v.Truthy()
	if !ok {
		return failure.New(failure.TypeMismatch)
	}
	in.Stack.Push(value.NewBool(!b))
	return nil
}

// or (a b -- any): pushes an any-tagged bool rather than a bool-tagged one
// (spec.md §9 open question, pinned to match the original Python's
// lit_any result -- see DESIGN.md).
func or(arg interface{}) error {
	return logicOp(arg, func(a, b bool) bool { return a || b })
}

// and (a b -- any)
func and(arg interface{}) error {
	return logicOp(arg, func(a, b bool) bool { return a && b })
}

func logicOp(arg interface{}, op func(a, b bool) bool) error {
	in, err := asInterp(arg)
	if err != nil {
		return err
	}
	vs, err := in.Stack.PopN(2)
	if err != nil {
		return err
	}
	a, ok := vs[0].Truthy()
	if !ok {
		return failure.New(failure.TypeMismatch)
	}
	b, ok := vs[1].Truthy()
	if !ok {
		return failure.New(failure.TypeMismatch)
	}
	in.Stack.Push(value.NewAny(op(a, b)))
	return nil
}
