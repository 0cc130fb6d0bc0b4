package prim

import (
	"github.com/nustack/nu/failure"
	"github.com/nustack/nu/value"
)

// Stack diagrams for the iteration words are not pinned character-for-
// character by spec.md §4.H (only if/cond get an explicit diagram there);
// the choices below follow the same "operands appear left to right in
// source, in push order" convention if/cond already commit to, and are
// pinned by this package's own tests rather than by reverse-engineering
// the ambiguous §8 while scenario (see DESIGN.md).
func installIteration(bind func(value.NativeFunc, ...string)) {
	bind(forEach, "for.each")
	bind(repeatN, "repeat.n")
	bind(mapWord, "map")
	bind(filterWord, "filter")
	bind(reduceWord, "reduce")
	bind(forever, "forever")
	bind(whileWord, "while")
	bind(doWhile, "do.while")
	bind(breakWord, "break")
}

// break ( -- ): requests the nearest enclosing iteration word on this
// Interpreter stop before its next check (spec.md §5 REDESIGN FLAG: scoped
// per Interpreter, not process-wide).
func breakWord(arg interface{}) error {
	in, err := asInterp(arg)
	if err != nil {
		return err
	}
	in.SetBreak()
	return nil
}

// forever (body -- ...): calls body repeatedly until break.
func forever(arg interface{}) error {
	in, err := asInterp(arg)
	if err != nil {
		return err
	}
	body, err := in.Stack.Pop()
	if err != nil {
		return err
	}
	for {
		if in.PopBreak() {
			return nil
		}
		if err := in.Call(body); err != nil {
			return err
		}
	}
}

// while (body test -- ...): checks test before each iteration (including
// the first), stopping when it yields false or on break.
func whileWord(arg interface{}) error {
	in, err := asInterp(arg)
	if err != nil {
		return err
	}
	vs, err := in.Stack.PopN(2)
	if err != nil {
		return err
	}
	body, test := vs[0], vs[1]
	for {
		if in.PopBreak() {
			return nil
		}
		if err := in.Call(test); err != nil {
			return err
		}
		cond, err := in.Stack.Pop()
		if err != nil {
			return err
		}
		truthy, ok := cond.Truthy()
		if !ok {
			return failure.New(failure.TypeMismatch)
		}
		if !truthy {
			return nil
		}
		if err := in.Call(body); err != nil {
			return err
		}
	}
}

// do.while (body test -- ...): runs body at least once, then repeats while
// test yields true.
func doWhile(arg interface{}) error {
	in, err := asInterp(arg)
	if err != nil {
		return err
	}
	vs, err := in.Stack.PopN(2)
	if err != nil {
		return err
	}
	body, test := vs[0], vs[1]
	for {
		if in.PopBreak() {
			return nil
		}
		if err := in.Call(body); err != nil {
			return err
		}
		if err := in.Call(test); err != nil {
			return err
		}
		cond, err := in.Stack.Pop()
		if err != nil {
			return err
		}
		truthy, ok := cond.Truthy()
		if !ok {
			return failure.New(failure.TypeMismatch)
		}
		if !truthy {
			return nil
		}
	}
}

// repeat.n (n body -- ...): calls body n times, or until break.
func repeatN(arg interface{}) error {
	in, err := asInterp(arg)
	if err != nil {
		return err
	}
	vs, err := in.Stack.PopN(2)
	if err != nil {
		return err
	}
	n, body := vs[0], vs[1]
	if n.Tag != value.Int {
		return failure.New(failure.TypeMismatch)
	}
	count := n.Int.Int64()
	for i := int64(0); i < count; i++ {
		if in.PopBreak() {
			return nil
		}
		if err := in.Call(body); err != nil {
			return err
		}
	}
	return nil
}

// for.each (list body -- ): calls body once per element, with the element
// pushed just before the call; body's own effects (if any) are its own
// business, for.each collects nothing.
func forEach(arg interface{}) error {
	in, err := asInterp(arg)
	if err != nil {
		return err
	}
	vs, err := in.Stack.PopN(2)
	if err != nil {
		return err
	}
	list, body := vs[0], vs[1]
	if list.Tag != value.List {
		return failure.New(failure.TypeMismatch)
	}
	for _, e := range list.List {
		if in.PopBreak() {
			return nil
		}
		in.Stack.Push(e)
		if err := in.Call(body); err != nil {
			return err
		}
	}
	return nil
}

// map (list body -- result-list): pushes each element, calls body, and
// collects whatever body leaves on top as that element's result.
func mapWord(arg interface{}) error {
	in, err := asInterp(arg)
	if err != nil {
		return err
	}
	vs, err := in.Stack.PopN(2)
	if err != nil {
		return err
	}
	list, body := vs[0], vs[1]
	if list.Tag != value.List {
		return failure.New(failure.TypeMismatch)
	}
	out := make([]value.Value, 0, len(list.List))
	for _, e := range list.List {
		if in.PopBreak() {
			break
		}
		in.Stack.Push(e)
		if err := in.Call(body); err != nil {
			return err
		}
		r, err := in.Stack.Pop()
		if err != nil {
			return err
		}
		out = append(out, r)
	}
	in.Stack.Push(value.NewList(out))
	return nil
}

// filter (list body -- result-list): keeps elements for which body leaves
// a truthy result.
func filterWord(arg interface{}) error {
	in, err := asInterp(arg)
	if err != nil {
		return err
	}
	vs, err := in.Stack.PopN(2)
	if err != nil {
		return err
	}
	list, body := vs[0], vs[1]
	if list.Tag != value.List {
		return failure.New(failure.TypeMismatch)
	}
	out := make([]value.Value, 0, len(list.List))
	for _, e := range list.List {
		if in.PopBreak() {
			break
		}
		in.Stack.Push(e)
		if err := in.Call(body); err != nil {
			return err
		}
		r, err := in.Stack.Pop()
		if err != nil {
			return err
		}
		truthy, ok := r.Truthy()
		if !ok {
			return failure.New(failure.TypeMismatch)
		}
		if truthy {
			out = append(out, e)
		}
	}
	in.Stack.Push(value.NewList(out))
	return nil
}

// reduce (list seed body -- acc): folds left starting from the explicit
// seed operand; body is called with the running accumulator pushed, then
// the next element, and must leave the new accumulator on top. An empty
// list simply returns the seed unchanged, matching the original's
// seq, start, code = env.stack.popN(3).
func reduceWord(arg interface{}) error {
	in, err := asInterp(arg)
	if err != nil {
		return err
	}
	vs, err := in.Stack.PopN(3)
	if err != nil {
		return err
	}
	list, seed, body := vs[0], vs[1], vs[2]
	if list.Tag != value.List {
		return failure.New(failure.TypeMismatch)
	}
	acc := seed
	for _, e := range list.List {
		if in.PopBreak() {
			break
		}
		in.Stack.Push(acc)
		in.Stack.Push(e)
		if err := in.Call(body); err != nil {
			return err
		}
		acc, err = in.Stack.Pop()
		if err != nil {
			return err
		}
	}
	in.Stack.Push(acc)
	return nil
}
