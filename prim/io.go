package prim

import (
	"fmt"

	"github.com/nustack/nu/value"
)

func installIO(bind func(value.NativeFunc, ...string)) {
	bind(show, "show")
	bind(peek, "peek")
	bind(showRepr, "show.repr")
	bind(peekRepr, "peek.repr")
	bind(input, "input", "in")
	bind(showScopes, "show.scopes")
}

// show (a -- ): pops and writes a's display form followed by a newline.
func show(arg interface{}) error {
	in, err := asInterp(arg)
	if err != nil {
		return err
	}
	v, err := in.Stack.Pop()
	if err != nil {
		return err
	}
	return in.WriteString(v.String() + "\n")
}

// peek (a -- a): writes without popping.
func peek(arg interface{}) error {
	in, err := asInterp(arg)
	if err != nil {
		return err
	}
	v, err := in.Stack.Peek()
	if err != nil {
		return err
	}
	return in.WriteString(v.String() + "\n")
}

// show.repr (a -- ): pops and writes "<kind>: <display>".
func showRepr(arg interface{}) error {
	in, err := asInterp(arg)
	if err != nil {
		return err
	}
	v, err := in.Stack.Pop()
	if err != nil {
		return err
	}
	return in.WriteString(v.Repr() + "\n")
}

// peek.repr (a -- a)
func peekRepr(arg interface{}) error {
	in, err := asInterp(arg)
	if err != nil {
		return err
	}
	v, err := in.Stack.Peek()
	if err != nil {
		return err
	}
	return in.WriteString(v.Repr() + "\n")
}

// input / in (prompt -- s): pops prompt, writes it without a trailing
// newline, then reads one line from the configured input queue, matching
// the original's a = env.stack.pop().val; s = input(a).
func input(arg interface{}) error {
	in, err := asInterp(arg)
	if err != nil {
		return err
	}
	prompt, err := in.Stack.Pop()
	if err != nil {
		return err
	}
	if err := in.WriteString(prompt.String()); err != nil {
		return err
	}
	if err := in.Flush(); err != nil {
		return err
	}
	line, err := in.ReadLine()
	if err != nil {
		return err
	}
	in.Stack.Push(value.NewString(line))
	return nil
}

// show.scopes ( -- ): writes every frame of the scope chain, outermost
// first, for interactive debugging.
func showScopes(arg interface{}) error {
	in, err := asInterp(arg)
	if err != nil {
		return err
	}
	frames := in.Scope.Frames()
	for i, f := range frames {
		if err := in.WriteString(fmt.Sprintf("-- frame %d --\n", i)); err != nil {
			return err
		}
		for name, v := range f {
			if err := in.WriteString(fmt.Sprintf("%s = %s\n", name, v.Repr())); err != nil {
				return err
			}
		}
	}
	return nil
}
