package prim

import "github.com/nustack/nu/value"

func installIntrospect(bind func(value.NativeFunc, ...string)) {
	bind(argv, "argv")
}

// argv ( -- list): pushes the interpreter's argv vector as a list of
// strings, first element the script path or "<<INTERACTIVE>>" (spec.md §6.2).
func argv(arg interface{}) error {
	in, err := asInterp(arg)
	if err != nil {
		return err
	}
	out := make([]value.Value, len(in.Argv))
	for i, s := range in.Argv {
		out[i] = value.NewString(s)
	}
	in.Stack.Push(value.NewList(out))
	return nil
}
