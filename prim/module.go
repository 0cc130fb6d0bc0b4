package prim

import (
	"github.com/nustack/nu/failure"
	"github.com/nustack/nu/loader"
	"github.com/nustack/nu/value"
)

func installModule(bind func(value.NativeFunc, ...string), ld *loader.Loader) {
	bind(func(arg interface{}) error { return doImport(arg, ld, false) }, "import", "imp")
	bind(func(arg interface{}) error { return doImport(arg, ld, true) }, "import*", "imp*")
}

// doImport implements both `import`/`imp` (bind under the path's first
// segment, per loader.Bind) and `import*`/`imp*` (merge top-level entries,
// per loader.BindAll), following spec.md §4.G.
func doImport(arg interface{}, ld *loader.Loader, all bool) error {
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
	segs, contents, err := ld.Import(in, name.Str)
	if err != nil {
		return err
	}
	if all {
		loader.BindAll(in.Scope, contents)
	} else {
		loader.Bind(in.Scope, segs, contents)
	}
	return nil
}
