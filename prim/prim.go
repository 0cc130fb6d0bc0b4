// Package prim registers the primitive word set of spec.md §4.H directly
// into an Interpreter's outermost scope frame: the minimum surface needed
// to self-host everything else.
package prim

import (
	"github.com/nustack/nu/failure"
	"github.com/nustack/nu/interp"
	"github.com/nustack/nu/loader"
	"github.com/nustack/nu/value"
)

// Install binds every primitive word into in's outermost frame, the way a
// freshly-built Interpreter is expected to be seeded before running any
// source (spec.md's "minimum viable surface"). ld resolves `import`/
// `import*`; callers share one Loader across every Interpreter they build
// so the native-module registry and any custom registrations are visible
// everywhere.
func Install(in *interp.Interpreter, ld *loader.Loader) {
	frame := in.Scope.Outermost()

	bind := func(fn value.NativeFunc, names ...string) {
		for _, name := range names {
			frame[name] = value.NewNative(name, fn)
		}
	}

	installStack(bind)
	installArith(bind)
	installCompare(bind)
	installConvert(bind)
	installBind(bind)
	installIO(bind)
	installControl(bind)
	installIteration(bind)
	installFailure(bind)
	installModule(bind, ld)
	installIntrospect(bind)

	ld.SetBootstrap(func(fresh *interp.Interpreter) { Install(fresh, ld) })
}

// asInterp recovers the concrete *interp.Interpreter a NativeFunc is
// invoked with; value.NativeFunc types its argument as interface{} solely
// to avoid package value importing package interp.
func asInterp(in interface{}) (*interp.Interpreter, error) {
	i, ok := in.(*interp.Interpreter)
	if !ok {
		return nil, failure.New(failure.TypeMismatch)
	}
	return i, nil
}
