// Package loader implements the module loader of spec.md §4.G: resolving an
// import symbol to either a freshly-evaluated source file or a host-native
// extension module, and binding the result into a caller's scope per the
// spec's binding policy.
package loader

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/xyproto/env/v2"

	"github.com/nustack/nu/ext"
	"github.com/nustack/nu/ext/clock"
	"github.com/nustack/nu/failure"
	"github.com/nustack/nu/interp"
	"github.com/nustack/nu/internal/panicerr"
	"github.com/nustack/nu/scope"
	"github.com/nustack/nu/stdlib"
	"github.com/nustack/nu/value"
)

// NUStackPath is the environment variable holding host-path-separated
// search roots (spec.md §3).
const NUStackPath = "NUSTACKPATH"

// contents is what a resolved import yields: something a caller can both
// wrap as a value.Scoper (for chained member access) and enumerate (for
// import*'s top-level merge).
type contents interface {
	value.Scoper
	names() []string
}

// refContents adapts *scope.Ref (an evaluated source file's outermost
// frame) to contents.
type refContents struct{ *scope.Ref }

func (r refContents) names() []string { return r.Ref.Names() }

// moduleContents adapts *ext.Module (a host-native namespace) to contents.
type moduleContents struct{ *ext.Module }

func (m moduleContents) names() []string { return m.Module.Words() }

// Loader resolves import symbols against a fixed set of host-native
// modules plus the filesystem search path. The zero value is not usable;
// use New.
type Loader struct {
	registry  map[string]*ext.Module
	bootstrap func(*interp.Interpreter)
}

// New builds a Loader with the native modules this distribution ships:
// nu_ext.Time (ext/clock, a demonstration extension) and std.String
// (stdlib, the self-contained string-utility module ported from the
// original's native String module).
func New() *Loader {
	l := &Loader{registry: make(map[string]*ext.Module)}
	l.Register("nu_ext.Time", clock.Module())
	l.Register("std.String", stdlib.StringModule())
	return l
}

// Register adds or replaces a host-native module under a fully-qualified
// registry key (e.g. "nu_ext.Time" or "std.String"), letting an embedding
// program extend the native-loader fallback chain beyond the bundled set.
func (l *Loader) Register(key string, m *ext.Module) {
	l.registry[key] = m
}

// SetBootstrap registers the hook invoked on every fresh Interpreter a
// source-file import creates, so an imported module sees the same
// primitive word set as its importer. Indirection instead of a direct
// dependency: package prim already imports package loader to wire
// import/import*, so loader cannot import prim back without a cycle.
// Callers wire this once, right after building both: ld.SetBootstrap(func(in
// *interp.Interpreter) { prim.Install(in, ld) }).
func (l *Loader) SetBootstrap(fn func(*interp.Interpreter)) {
	l.bootstrap = fn
}

// Import resolves dotted (the symbol popped by `import`/`import*`,
// including any leading "std::") against in's current directory and
// NUSTACKPATH, then against the native registry, following spec.md §4.G's
// five-step strategy. It returns the dotted path's segments (with any
// "std::" prefix stripped) and the resolved contents.
func (l *Loader) Import(in *interp.Interpreter, dotted string) ([]string, value.Scoper, error) {
	stdForced := strings.HasPrefix(dotted, "std::")
	rest := strings.TrimPrefix(dotted, "std::")
	segs := strings.Split(rest, "::")
	if rest == "" || len(segs) == 0 {
		return nil, nil, failure.New(failure.ImportError)
	}

	if !stdForced {
		if c, err := l.resolveSource(in, segs); err == nil {
			return segs, c, nil
		}
	}

	nativeName := strings.Join(segs, ".")
	var keys []string
	if !stdForced {
		keys = append(keys, "nu_ext."+nativeName, "nu_ext_"+nativeName)
	}
	keys = append(keys, "std."+nativeName)

	for _, key := range keys {
		if m, ok := l.registry[key]; ok {
			return segs, moduleContents{m}, nil
		}
	}
	return nil, nil, failure.New(failure.ImportError)
}

// resolveSource searches in.Dir followed by NUSTACKPATH's entries for
// <root>/<seg1>/.../<segN>.nu, evaluating the first hit in a fresh
// Interpreter (spec.md §4.G step 4, §4.E "used by the module loader").
func (l *Loader) resolveSource(in *interp.Interpreter, segs []string) (contents, error) {
	rel := filepath.Join(segs...) + ".nu"
	roots := append([]string{in.Dir}, filepath.SplitList(env.Str(NUStackPath, ""))...)

	for _, root := range roots {
		if root == "" {
			continue
		}
		path := filepath.Join(root, rel)
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		ref, err := l.runSource(string(data), filepath.Dir(path))
		if err != nil {
			return nil, err
		}
		return refContents{ref}, nil
	}
	return nil, failure.New(failure.ImportError)
}

// runSource evaluates source in a fresh Interpreter (spec.md §4.G: "each
// source-file import runs in a fresh interpreter instance so that imports
// cannot observe or mutate the importer's stack or scopes"), returning the
// resulting outermost frame wrapped as a scope-ref. l.bootstrap (when set)
// seeds the fresh instance with the same primitive words the importer has.
// The run itself is isolated with panicerr.Recover, mirroring gothird's own
// isolate/Recover pattern, so a Go panic or runtime.Goexit inside an
// imported module surfaces as a plain error at the import site. Go's own
// stack-overflow error is fatal and is not recovered; it still ends the
// process.
func (l *Loader) runSource(source, dir string) (*scope.Ref, error) {
	fresh := interp.New(interp.WithDir(dir))
	defer fresh.Close()
	if l.bootstrap != nil {
		l.bootstrap(fresh)
	}
	if err := panicerr.Recover(dir, func() error { return fresh.Run(source) }); err != nil {
		return nil, err
	}
	return scope.NewRef(fresh.Scope.Outermost()), nil
}

// Bind implements the single-name binding policy of spec.md §4.G: the
// loaded module is assigned under segs[0]; every additional segment is
// wrapped in a one-key scope-ref so that a chained "a::b::c" call resolves
// by walking Get on each intermediate wrapper.
func Bind(ch *scope.Chain, segs []string, c value.Scoper) {
	v := value.NewScopeRef(c)
	for i := len(segs) - 1; i >= 1; i-- {
		v = value.NewScopeRef(scope.OneKey(segs[i], v))
	}
	ch.Assign(segs[0], v)
}

// BindAll implements import*'s merge policy: every top-level entry of the
// loaded module's contents is assigned directly into ch, overwriting on
// conflict (spec.md §4.G).
func BindAll(ch *scope.Chain, c value.Scoper) {
	names, ok := c.(contents)
	if !ok {
		return
	}
	for _, name := range names.names() {
		if v, ok := c.Get(name); ok {
			ch.Assign(name, v)
		}
	}
}
