// Package ext implements the native-extension registry of spec.md §4.F: a
// Module is a host-provided table of named native words, built once per
// process and read-only after construction.
package ext

import "github.com/nustack/nu/value"

// entry is one registered word: its canonical signature and doc string
// (used only by an external documentation generator, per spec.md §4.F) plus
// the callable itself.
type entry struct {
	signature string
	doc       string
	fn        value.NativeFunc
}

// Module is a host-provided table of named native words and constants,
// exposed under a display Name (spec.md's GLOSSARY "Module").
type Module struct {
	Name      string
	entries   map[string]entry
	constants map[string]value.Value
	order     []string // registration order, for Words()
}

// New constructs an empty Module. All registration must happen before the
// Module is published (handed to a loader or wrapped as Values); nothing
// guards against registering afterwards, but the contract is read-only from
// then on.
func New(name string) *Module {
	return &Module{
		Name:      name,
		entries:   make(map[string]entry),
		constants: make(map[string]value.Value),
	}
}

// Register binds fn under name and any additional aliases, all pointing at
// the same callable, the way the Python original's `@module.register("+",
// "add")` registers one function under two names (nustack/stdlib/builtins.py).
func (m *Module) Register(signature, doc string, fn value.NativeFunc, names ...string) {
	e := entry{signature: signature, doc: doc, fn: fn}
	for _, name := range names {
		if _, exists := m.entries[name]; !exists {
			m.order = append(m.order, name)
		}
		m.entries[name] = e
	}
}

// RegisterValue binds a plain (non-callable) Value under name, for constant
// tables like String's ascii_letters (spec.md §4 SUPPLEMENTED FEATURES).
func (m *Module) RegisterValue(name string, v value.Value) {
	if _, exists := m.constants[name]; !exists {
		m.order = append(m.order, name)
	}
	m.constants[name] = v
}

// Lookup resolves name to a callable or constant Value, wrapping a callable
// entry as a Native-tagged Value so the loader can bind it the same way it
// binds any other word.
func (m *Module) Lookup(name string) (value.Value, bool) {
	if e, ok := m.entries[name]; ok {
		return value.NewNative(m.Name+"."+name, e.fn), true
	}
	if v, ok := m.constants[name]; ok {
		return v, true
	}
	return value.Value{}, false
}

// Words returns every registered name in registration order, for
// introspection (`import*` uses it to list a module's contents).
func (m *Module) Words() []string {
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

// Get implements value.Scoper so a Module can be wrapped directly as a
// ScopeRef-tagged Value (the host namespace a native extension is reached
// through, e.g. nu_ext.Time, per spec.md §4 SUPPLEMENTED FEATURES).
func (m *Module) Get(name string) (value.Value, bool) {
	return m.Lookup(name)
}
