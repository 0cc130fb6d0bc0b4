// Package scope implements the layered name->value environment of spec.md
// §4.D: a non-empty stack of frames searched inner-to-outer, plus Ref, the
// read-only handle an imported module's outermost frame is wrapped as.
package scope

import (
	"github.com/nustack/nu/failure"
	"github.com/nustack/nu/value"
)

// Frame is one binding layer: identifier -> Value.
type Frame map[string]value.Value

// Chain is a non-empty stack of Frames. The zero value is not usable; use
// New.
type Chain struct {
	frames []Frame
}

// New returns a Chain with a single, empty root frame.
func New() *Chain {
	return &Chain{frames: []Frame{{}}}
}

// PushFrame pushes a fresh, empty frame, for a nested evaluation that
// should not pollute the outer binding set.
func (c *Chain) PushFrame() {
	c.frames = append(c.frames, Frame{})
}

// PopFrame pops the innermost frame. Callers must guarantee frames pushed
// around an evaluation are popped on every exit path, success or failure.
func (c *Chain) PopFrame() {
	if len(c.frames) > 1 {
		c.frames = c.frames[:len(c.frames)-1]
	}
}

// Assign writes to the innermost frame, overwriting any existing entry
// there (spec.md §4.D).
func (c *Chain) Assign(name string, v value.Value) {
	c.frames[len(c.frames)-1][name] = v
}

// Lookup searches inner-to-outer, failing with NameNotFound if no frame
// carries name.
func (c *Chain) Lookup(name string) (value.Value, error) {
	for i := len(c.frames) - 1; i >= 0; i-- {
		if v, ok := c.frames[i][name]; ok {
			return v, nil
		}
	}
	return value.Value{}, failure.New(failure.NameNotFound)
}

// Frames returns the frame stack, outermost first, for introspection words
// like show.scopes. The returned slice is the live backing array and must
// not be mutated by callers.
func (c *Chain) Frames() []Frame { return c.frames }

// Outermost returns the root frame, the one a module loader wraps as a Ref
// after evaluating an imported source file (spec.md §4.G).
func (c *Chain) Outermost() Frame { return c.frames[0] }

// Ref is a first-class handle to an evaluated module's outermost binding
// frame (spec.md's scope-ref Value variant and GLOSSARY). It implements
// value.Scoper.
type Ref struct {
	frame Frame
}

// NewRef wraps a frame as a read-only scope-ref.
func NewRef(f Frame) *Ref { return &Ref{frame: f} }

// Get implements value.Scoper: read-only member lookup, used for chained
// member access (a::b::c word) rather than as a normal call (spec.md §9).
func (r *Ref) Get(name string) (value.Value, bool) {
	v, ok := r.frame[name]
	return v, ok
}

// Names enumerates the bound names, used by import* to merge a module's
// top-level entries into the caller's scope (spec.md §4.G).
func (r *Ref) Names() []string {
	names := make([]string, 0, len(r.frame))
	for n := range r.frame {
		names = append(names, n)
	}
	return names
}

// OneKey wraps a single binding as its own scope-ref, used by the loader to
// model an intermediate path segment of a dotted import (spec.md §4.G
// binding policy: "each intermediate segment is wrapped in a one-key
// scope-ref").
func OneKey(name string, v value.Value) *Ref {
	return &Ref{frame: Frame{name: v}}
}
