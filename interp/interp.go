// Package interp implements the dispatch-loop evaluator of spec.md §4.E:
// an Interpreter owns one operand stack, one scope chain, argv, a current
// directory, and (per the REDESIGN FLAG in spec.md §9) its own break flag,
// rather than a process-wide global.
//
// The overall shape -- a struct built up through functional Options, with
// embedded io/logging concerns -- follows the teacher's own VM/options.go
// construction in jcorbin/gothird.
package interp

import (
	"io"
	"io/ioutil"

	"github.com/nustack/nu/internal/fileinput"
	"github.com/nustack/nu/internal/flushio"
	"github.com/nustack/nu/scope"
	"github.com/nustack/nu/stack"
)

// Interpreter is one instance of the evaluation engine (spec.md §3
// "Interpreter instance"). Instances are independently constructable; the
// module loader creates a fresh one per imported source file so that
// imports cannot observe or mutate the importer's stack or scopes.
type Interpreter struct {
	Stack stack.Stack
	Scope *scope.Chain

	Argv []string
	Dir  string

	breaking bool // per-instance break flag; see spec.md §5 REDESIGN FLAG

	fileinput.Input
	out     flushio.WriteFlusher
	closers []io.Closer

	logf func(mark, mess string, args ...interface{})
}

// New builds an Interpreter with the given options applied over sane
// defaults (discard output, no input queued, argv == ["<<INTERACTIVE>>"]).
func New(opts ...Option) *Interpreter {
	in := &Interpreter{
		Scope: scope.New(),
		Argv:  []string{"<<INTERACTIVE>>"},
		Dir:   ".",
		out:   flushio.NewWriteFlusher(ioutil.Discard),
	}
	for _, opt := range opts {
		opt.apply(in)
	}
	return in
}

// Close flushes output and closes every registered closer, innermost-opened
// first -- the same order gothird's Core.Close uses.
func (in *Interpreter) Close() error {
	var err error
	if ferr := in.out.Flush(); err == nil {
		err = ferr
	}
	for i := len(in.closers) - 1; i >= 0; i-- {
		if cerr := in.closers[i].Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// SetBreak and ClearBreak implement the REDESIGN FLAG break scope: the flag
// lives on this Interpreter only, so it cannot cross into (or in from) a
// separately-constructed Interpreter created for a module import.
func (in *Interpreter) SetBreak()       { in.breaking = true }
func (in *Interpreter) ClearBreak()     { in.breaking = false }
func (in *Interpreter) Breaking() bool  { return in.breaking }

// PopBreak reports whether a break is pending and clears it in one step, the
// check every iteration word performs before each new iteration (spec.md §5).
func (in *Interpreter) PopBreak() bool {
	if in.breaking {
		in.breaking = false
		return true
	}
	return false
}

// GetStack exposes the operand stack, so a native extension package (which
// takes its interpreter argument as interface{} to avoid importing package
// interp, per value.NativeFunc) can reach it via a small local interface
// instead of a type assertion back to *Interpreter.
func (in *Interpreter) GetStack() *stack.Stack { return &in.Stack }
