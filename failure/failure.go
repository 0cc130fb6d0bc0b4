// Package failure implements the recoverable-failure model of spec.md §7:
// named kinds, matched by try against a declared class chain.
package failure

import (
	"fmt"

	"github.com/nustack/nu/value"
)

// Core kinds named by spec.md §7.
const (
	StackUnderflow = "StackUnderflow"
	NameNotFound   = "NameNotFound"
	TypeMismatch   = "TypeMismatch"
	ImportError    = "ImportError"
	TokenizeError  = "TokenizeError"
)

// supertypes gives every core kind an implicit "Failure" supertype, the way
// the original's raisename/getBaseNames walks a Python exception's MRO
// (nustack/stdlib/builtins.py). User-raised kinds (via `raise`/`raise.details`)
// have no entry here, so only their literal kind name matches them.
var supertypes = map[string][]string{
	StackUnderflow: {"Failure"},
	NameNotFound:   {"Failure"},
	TypeMismatch:   {"Failure"},
	ImportError:    {"Failure"},
	TokenizeError:  {"Failure"},
}

// Failure is a recoverable language-level failure: a kind name plus the
// arguments raise/raise.details supplied (empty for bare raise). It
// implements error so it can flow through ordinary Go error returns up to
// the nearest `try`.
type Failure struct {
	Kind string
	Args []value.Value
}

// New constructs a Failure with no arguments.
func New(kind string) *Failure { return &Failure{Kind: kind} }

// NewWithArgs constructs a Failure carrying raise.details arguments.
func NewWithArgs(kind string, args []value.Value) *Failure {
	return &Failure{Kind: kind, Args: args}
}

func (f *Failure) Error() string {
	if len(f.Args) == 0 {
		return fmt.Sprintf("%s", f.Kind)
	}
	return fmt.Sprintf("%s %v", f.Kind, f.Args)
}

// ClassChain returns the kind followed by its declared supertypes, innermost
// first -- what `try` matches a handler's name against.
func ClassChain(kind string) []string {
	return append([]string{kind}, supertypes[kind]...)
}

// Matches reports whether handlerName names either f's own kind or one of
// its declared supertypes.
func (f *Failure) Matches(handlerName string) bool {
	for _, name := range ClassChain(f.Kind) {
		if name == handlerName {
			return true
		}
	}
	return false
}

// As extracts a *Failure from err, the way errors.As would, without pulling
// in errors.As's reflection machinery for this one common case.
func As(err error) (*Failure, bool) {
	f, ok := err.(*Failure)
	return f, ok
}
