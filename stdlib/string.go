// Package stdlib holds the native-extension modules the loader exposes
// under the std.* namespace (spec.md §4.G step 5's "<stdlib-root-namespace>"
// fallback). String is ported directly from the Python original's
// nustack/stdlib/String.py, which itself registers split/join/contains and
// a set of character-class constants as native words rather than nu
// source -- so this stays a native module too, instead of a self-hosted
// .nu file, to keep the same split of labor the original made.
package stdlib

import (
	"strings"

	"github.com/nustack/nu/ext"
	"github.com/nustack/nu/failure"
	"github.com/nustack/nu/stack"
	"github.com/nustack/nu/value"
)

const (
	asciiLowercase = "abcdefghijklmnopqrstuvwxyz"
	asciiUppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits         = "0123456789"
	hexdigits      = "0123456789abcdefABCDEF"
	octdigits      = "01234567"
	punctuation    = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
	whitespace     = " \t\n\r\v\f"
)

// hasStack mirrors ext/clock's assertion-based recovery of the operand
// stack from the interface{}-typed interpreter argument value.NativeFunc
// carries, keeping this package free of an import on package interp.
type hasStack interface {
	GetStack() *stack.Stack
}

// StringModule builds the std.String namespace (spec.md's examples refer
// to it as std::String).
func StringModule() *ext.Module {
	m := ext.New("String")

	m.RegisterValue("ascii_lowercase", value.NewString(asciiLowercase))
	m.RegisterValue("ascii_uppercase", value.NewString(asciiUppercase))
	m.RegisterValue("ascii_letters", value.NewString(asciiLowercase+asciiUppercase))
	m.RegisterValue("digits", value.NewString(digits))
	m.RegisterValue("hexdigits", value.NewString(hexdigits))
	m.RegisterValue("octdigits", value.NewString(octdigits))
	m.RegisterValue("punctuation", value.NewString(punctuation))
	m.RegisterValue("whitespace", value.NewString(whitespace))
	m.RegisterValue("printable", value.NewString(digits+asciiLowercase+asciiUppercase+punctuation+whitespace))

	m.Register("(s1 s2 -- l)", "Splits s1 by s2.", split, "split")
	m.Register("(sequence s1 -- s2)", "Inserts s1 between every member of sequence.", join, "join")
	m.Register("(s1 s2 -- b)", "Reports whether s1 contains s2.", contains, "contains")

	return m
}

func split(in interface{}) error {
	s, ok := in.(hasStack)
	if !ok {
		return failure.New(failure.TypeMismatch)
	}
	args, err := s.GetStack().PopN(2)
	if err != nil {
		return err
	}
	s1, s2 := args[0], args[1]
	if s1.Tag != value.String || s2.Tag != value.String {
		return failure.New(failure.TypeMismatch)
	}
	parts := strings.Split(s1.Str, s2.Str)
	out := make([]value.Value, len(parts))
	for i, p := range parts {
		out[i] = value.NewString(p)
	}
	s.GetStack().Push(value.NewList(out))
	return nil
}

func join(in interface{}) error {
	s, ok := in.(hasStack)
	if !ok {
		return failure.New(failure.TypeMismatch)
	}
	args, err := s.GetStack().PopN(2)
	if err != nil {
		return err
	}
	seq, sep := args[0], args[1]
	if seq.Tag != value.List || sep.Tag != value.String {
		return failure.New(failure.TypeMismatch)
	}
	parts := make([]string, len(seq.List))
	for i, e := range seq.List {
		if e.Tag != value.String {
			return failure.New(failure.TypeMismatch)
		}
		parts[i] = e.Str
	}
	s.GetStack().Push(value.NewString(strings.Join(parts, sep.Str)))
	return nil
}

func contains(in interface{}) error {
	s, ok := in.(hasStack)
	if !ok {
		return failure.New(failure.TypeMismatch)
	}
	args, err := s.GetStack().PopN(2)
	if err != nil {
		return err
	}
	s1, s2 := args[0], args[1]
	if s1.Tag != value.String || s2.Tag != value.String {
		return failure.New(failure.TypeMismatch)
	}
	s.GetStack().Push(value.NewBool(strings.Contains(s1.Str, s2.Str)))
	return nil
}
