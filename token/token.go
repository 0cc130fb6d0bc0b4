// Package token implements the nu tokenizer: source text in, a flat sequence
// of Tokens out, with nested code blocks already materialized (spec.md §4.B).
package token

import (
	"fmt"
	"strings"
)

// Kind identifies what a Token carries. Besides the value.Tag-shaped kinds
// (Int, Float, ...), Kind also has Call (a word invocation -- never reaches
// the operand stack) and the list-start/list-end markers the evaluator uses
// to materialize list literals at runtime.
type Kind int

const (
	Int Kind = iota
	Float
	Bool
	String
	Bytes
	Symbol
	Code
	Call
	ListStart
	ListEnd
)

func (k Kind) String() string {
	switch k {
	case Int:
		return "int"
	case Float:
		return "float"
	case Bool:
		return "bool"
	case String:
		return "string"
	case Bytes:
		return "bytes"
	case Symbol:
		return "symbol"
	case Code:
		return "code"
	case Call:
		return "call"
	case ListStart:
		return "list-start"
	case ListEnd:
		return "list-end"
	default:
		return "unknown"
	}
}

// Token is a (kind, payload) pair. After tokenization, list-start and
// list-end both survive as markers (runtime materializes the list), code
// tokens carry their fully nested child token sequence, and the code-start
// marker used during scanning never survives into the output stream.
type Token struct {
	Kind  Kind
	Int   string // decimal text, parsed lazily by the evaluator (arbitrary precision)
	Float float64
	Bool  bool
	Str   string // String/Symbol/Call payload
	Bytes []byte
	Code  Tokens // nested tokens for Kind == Code
}

// Tokens is a sequence of Token, and implements value.Coder so a Code Value
// can hold one without package value importing package token.
type Tokens []Token

func (ts Tokens) Len() int { return len(ts) }

func (ts Tokens) String() string {
	var sb strings.Builder
	sb.WriteString("{ ")
	for _, t := range ts {
		sb.WriteString(t.String())
		sb.WriteByte(' ')
	}
	sb.WriteString("}")
	return sb.String()
}

func (t Token) String() string {
	switch t.Kind {
	case Int:
		return t.Int
	case Float:
		return fmt.Sprintf("%v", t.Float)
	case Bool:
		if t.Bool {
			return "#t"
		}
		return "#f"
	case String:
		return fmt.Sprintf("%q", t.Str)
	case Bytes:
		return fmt.Sprintf("b%q", string(t.Bytes))
	case Symbol:
		return "`" + t.Str
	case Code:
		return t.Code.String()
	case Call:
		return t.Str
	case ListStart:
		return "["
	case ListEnd:
		return "]"
	default:
		return "<invalid-token>"
	}
}
