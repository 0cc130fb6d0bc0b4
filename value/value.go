// Package value implements the tagged Value union that every nu program
// manipulates via its operand stack and scopes.
package value

import (
	"fmt"
	"math/big"
	"strings"
)

// Tag names which payload a Value carries. There is no call Tag: a call
// Token (token.Call in package token) never appears on the stack -- it is
// dispatched by the evaluator instead of pushed.
type Tag int

const (
	Int Tag = iota
	Float
	Bool
	String
	Bytes
	Symbol
	List
	Code
	Native
	ScopeRef
	Any
)

func (t Tag) String() string {
	switch t {
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
	case List:
		return "list"
	case Code:
		return "code"
	case Native:
		return "native"
	case ScopeRef:
		return "scope-ref"
	case Any:
		return "any"
	default:
		return "unknown"
	}
}

// Coder is the shape an evaluable code payload must implement; the concrete
// type (a slice of token.Token) lives in package token, and Value holds it
// behind this interface so package value does not import package token.
type Coder interface {
	fmt.Stringer
	Len() int
}

// Scoper is the shape a scope-ref payload must implement: read-only member
// lookup into an evaluated module's outermost frame. The concrete type lives
// in package scope.
type Scoper interface {
	Get(name string) (Value, bool)
}

// NativeFunc is a host callable produced by extension registration. The
// Interpreter it acts on is threaded through as interface{} to avoid an
// import cycle with package interp; callers type-assert to *interp.Interpreter.
type NativeFunc func(interp interface{}) error

// Value is a tagged union. Exactly one of the payload fields is meaningful,
// selected by Tag.
type Value struct {
	Tag      Tag
	Int      *big.Int
	Float    float64
	Bool     bool
	Str      string // String, Symbol payload
	Bytes    []byte
	List     []Value
	Code     Coder
	Native   NativeFunc
	NativeID string // display name for a Native value
	Scope    Scoper
	Any      interface{} // escape hatch: wrapped host value, or a bool for or/and's any-result
}

func NewInt(i int64) Value        { return Value{Tag: Int, Int: big.NewInt(i)} }
func NewBigInt(i *big.Int) Value  { return Value{Tag: Int, Int: i} }
func NewFloat(f float64) Value    { return Value{Tag: Float, Float: f} }
func NewBool(b bool) Value        { return Value{Tag: Bool, Bool: b} }
func NewString(s string) Value    { return Value{Tag: String, Str: s} }
func NewBytes(b []byte) Value     { return Value{Tag: Bytes, Bytes: b} }
func NewSymbol(s string) Value    { return Value{Tag: Symbol, Str: s} }
func NewList(vs []Value) Value    { return Value{Tag: List, List: vs} }
func NewCode(c Coder) Value       { return Value{Tag: Code, Code: c} }
func NewScopeRef(s Scoper) Value  { return Value{Tag: ScopeRef, Scope: s} }
func NewAny(v interface{}) Value  { return Value{Tag: Any, Any: v} }
func NewNative(name string, fn NativeFunc) Value {
	return Value{Tag: Native, NativeID: name, Native: fn}
}

// IsNumeric reports whether v carries an Int or Float payload.
func (v Value) IsNumeric() bool { return v.Tag == Int || v.Tag == Float }

// Truthy extracts a boolean reading from a Bool or Any(bool) value, which is
// what `not`/`if`/`while` etc. consume. Other tags are never truthy.
func (v Value) Truthy() (bool, bool) {
	switch v.Tag {
	case Bool:
		return v.Bool, true
	case Any:
		if b, ok := v.Any.(bool); ok {
			return b, true
		}
	}
	return false, false
}

// AsFloat returns the numeric payload widened to float64; ok is false for a
// non-numeric tag.
func (v Value) AsFloat() (float64, bool) {
	switch v.Tag {
	case Int:
		f, _ := new(big.Float).SetInt(v.Int).Float64()
		return f, true
	case Float:
		return v.Float, true
	}
	return 0, false
}

// Equal implements the cross-tag numeric equality, same-tag payload equality
// rule from spec.md §3.
func Equal(a, b Value) bool {
	if a.IsNumeric() && b.IsNumeric() {
		af, _ := a.AsFloat()
		bf, _ := b.AsFloat()
		return af == bf
	}
	if a.Tag != b.Tag {
		return false
	}
	switch a.Tag {
	case Bool:
		return a.Bool == b.Bool
	case String, Symbol:
		return a.Str == b.Str
	case Bytes:
		return string(a.Bytes) == string(b.Bytes)
	case List:
		if len(a.List) != len(b.List) {
			return false
		}
		for i := range a.List {
			if !Equal(a.List[i], b.List[i]) {
				return false
			}
		}
		return true
	case Any:
		return a.Any == b.Any
	case Native:
		return a.NativeID == b.NativeID
	case ScopeRef:
		return a.Scope == b.Scope
	case Code:
		// Code payloads are token slices, which == cannot compare; compare
		// their rendered token text instead.
		if a.Code == nil || b.Code == nil {
			return a.Code == nil && b.Code == nil
		}
		return a.Code.String() == b.Code.String()
	default:
		return false
	}
}

// Less implements the ordering rule from spec.md §3: numeric for number
// pairs, payload ordering for same-tagged non-numeric values, false across
// incompatible tags (never an error).
func Less(a, b Value) bool {
	if a.IsNumeric() && b.IsNumeric() {
		af, _ := a.AsFloat()
		bf, _ := b.AsFloat()
		return af < bf
	}
	if a.Tag != b.Tag {
		return false
	}
	switch a.Tag {
	case String, Symbol:
		return a.Str < b.Str
	case Bytes:
		return string(a.Bytes) < string(b.Bytes)
	case Bool:
		return !a.Bool && b.Bool
	default:
		return false
	}
}

// String renders v the way `show`/`peek` do: booleans as #t/#f, lists as
// "[ e1 e2 ... ]", symbols backtick-prefixed, code as its nested tokens.
func (v Value) String() string {
	switch v.Tag {
	case Int:
		return v.Int.String()
	case Float:
		return fmt.Sprintf("%v", v.Float)
	case Bool:
		if v.Bool {
			return "#t"
		}
		return "#f"
	case String:
		return v.Str
	case Bytes:
		return string(v.Bytes)
	case Symbol:
		return "`" + v.Str
	case List:
		var sb strings.Builder
		sb.WriteString("[ ")
		for _, e := range v.List {
			sb.WriteString(e.String())
			sb.WriteByte(' ')
		}
		sb.WriteString("]")
		return sb.String()
	case Code:
		if v.Code != nil {
			return v.Code.String()
		}
		return "{ }"
	case Native:
		return fmt.Sprintf("<native %s>", v.NativeID)
	case ScopeRef:
		return "<scope-ref>"
	case Any:
		return fmt.Sprintf("%v", v.Any)
	default:
		return "<invalid>"
	}
}

// Repr renders v the way `show.repr`/`peek.repr` do: "<kind>: <display>",
// where <kind> is the original's token-type name (thing.type in
// builtins.py's showr, e.g. "lit_int"), not Tag.String()'s shorter form
// used elsewhere.
func (v Value) Repr() string {
	return fmt.Sprintf("%s: %s", v.Tag.reprKind(), v.String())
}

// reprKind maps a Tag to the "lit_"-prefixed kind name show.repr/peek.repr
// print, mirroring tokenize.py's Token.type values. Native and ScopeRef
// have no counterpart in the original (they don't exist as literal token
// kinds there), so they keep Tag.String()'s plain names.
func (t Tag) reprKind() string {
	switch t {
	case Int:
		return "lit_int"
	case Float:
		return "lit_float"
	case Bool:
		return "lit_bool"
	case String:
		return "lit_string"
	case Bytes:
		return "lit_bytes"
	case Symbol:
		return "lit_symbol"
	case List:
		return "lit_list"
	case Code:
		return "lit_code"
	case Any:
		return "lit_any"
	default:
		return t.String()
	}
}
