package prim

import (
	"math"
	"math/big"

	"github.com/nustack/nu/failure"
	"github.com/nustack/nu/value"
)

func installArith(bind func(value.NativeFunc, ...string)) {
	bind(add, "+", "add")
	bind(sub, "-", "sub")
	bind(mul, "*", "mul")
	bind(div, "/", "div")
	bind(mod, "%", "mod")
}

// add (a b -- c): numeric addition promotes mixed operands to float but
// preserves the first operand's tag (spec.md §9's quirk); string/bytes/list
// addition is payload concatenation.
func add(arg interface{}) error {
	in, err := asInterp(arg)
	if err != nil {
		return err
	}
	vs, err := in.Stack.PopN(2)
	if err != nil {
		return err
	}
	a, b := vs[0], vs[1]

	if a.IsNumeric() && b.IsNumeric() {
		v, err := numericOp(a, b, new(big.Int).Add, func(x, y float64) float64 { return x + y })
		if err != nil {
			return err
		}
		in.Stack.Push(v)
		return nil
	}
	if a.Tag != b.Tag {
		return failure.New(failure.TypeMismatch)
	}
	switch a.Tag {
	case value.String:
		in.Stack.Push(value.NewString(a.Str + b.Str))
	case value.Bytes:
		out := make([]byte, 0, len(a.Bytes)+len(b.Bytes))
		out = append(out, a.Bytes...)
		out = append(out, b.Bytes...)
		in.Stack.Push(value.NewBytes(out))
	case value.List:
		out := make([]value.Value, 0, len(a.List)+len(b.List))
		out = append(out, a.List...)
		out = append(out, b.List...)
		in.Stack.Push(value.NewList(out))
	default:
		return failure.New(failure.TypeMismatch)
	}
	return nil
}

// sub (a b -- c): numeric only.
func sub(arg interface{}) error {
	return binaryNumeric(arg, new(big.Int).Sub, func(x, y float64) float64 { return x - y })
}

// mul (a b -- c): numeric only.
func mul(arg interface{}) error {
	return binaryNumeric(arg, new(big.Int).Mul, func(x, y float64) float64 { return x * y })
}

// div (a b -- c): always float, per spec.md §4.H.
func div(arg interface{}) error {
	return binaryFloat(arg, func(x, y float64) float64 { return x / y })
}

// mod (a b -- c): always float, per spec.md §4.H.
func mod(arg interface{}) error {
	return binaryFloat(arg, math.Mod)
}

func binaryNumeric(arg interface{}, intOp func(x, y *big.Int) *big.Int, floatOp func(x, y float64) float64) error {
	in, err := asInterp(arg)
	if err != nil {
		return err
	}
	vs, err := in.Stack.PopN(2)
	if err != nil {
		return err
	}
	a, b := vs[0], vs[1]
	if !a.IsNumeric() || !b.IsNumeric() {
		return failure.New(failure.TypeMismatch)
	}
	v, err := numericOp(a, b, intOp, floatOp)
	if err != nil {
		return err
	}
	in.Stack.Push(v)
	return nil
}

func binaryFloat(arg interface{}, floatOp func(x, y float64) float64) error {
	in, err := asInterp(arg)
	if err != nil {
		return err
	}
	vs, err := in.Stack.PopN(2)
	if err != nil {
		return err
	}
	a, b := vs[0], vs[1]
	af, ok := a.AsFloat()
	if !ok {
		return failure.New(failure.TypeMismatch)
	}
	bf, ok := b.AsFloat()
	if !ok {
		return failure.New(failure.TypeMismatch)
	}
	in.Stack.Push(value.NewFloat(floatOp(af, bf)))
	return nil
}

// numericOp computes a OP b, using exact big.Int arithmetic when both
// operands are tagged int, and float64 arithmetic otherwise -- but always
// tagging the result like a. spec.md §9 asks for this to be "preserved
// exactly"; a Value's Int field is a *big.Int and cannot hold a fractional
// payload, so when a is tagged int and the float result is fractional, it
// is truncated toward zero rather than exactly represented (see DESIGN.md
// Open Questions).
func numericOp(a, b value.Value, intOp func(x, y *big.Int) *big.Int, floatOp func(x, y float64) float64) (value.Value, error) {
	if a.Tag == value.Int && b.Tag == value.Int {
		return value.NewBigInt(intOp(a.Int, b.Int)), nil
	}
	af, _ := a.AsFloat()
	bf, _ := b.AsFloat()
	r := floatOp(af, bf)
	if a.Tag == value.Int {
		n, _ := big.NewFloat(r).Int(nil)
		return value.NewBigInt(n), nil
	}
	return value.NewFloat(r), nil
}
