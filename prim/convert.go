package prim

import (
	"math/big"
	"strconv"

	"github.com/nustack/nu/failure"
	"github.com/nustack/nu/value"
)

func installConvert(bind func(value.NativeFunc, ...string)) {
	bind(toString, "to.string")
	bind(toInt, "to.int")
	bind(toFloat, "to.float")
	bind(toSymbol, "to.symbol")
	bind(toBool, "to.bool")
}

func popPush(arg interface{}, f func(v value.Value) (value.Value, error)) error {
	in, err := asInterp(arg)
	if err != nil {
		return err
	}
	v, err := in.Stack.Pop()
	if err != nil {
		return err
	}
	out, err := f(v)
	if err != nil {
		return err
	}
	in.Stack.Push(out)
	return nil
}

// to.string (a -- s): uses the same display form show/peek use.
func toString(arg interface{}) error {
	return popPush(arg, func(v value.Value) (value.Value, error) {
		return value.NewString(v.String()), nil
	})
}

// to.int (a -- n): a code Value is unconvertible (spec.md §9, pinned as
// TypeMismatch -- see DESIGN.md).
func toInt(arg interface{}) error {
	return popPush(arg, func(v value.Value) (value.Value, error) {
		switch v.Tag {
		case value.Int:
			return v, nil
		case value.Float:
			n, _ := big.NewFloat(v.Float).Int(nil)
			return value.NewBigInt(n), nil
		case value.Bool:
			if v.Bool {
				return value.NewInt(1), nil
			}
			return value.NewInt(0), nil
		case value.String, value.Symbol:
			n, ok := new(big.Int).SetString(v.Str, 10)
			if !ok {
				return value.Value{}, failure.New(failure.TypeMismatch)
			}
			return value.NewBigInt(n), nil
		default:
			return value.Value{}, failure.New(failure.TypeMismatch)
		}
	})
}

// to.float (a -- f)
func toFloat(arg interface{}) error {
	return popPush(arg, func(v value.Value) (value.Value, error) {
		if f, ok := v.AsFloat(); ok {
			return value.NewFloat(f), nil
		}
		switch v.Tag {
		case value.Bool:
			if v.Bool {
				return value.NewFloat(1), nil
			}
			return value.NewFloat(0), nil
		case value.String, value.Symbol:
			f, err := strconv.ParseFloat(v.Str, 64)
			if err != nil {
				return value.Value{}, failure.New(failure.TypeMismatch)
			}
			return value.NewFloat(f), nil
		default:
			return value.Value{}, failure.New(failure.TypeMismatch)
		}
	})
}

// to.symbol (a -- sym): wraps the value's display text as a symbol.
func toSymbol(arg interface{}) error {
	return popPush(arg, func(v value.Value) (value.Value, error) {
		switch v.Tag {
		case value.String, value.Symbol:
			return value.NewSymbol(v.Str), nil
		default:
			return value.NewSymbol(v.String()), nil
		}
	})
}

// to.bool (a -- bool): numbers are truthy if nonzero, strings/bytes/lists
// if non-empty.
func toBool(arg interface{}) error {
	return popPush(arg, func(v value.Value) (value.Value, error) {
		switch v.Tag {
		case value.Bool:
			return v, nil
		case value.Any:
			if b, ok := v.Any.(bool); ok {
				return value.NewBool(b), nil
			}
			return value.NewBool(v.Any != nil), nil
		case value.Int:
			return value.NewBool(v.Int.Sign() != 0), nil
		case value.Float:
			return value.NewBool(v.Float != 0), nil
		case value.String, value.Symbol:
			return value.NewBool(v.Str != ""), nil
		case value.Bytes:
			return value.NewBool(len(v.Bytes) != 0), nil
		case value.List:
			return value.NewBool(len(v.List) != 0), nil
		default:
			return value.NewBool(true), nil
		}
	})
}
