package prim

import (
	"github.com/nustack/nu/failure"
	"github.com/nustack/nu/value"
)

func installFailure(bind func(value.NativeFunc, ...string)) {
	bind(tryWord, "try")
	bind(raise, "raise")
	bind(raiseDetails, "raise.details")
}

// try (try-body handlers -- ...): handlers is a list of 2-element
// [kind-symbol, handler-body] pairs. Runs try-body; on a recoverable
// Failure, the first handler whose kind-symbol matches the failure's kind
// or one of its declared supertypes receives the failure's arguments as a
// list, then its handler-body runs. An unmatched or non-Failure error
// propagates unchanged.
func tryWord(arg interface{}) error {
	in, err := asInterp(arg)
	if err != nil {
		return err
	}
	vs, err := in.Stack.PopN(2)
	if err != nil {
		return err
	}
	tryBody, handlers := vs[0], vs[1]
	if handlers.Tag != value.List {
		return failure.New(failure.TypeMismatch)
	}

	runErr := in.Call(tryBody)
	if runErr == nil {
		return nil
	}
	f, ok := failure.As(runErr)
	if !ok {
		return runErr
	}
	for _, pair := range handlers.List {
		if pair.Tag != value.List || len(pair.List) != 2 {
			return failure.New(failure.TypeMismatch)
		}
		kindSym, handlerBody := pair.List[0], pair.List[1]
		if kindSym.Tag != value.Symbol {
			return failure.New(failure.TypeMismatch)
		}
		if f.Matches(kindSym.Str) {
			args := make([]value.Value, len(f.Args))
			copy(args, f.Args)
			in.Stack.Push(value.NewList(args))
			return in.Call(handlerBody)
		}
	}
	return runErr
}

// raise (kind-symbol -- ): raises a Failure with empty arguments.
func raise(arg interface{}) error {
	in, err := asInterp(arg)
	if err != nil {
		return err
	}
	kind, err := in.Stack.Pop()
	if err != nil {
		return err
	}
	if kind.Tag != value.Symbol {
		return failure.New(failure.TypeMismatch)
	}
	return failure.New(kind.Str)
}

// raise.details (kind-symbol args-list -- ): raises a Failure carrying
// args-list's elements as its arguments.
func raiseDetails(arg interface{}) error {
	in, err := asInterp(arg)
	if err != nil {
		return err
	}
	vs, err := in.Stack.PopN(2)
	if err != nil {
		return err
	}
	kind, args := vs[0], vs[1]
	if kind.Tag != value.Symbol || args.Tag != value.List {
		return failure.New(failure.TypeMismatch)
	}
	return failure.NewWithArgs(kind.Str, args.List)
}
