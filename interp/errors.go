package interp

import (
	"github.com/nustack/nu/failure"
	"github.com/nustack/nu/token"
	"github.com/nustack/nu/value"
)

// tokenizeFailure adapts a token.Error into the recoverable failure.Failure
// kind spec.md §7 names for it, carrying the unrecognized remainder as a
// string argument for a `try` handler to inspect.
func tokenizeFailure(err error) error {
	if te, ok := err.(*token.Error); ok {
		return failure.NewWithArgs(failure.TokenizeError, []value.Value{value.NewString(te.Remaining)})
	}
	return err
}
