package interp

import (
	"github.com/nustack/nu/token"
)

// Run is the top-level pipeline of spec.md §4.E: tokenize then evaluate,
// returning control to the caller (the module loader uses this to evaluate
// an imported source file in a fresh Interpreter).
func (in *Interpreter) Run(source string) error {
	toks, err := token.Tokenize(source)
	if err != nil {
		return tokenizeFailure(err)
	}
	return in.Eval(toks)
}
