package prim_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nustack/nu/interp"
	"github.com/nustack/nu/loader"
	"github.com/nustack/nu/prim"
)

// run builds a fresh Interpreter with every primitive installed, evaluates
// source, and returns everything written via show/peek plus the
// interpreter itself for stack/scope inspection.
func run(t *testing.T, source string) (string, *interp.Interpreter) {
	t.Helper()
	var out bytes.Buffer
	in := interp.New(interp.WithOutput(&out))
	prim.Install(in, loader.New())
	require.NoError(t, in.Run(source))
	return out.String(), in
}

// runErr is like run but expects Run to fail, returning the error instead.
func runErr(t *testing.T, source string) error {
	t.Helper()
	in := interp.New(interp.WithOutput(&bytes.Buffer{}))
	prim.Install(in, loader.New())
	return in.Run(source)
}
