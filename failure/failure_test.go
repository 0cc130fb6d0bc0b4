package failure_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nustack/nu/failure"
	"github.com/nustack/nu/value"
)

func TestNewHasNoArgs(t *testing.T) {
	f := failure.New(failure.TypeMismatch)
	assert.Equal(t, failure.TypeMismatch, f.Kind)
	assert.Empty(t, f.Args)
}

func TestNewWithArgsCarriesArgs(t *testing.T) {
	args := []value.Value{value.NewString("detail")}
	f := failure.NewWithArgs("Custom", args)
	assert.Equal(t, "Custom", f.Kind)
	assert.Equal(t, args, f.Args)
}

func TestMatchesOwnKindAndSupertype(t *testing.T) {
	f := failure.New(failure.StackUnderflow)
	assert.True(t, f.Matches(failure.StackUnderflow))
	assert.True(t, f.Matches("Failure"))
	assert.False(t, f.Matches("SomethingElse"))
}

func TestMatchesUnregisteredKindOnlyMatchesItself(t *testing.T) {
	f := failure.New("UserDefined")
	assert.True(t, f.Matches("UserDefined"))
	assert.False(t, f.Matches("Failure"))
}

func TestAsExtractsFailure(t *testing.T) {
	f := failure.New(failure.NameNotFound)
	got, ok := failure.As(error(f))
	require.True(t, ok)
	assert.Same(t, f, got)

	_, ok = failure.As(errors.New("plain"))
	assert.False(t, ok)
}

func TestClassChainOrder(t *testing.T) {
	chain := failure.ClassChain(failure.ImportError)
	require.Len(t, chain, 2)
	assert.Equal(t, failure.ImportError, chain[0])
	assert.Equal(t, "Failure", chain[1])
}
