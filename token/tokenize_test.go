package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nustack/nu/token"
)

func TestTokenizeLiterals(t *testing.T) {
	toks, err := token.Tokenize(`1 -2 1.5 -0.25 #t #f "hi" b'raw' add`)
	require.NoError(t, err)
	require.Len(t, toks, 9)

	assert.Equal(t, token.Int, toks[0].Kind)
	assert.Equal(t, "1", toks[0].Int)

	assert.Equal(t, token.Int, toks[1].Kind)
	assert.Equal(t, "-2", toks[1].Int)

	assert.Equal(t, token.Float, toks[2].Kind)
	assert.Equal(t, 1.5, toks[2].Float)

	assert.Equal(t, token.Float, toks[3].Kind)
	assert.Equal(t, -0.25, toks[3].Float)

	assert.Equal(t, token.Bool, toks[4].Kind)
	assert.True(t, toks[4].Bool)

	assert.Equal(t, token.Bool, toks[5].Kind)
	assert.False(t, toks[5].Bool)

	assert.Equal(t, token.String, toks[6].Kind)
	assert.Equal(t, "hi", toks[6].Str)

	assert.Equal(t, token.Bytes, toks[7].Kind)
	assert.Equal(t, []byte("raw"), toks[7].Bytes)

	assert.Equal(t, token.Call, toks[8].Kind)
	assert.Equal(t, "add", toks[8].Str)
}

func TestTokenizeSymbolAndCall(t *testing.T) {
	toks, err := token.Tokenize("`foo bar+")
	require.NoError(t, err)
	require.Len(t, toks, 2)
	assert.Equal(t, token.Symbol, toks[0].Kind)
	assert.Equal(t, "foo", toks[0].Str)
	assert.Equal(t, token.Call, toks[1].Kind)
	assert.Equal(t, "bar+", toks[1].Str)
}

func TestTokenizeList(t *testing.T) {
	toks, err := token.Tokenize("[ 1 2 ]")
	require.NoError(t, err)
	require.Len(t, toks, 4)
	assert.Equal(t, token.ListStart, toks[0].Kind)
	assert.Equal(t, token.ListEnd, toks[3].Kind)
}

func TestTokenizeNestedCodeBlock(t *testing.T) {
	toks, err := token.Tokenize("{ dup 1 + }")
	require.NoError(t, err)
	require.Len(t, toks, 1)
	require.Equal(t, token.Code, toks[0].Kind)
	require.Len(t, toks[0].Code, 3)
	assert.Equal(t, "dup", toks[0].Code[0].Str)
	assert.Equal(t, token.Int, toks[0].Code[1].Kind)
	assert.Equal(t, "+", toks[0].Code[2].Str)
}

func TestTokenizeDeeplyNestedCodeBlocks(t *testing.T) {
	toks, err := token.Tokenize("{ { dup } call }")
	require.NoError(t, err)
	require.Len(t, toks, 1)
	outer := toks[0].Code
	require.Len(t, outer, 2)
	require.Equal(t, token.Code, outer[0].Kind)
	require.Len(t, outer[0].Code, 1)
	assert.Equal(t, "dup", outer[0].Code[0].Str)
	assert.Equal(t, "call", outer[1].Str)
}

func TestTokenizeUnmatchedCloseBraceErrors(t *testing.T) {
	_, err := token.Tokenize("}")
	require.Error(t, err)
}

func TestTokenizeCommentsAndWhitespaceIgnored(t *testing.T) {
	toks, err := token.Tokenize("1 // trailing comment\n/* block */ 2")
	require.NoError(t, err)
	require.Len(t, toks, 2)
	assert.Equal(t, "1", toks[0].Int)
	assert.Equal(t, "2", toks[1].Int)
}

func TestTokenizeStringEscapes(t *testing.T) {
	toks, err := token.Tokenize(`"a\nb\tc\\d"`)
	require.NoError(t, err)
	require.Len(t, toks, 1)
	assert.Equal(t, "a\nb\tc\\d", toks[0].Str)
}

func TestTokenizeUnrecognizedInputErrors(t *testing.T) {
	_, err := token.Tokenize("\x00")
	require.Error(t, err)
	var tokErr *token.Error
	require.ErrorAs(t, err, &tokErr)
}
