package prim_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportBindsUnderFirstSegment(t *testing.T) {
	out, _ := run(t, "`Time import Time::now to.bool show")
	assert.Equal(t, "#t\n", out)
}

func TestImportStarMergesTopLevelEntries(t *testing.T) {
	out, _ := run(t, "`Time import* now to.bool show")
	assert.Equal(t, "#t\n", out)
}

func TestImportUnresolvableNameFails(t *testing.T) {
	err := runErr(t, "`nope::not::here import")
	require.Error(t, err)
}

func TestImportRejectsNonSymbolOperand(t *testing.T) {
	err := runErr(t, `"nu_ext::Time" import`)
	assert.Error(t, err)
}
