package prim_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqNeverRaisesOnIncompatibleTags(t *testing.T) {
	out, _ := run(t, `1 "1" = show`)
	assert.Equal(t, "#f\n", out)
}

func TestEqSameTag(t *testing.T) {
	out, _ := run(t, "3 3 = show")
	assert.Equal(t, "#t\n", out)
}

func TestLtFalseOnIncompatibleTags(t *testing.T) {
	out, _ := run(t, `1 "a" < show`)
	assert.Equal(t, "#f\n", out)
}

func TestLtAndGt(t *testing.T) {
	out, _ := run(t, "1 2 < show")
	assert.Equal(t, "#t\n", out)

	out, _ = run(t, "2 1 > show")
	assert.Equal(t, "#t\n", out)
}

func TestNot(t *testing.T) {
	out, _ := run(t, "#t not show")
	assert.Equal(t, "#f\n", out)
}

func TestNotRejectsNonBoolean(t *testing.T) {
	err := runErr(t, "1 not")
	assert.Error(t, err)
}

// or/and push an any-tagged bool rather than a bool-tagged one: `to.bool`
// still reports it truthy-correctly, but `show` renders the any form's
// display text rather than #t/#f.
func TestOrAndAndPushAnyTaggedBool(t *testing.T) {
	out, _ := run(t, "#t #f or to.bool show")
	assert.Equal(t, "#t\n", out)

	out, _ = run(t, "#t #f and to.bool show")
	assert.Equal(t, "#f\n", out)
}
