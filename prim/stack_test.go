package prim_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSwap(t *testing.T) {
	out, _ := run(t, "1 2 swap show show")
	assert.Equal(t, "1\n2\n", out)
}

func TestDrop(t *testing.T) {
	out, _ := run(t, "1 2 drop show")
	assert.Equal(t, "1\n", out)
}

func TestDup(t *testing.T) {
	out, _ := run(t, "5 dup + show")
	assert.Equal(t, "10\n", out)
}

func TestOver(t *testing.T) {
	out, _ := run(t, "1 2 over show show show")
	assert.Equal(t, "1\n2\n1\n", out)
}

func TestRot(t *testing.T) {
	out, _ := run(t, "1 2 3 rot show show show")
	assert.Equal(t, "1\n3\n2\n", out)
}

func TestDropUnderflows(t *testing.T) {
	err := runErr(t, "drop")
	assert.Error(t, err)
}
