package clock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nustack/nu/ext/clock"
	"github.com/nustack/nu/interp"
	"github.com/nustack/nu/value"
)

func TestModuleRegistersWords(t *testing.T) {
	m := clock.Module()
	words := m.Words()
	assert.Contains(t, words, "now")
	assert.Contains(t, words, "sleep.ms")
}

func TestNowPushesAFloat(t *testing.T) {
	m := clock.Module()
	now, ok := m.Lookup("now")
	require.True(t, ok)
	require.Equal(t, value.Native, now.Tag)

	in := interp.New()
	require.NoError(t, now.Native(in))

	v, err := in.Stack.Pop()
	require.NoError(t, err)
	assert.Equal(t, value.Float, v.Tag)
	assert.Greater(t, v.Float, 0.0)
}

func TestSleepMSBlocksForZeroMillis(t *testing.T) {
	m := clock.Module()
	sleep, ok := m.Lookup("sleep.ms")
	require.True(t, ok)

	in := interp.New()
	in.Stack.Push(value.NewInt(0))
	require.NoError(t, sleep.Native(in))
	assert.Equal(t, 0, in.Stack.Len())
}

func TestSleepMSRejectsNonNumeric(t *testing.T) {
	m := clock.Module()
	sleep, ok := m.Lookup("sleep.ms")
	require.True(t, ok)

	in := interp.New()
	in.Stack.Push(value.NewString("nope"))
	assert.Error(t, sleep.Native(in))
}
