package loader_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nustack/nu/failure"
	"github.com/nustack/nu/interp"
	"github.com/nustack/nu/loader"
	"github.com/nustack/nu/prim"
	"github.com/nustack/nu/scope"
	"github.com/nustack/nu/value"
)

// newLoader builds a Loader whose source-file imports run with the primitive
// word set installed, the way prim.Install wires it for a real program.
func newLoader() *loader.Loader {
	l := loader.New()
	l.SetBootstrap(func(in *interp.Interpreter) { prim.Install(in, l) })
	return l
}

func writeModule(t *testing.T, dir, rel, source string) {
	t.Helper()
	path := filepath.Join(dir, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(source), 0o644))
}

func TestImportResolvesSourceFileInDir(t *testing.T) {
	dir := t.TempDir()
	writeModule(t, dir, "greet.nu", "42 `answer define")

	l := newLoader()
	in := interp.New(interp.WithDir(dir))

	segs, c, err := l.Import(in, "greet")
	require.NoError(t, err)
	assert.Equal(t, []string{"greet"}, segs)

	v, ok := c.Get("answer")
	require.True(t, ok)
	assert.Equal(t, int64(42), v.Int.Int64())
}

func TestImportResolvesNestedSourceFile(t *testing.T) {
	dir := t.TempDir()
	writeModule(t, dir, filepath.Join("a", "b.nu"), "1 `x define")

	l := newLoader()
	in := interp.New(interp.WithDir(dir))

	segs, c, err := l.Import(in, "a::b")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, segs)

	_, ok := c.Get("x")
	assert.True(t, ok)
}

func TestImportFallsBackToNativeModule(t *testing.T) {
	l := loader.New()
	in := interp.New(interp.WithDir(t.TempDir()))

	segs, c, err := l.Import(in, "Time")
	require.NoError(t, err)
	assert.Equal(t, []string{"Time"}, segs)

	_, ok := c.Get("now")
	assert.True(t, ok)
}

func TestImportStdForcesNativeLookupOnly(t *testing.T) {
	dir := t.TempDir()
	// A same-named source file must NOT win over std:: resolution.
	writeModule(t, dir, "String.nu", "")

	l := loader.New()
	in := interp.New(interp.WithDir(dir))

	segs, c, err := l.Import(in, "std::String")
	require.NoError(t, err)
	assert.Equal(t, []string{"String"}, segs)

	_, ok := c.Get("split")
	assert.True(t, ok)
}

func TestImportUnresolvableFails(t *testing.T) {
	l := loader.New()
	in := interp.New(interp.WithDir(t.TempDir()))

	_, _, err := l.Import(in, "nope::not::here")
	require.Error(t, err)
	f, ok := failure.As(err)
	require.True(t, ok)
	assert.Equal(t, failure.ImportError, f.Kind)
}

func TestBindWrapsChainedSegmentsAsOneKeyRefs(t *testing.T) {
	l := loader.New()
	in := interp.New(interp.WithDir(t.TempDir()))
	_, c, err := l.Import(in, "nu_ext::Time")
	require.NoError(t, err)

	ch := scope.New()
	loader.Bind(ch, []string{"Time"}, c)

	v, err := ch.Lookup("Time")
	require.NoError(t, err)
	require.Equal(t, value.ScopeRef, v.Tag)

	now, ok := v.Scope.Get("now")
	require.True(t, ok)
	assert.Equal(t, value.Native, now.Tag)
}

func TestBindWithChainedSegments(t *testing.T) {
	dir := t.TempDir()
	writeModule(t, dir, filepath.Join("a", "b.nu"), "1 `x define")

	l := newLoader()
	in := interp.New(interp.WithDir(dir))
	segs, c, err := l.Import(in, "a::b")
	require.NoError(t, err)

	ch := scope.New()
	loader.Bind(ch, segs, c)

	outer, err2 := ch.Lookup("a")
	require.NoError(t, err2)
	require.Equal(t, value.ScopeRef, outer.Tag)

	inner, ok := outer.Scope.Get("b")
	require.True(t, ok)
	require.Equal(t, value.ScopeRef, inner.Tag)

	_, ok = inner.Scope.Get("x")
	assert.True(t, ok)
}

func TestBindAllMergesTopLevelEntries(t *testing.T) {
	l := loader.New()
	in := interp.New(interp.WithDir(t.TempDir()))
	_, c, err := l.Import(in, "Time")
	require.NoError(t, err)

	ch := scope.New()
	loader.BindAll(ch, c)

	_, err2 := ch.Lookup("now")
	assert.NoError(t, err2)
	_, err2 = ch.Lookup("sleep.ms")
	assert.NoError(t, err2)
}
