package seqstore

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) {
	t.Helper()
	Open(Config{File: filepath.Join(t.TempDir(), "nested", "seq.db")})
	t.Cleanup(func() {
		require.NoError(t, Close())
	})
}

func TestDefineAndNext(t *testing.T) {
	openTemp(t)

	created, err := Define("ticket", "")
	require.NoError(t, err)
	assert.True(t, created)

	var values []string
	for range 3 {
		v, err := Next("ticket")
		require.NoError(t, err)
		values = append(values, v)
	}
	assert.Equal(t, []string{"1", "2", "3"}, values)

	seq, err := Get("ticket")
	require.NoError(t, err)
	assert.Equal(t, "3", seq.Value)
	assert.EqualValues(t, 3, seq.Steps)
	assert.False(t, seq.Updated.IsZero())
}

func TestDefineKeepsExisting(t *testing.T) {
	openTemp(t)

	_, err := Define("col", "X")
	require.NoError(t, err)
	_, err = Next("col")
	require.NoError(t, err)

	created, err := Define("col", "A")
	require.NoError(t, err)
	assert.False(t, created)

	seq, err := Get("col")
	require.NoError(t, err)
	assert.Equal(t, "Y", seq.Value)
}

func TestNextCarries(t *testing.T) {
	openTemp(t)

	_, err := Define("col", "Y")
	require.NoError(t, err)

	v, err := Next("col")
	require.NoError(t, err)
	assert.Equal(t, "Z", v)

	v, err = Next("col")
	require.NoError(t, err)
	assert.Equal(t, "AA", v)

	v, err = Prev("col")
	require.NoError(t, err)
	assert.Equal(t, "Z", v)
}

func TestPrevFloor(t *testing.T) {
	openTemp(t)

	_, err := Define("floor", "a")
	require.NoError(t, err)

	v, err := Prev("floor")
	require.NoError(t, err)
	assert.Equal(t, "a", v)
}

func TestSetAndDelete(t *testing.T) {
	openTemp(t)

	_, err := Define("inv", "INV0000")
	require.NoError(t, err)

	require.NoError(t, Set("inv", "INV0099"))
	v, err := Next("inv")
	require.NoError(t, err)
	assert.Equal(t, "INV0100", v)

	require.NoError(t, Delete("inv"))
	_, err = Get("inv")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNotFound(t *testing.T) {
	openTemp(t)

	_, err := Next("missing")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = Prev("missing")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, Set("missing", "1"), ErrNotFound)
	assert.ErrorIs(t, Delete("missing"), ErrNotFound)
}

func TestNextAll(t *testing.T) {
	openTemp(t)

	for name, start := range map[string]string{"a": "a", "b": "Z", "c": "99"} {
		_, err := Define(name, start)
		require.NoError(t, err)
	}

	values, err := NextAll("a", "b", "c", "a")
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "AA", "100", "c"}, values)

	_, err = NextAll("a", "missing", "b")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = NextAll("a", "bad name")
	assert.ErrorIs(t, err, ErrInvalidName)

	// Failed calls leave every sequence where it was.
	for name, want := range map[string]string{"a": "c", "b": "AA", "c": "100"} {
		seq, err := Get(name)
		require.NoError(t, err)
		assert.Equal(t, want, seq.Value, name)
	}

	seq, err := Get("a")
	require.NoError(t, err)
	assert.EqualValues(t, 2, seq.Steps)
}

func TestInvalidName(t *testing.T) {
	openTemp(t)

	for _, name := range []string{"", "has space", "slash/name", "ünicode", string(make([]byte, 65))} {
		_, err := Define(name, "")
		assert.ErrorIs(t, err, ErrInvalidName, "name %q", name)
	}

	assert.True(t, ValidName("a.b-c_9"))
}

func TestAll(t *testing.T) {
	openTemp(t)

	for _, name := range []string{"b", "a", "c"} {
		_, err := Define(name, name)
		require.NoError(t, err)
	}

	got := map[string]string{}
	for name, seq := range All() {
		got[name] = seq.Value
	}
	assert.Equal(t, map[string]string{"a": "a", "b": "b", "c": "c"}, got)

	var first string
	for name := range All() {
		first = name
		break
	}
	assert.Equal(t, "a", first)
}

func TestReopen(t *testing.T) {
	file := filepath.Join(t.TempDir(), "seq.db")

	Open(Config{File: file})
	_, err := Define("persist", "zz")
	require.NoError(t, err)
	_, err = Next("persist")
	require.NoError(t, err)
	require.NoError(t, Closer().Close())

	Open(Config{File: file})
	defer Close()

	seq, err := Get("persist")
	require.NoError(t, err)
	assert.Equal(t, "aaa", seq.Value)
}

func TestOpenPanics(t *testing.T) {
	assert.Panics(t, func() { Open(Config{}) })
	assert.Panics(t, func() { Close() })
}
