package cliutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOption(t *testing.T) {
	t.Parallel()

	t.Run("initial value", func(t *testing.T) {
		t.Parallel()
		o := NewOption(3, "-n", "--count")
		assert.Equal(t, 3, o.Value())
		o.Set(7)
		assert.Equal(t, 7, o.Value())
	})
	t.Run("nullable", func(t *testing.T) {
		t.Parallel()
		o := NewNullableOption[string]("-o", "--output")
		assert.Nil(t, o.Value())
		out := "out.txt"
		o.Set(&out)
		require.NotNil(t, o.Value())
		assert.Equal(t, "out.txt", *o.Value())
	})
	t.Run("variations are a set", func(t *testing.T) {
		t.Parallel()
		o := NewOption(false, "-v", "--verbose", "-v")
		v := o.Variations()
		assert.Equal(t, 2, v.Len())
		assert.True(t, v.Contains("-v"))
		assert.True(t, v.Contains("--verbose"))
		assert.False(t, v.Contains("-x"))
		assert.Equal(t, []string{"--verbose", "-v"}, v.Sorted())
		assert.Equal(t, "[--verbose, -v]", v.String())
	})
	t.Run("variations are read-only", func(t *testing.T) {
		t.Parallel()
		o := NewOption(false, "-v")
		v := o.Variations()
		v["--verbose"] = struct{}{}
		assert.Equal(t, 1, o.Variations().Len())
	})
	t.Run("no variations", func(t *testing.T) {
		t.Parallel()
		o := NewOption("default")
		_, ok, err := o.Provided([]string{"-v", "x"})
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, "default", o.Value())
	})
	t.Run("provided", func(t *testing.T) {
		t.Parallel()
		o := NewOption(false, "-v", "--verbose")
		matched, ok, err := o.Provided([]string{"build", "-v"})
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "-v", matched)

		_, _, err = o.Provided([]string{"build", "-v", "--verbose"})
		require.ErrorIs(t, err, ErrInvalidArguments)
	})
}
