package shell

import (
	"context"
	"errors"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecute(t *testing.T) {
	t.Parallel()

	if _, err := lookupShell(); errors.Is(err, ErrNoShell) {
		t.Skip("no shell available")
	}

	t.Run("combined output", func(t *testing.T) {
		t.Parallel()
		out, err := Execute(context.Background(), "echo out; echo err 1>&2", true)
		require.NoError(t, err)
		assert.Contains(t, out, "out\n")
		assert.Contains(t, out, "err\n")
	})
	t.Run("non-zero exit", func(t *testing.T) {
		t.Parallel()
		out, err := Execute(context.Background(), "echo partial; exit 3", true)
		require.Error(t, err)
		var exitErr *exec.ExitError
		require.ErrorAs(t, err, &exitErr)
		assert.Equal(t, 3, exitErr.ExitCode())
		assert.Equal(t, "partial\n", out)
	})
	t.Run("no wait returns output", func(t *testing.T) {
		t.Parallel()
		out, err := Execute(context.Background(), "echo hello; echo oops 1>&2", false)
		require.NoError(t, err)
		assert.Contains(t, out, "hello\n")
		assert.Contains(t, out, "oops\n")
	})
	t.Run("no wait ignores exit status", func(t *testing.T) {
		t.Parallel()
		out, err := Execute(context.Background(), "echo partial; exit 3", false)
		require.NoError(t, err)
		assert.Equal(t, "partial\n", out)
	})
	t.Run("no wait does not wait for exit", func(t *testing.T) {
		t.Parallel()
		start := time.Now()
		out, err := Execute(context.Background(), "echo started; exec 1>&- 2>&-; sleep 2", false)
		require.NoError(t, err)
		assert.Equal(t, "started\n", out)
		assert.Less(t, time.Since(start), 2*time.Second)
	})
	t.Run("context cancelled", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
		defer cancel()
		_, err := Execute(ctx, "sleep 5", true)
		require.Error(t, err)
	})
}
