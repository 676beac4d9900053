//go:build unit

package shell_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/scaffolder/internal/domain/entities"
	"github.com/rios0rios0/scaffolder/internal/infrastructure/repositories/shell"
)

func TestCommandRunner_Run(t *testing.T) {
	t.Parallel()

	t.Run("should capture stdout in the given directory", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		runner := shell.NewCommandRunner()

		// when
		result, err := runner.Run(context.Background(), entities.CommandSpec{
			Name: "sh",
			Args: []string{"-c", "echo \"$GREETING\"; pwd"},
			Dir:  dir,
			Env:  map[string]string{"GREETING": "hello"},
		})

		// then
		require.NoError(t, err)
		assert.Zero(t, result.ExitCode)
		assert.Contains(t, result.Stdout, "hello\n")
	})

	t.Run("should report a non-zero exit without an error", func(t *testing.T) {
		t.Parallel()

		// given
		runner := shell.NewCommandRunner()

		// when
		result, err := runner.Run(context.Background(), entities.CommandSpec{
			Name: "sh",
			Args: []string{"-c", "echo oops >&2; exit 3"},
		})

		// then
		require.NoError(t, err)
		assert.Equal(t, 3, result.ExitCode)
		assert.Equal(t, "oops\n", result.Stderr)
	})

	t.Run("should return an error when the executable is missing", func(t *testing.T) {
		t.Parallel()

		// given
		runner := shell.NewCommandRunner()

		// when
		_, err := runner.Run(context.Background(), entities.CommandSpec{Name: "definitely-not-a-real-binary"})

		// then
		require.Error(t, err)
	})
}
