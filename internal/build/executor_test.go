package build

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	experrors "github.com/conneroisu/expressor/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecutor_Execute(t *testing.T) {
	compiled := filepath.Join("build", "out", "Main.class")

	t.Run("runs unit from its directory", func(t *testing.T) {
		runner := newFakeRunner("java")
		executor := NewExecutor("java", nil, runner)

		res := executor.Execute(context.Background(), compiled, Options{})
		require.True(t, res.IsSuccess(), res.Message())

		got, _ := res.ToOptional()
		assert.Equal(t, ExecutionSucceeded, got)

		require.Len(t, runner.calls, 1)
		assert.Equal(t, Command{
			Name: "java",
			Args: []string{"Main"},
			Dir:  filepath.Join("build", "out"),
		}, runner.calls[0])
	})

	t.Run("runtime args precede the unit", func(t *testing.T) {
		runner := newFakeRunner("java")
		executor := NewExecutor("java", []string{"-ea", "-Xmx64m"}, runner)

		executor.Execute(context.Background(), "Main.class", Options{})
		require.Len(t, runner.calls, 1)
		assert.Equal(t, []string{"-ea", "-Xmx64m", "Main"}, runner.calls[0].Args)
		assert.Equal(t, ".", runner.calls[0].Dir)
	})

	t.Run("non-zero exit status", func(t *testing.T) {
		runner := newFakeRunner("java")
		runner.statuses["java"] = 3
		executor := NewExecutor("java", nil, runner)

		res := executor.Execute(context.Background(), compiled, Options{})
		require.False(t, res.IsSuccess())
		assert.Equal(t, "execution failed, exit code: 3", res.Message())
		assert.Equal(t, experrors.ErrCodeNonZeroExit, experrors.CodeOf(res.Err()))
	})

	t.Run("spawn failure", func(t *testing.T) {
		runner := newFakeRunner()
		runner.errs["java"] = errors.New(`exec: "java": executable file not found in $PATH`)
		executor := NewExecutor("java", nil, runner)

		res := executor.Execute(context.Background(), compiled, Options{})
		require.False(t, res.IsSuccess())
		assert.Equal(t, `error executing unit: exec: "java": executable file not found in $PATH`, res.Message())
		assert.True(t, experrors.IsKind(res.Err(), experrors.KindExecution))
	})

	t.Run("verbose progress", func(t *testing.T) {
		executor := NewExecutor("java", nil, newFakeRunner("java"))
		opts, buf := verboseOptions(".")

		executor.Execute(context.Background(), compiled, opts)
		assert.Equal(t, "Executing: "+compiled+"\n", buf.String())
	})
}
