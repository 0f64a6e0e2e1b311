package build

import (
	"context"
	"fmt"
	"path/filepath"

	experrors "github.com/conneroisu/expressor/internal/errors"
	"github.com/conneroisu/expressor/internal/outcome"
	"github.com/conneroisu/expressor/internal/templates"
)

// ExecutionSucceeded is the value a successful execute stage yields.
const ExecutionSucceeded = "execution succeeded"

// Executor runs a compiled unit with the external runtime.
type Executor struct {
	command string
	args    []string
	runner  CommandRunner
}

// NewExecutor creates an execute stage. args are placed before the unit
// name on the command line.
func NewExecutor(command string, args []string, runner CommandRunner) *Executor {
	return &Executor{command: command, args: args, runner: runner}
}

// Execute runs the unit from its own directory with inherited standard
// streams and waits for it to exit.
func (e *Executor) Execute(ctx context.Context, compiled string, opts Options) outcome.Outcome[string] {
	log := opts.logger("execute")
	opts.progressf("Executing: %s", compiled)

	unit := templates.DerivedName(compiled)
	dir := filepath.Dir(compiled)

	args := make([]string, 0, len(e.args)+1)
	args = append(args, e.args...)
	args = append(args, unit)

	log.Debug(ctx, "running unit", "command", e.command, "args", args, "dir", dir)
	status, err := e.runner.Run(ctx, Command{Name: e.command, Args: args, Dir: dir})
	if err != nil {
		return fail(ctx, log, experrors.NewExecutionError(experrors.ErrCodeSpawnFailed, "error executing unit", err).WithPath(compiled))
	}
	if status != 0 {
		return fail(ctx, log, experrors.NewExecutionError(experrors.ErrCodeNonZeroExit,
			fmt.Sprintf("execution failed, exit code: %d", status), nil).WithPath(compiled))
	}

	return outcome.Success(ExecutionSucceeded)
}
