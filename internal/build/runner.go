package build

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
)

// Command describes one external process invocation.
type Command struct {
	Name string
	Args []string
	// Dir is the working directory. Empty means the current directory.
	Dir string
}

// CommandRunner is the capability the compile and execute stages use to
// reach external processes. Tests inject fakes instead of spawning real
// toolchains.
type CommandRunner interface {
	// LookPath reports where an executable lives, or an error when it is
	// not available.
	LookPath(name string) (string, error)
	// Run blocks until the process exits and returns its exit status. A
	// non-nil error means the process could not be started or waited on.
	Run(ctx context.Context, cmd Command) (int, error)
}

// ProcessRunner runs commands with os/exec, wiring the child's standard
// streams straight to the given readers and writers.
type ProcessRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewProcessRunner creates a runner whose children inherit the current
// process's standard streams.
func NewProcessRunner() *ProcessRunner {
	return &ProcessRunner{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// LookPath implements CommandRunner.
func (r *ProcessRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// Run implements CommandRunner.
func (r *ProcessRunner) Run(ctx context.Context, cmd Command) (int, error) {
	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	c.Dir = cmd.Dir
	c.Stdin = r.Stdin
	c.Stdout = r.Stdout
	c.Stderr = r.Stderr

	err := c.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}

	return -1, err
}
