package build

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	experrors "github.com/conneroisu/expressor/internal/errors"
	"github.com/conneroisu/expressor/internal/outcome"
	"github.com/conneroisu/expressor/internal/validation"
)

// Compiler runs the external compiler on a materialized target file.
type Compiler struct {
	command     string
	args        []string
	sourceExt   string
	compiledExt string
	runner      CommandRunner
}

// NewCompiler creates a compiler stage. args are placed before the
// artifact path on the command line.
func NewCompiler(command string, args []string, sourceExt, compiledExt string, runner CommandRunner) *Compiler {
	return &Compiler{
		command:     command,
		args:        args,
		sourceExt:   sourceExt,
		compiledExt: compiledExt,
		runner:      runner,
	}
}

// Compile runs the compiler synchronously and returns the path of the
// compiled unit: same directory, same base name, compiled extension.
func (c *Compiler) Compile(ctx context.Context, artifact string, opts Options) outcome.Outcome[string] {
	log := opts.logger("compile")
	opts.progressf("Compiling: %s", artifact)

	if err := c.validateCommand(); err != nil {
		return fail(ctx, log, experrors.NewToolchainError(experrors.ErrCodeCommandNotAllowed, "command validation failed", err))
	}

	if _, err := c.runner.LookPath(c.command); err != nil {
		log.Debug(ctx, "compiler lookup failed", "command", c.command, "error", err.Error())
		return fail(ctx, log, experrors.NewToolchainError(experrors.ErrCodeCompilerNotFound, "Java compiler not found", nil))
	}

	args := make([]string, 0, len(c.args)+1)
	args = append(args, c.args...)
	args = append(args, artifact)

	log.Debug(ctx, "running compiler", "command", c.command, "args", args)
	status, err := c.runner.Run(ctx, Command{Name: c.command, Args: args})
	if err != nil {
		return fail(ctx, log, experrors.NewToolchainError(experrors.ErrCodeCompileFailed, "error compiling "+artifact, err).WithPath(artifact))
	}
	if status != 0 {
		log.Debug(ctx, "compiler exited with non-zero status", "status", status)
		return fail(ctx, log, experrors.NewToolchainError(experrors.ErrCodeCompileFailed, "error compiling "+artifact, nil).WithPath(artifact))
	}

	compiled := c.compiledPath(artifact)
	opts.progressf("Compiled successfully: %s", compiled)
	return outcome.Success(compiled)
}

// compiledPath swaps the target extension for the compiled one.
func (c *Compiler) compiledPath(artifact string) string {
	dir := filepath.Dir(artifact)
	base := filepath.Base(artifact)
	if ext := filepath.Ext(base); ext != "" && (ext == c.sourceExt || c.sourceExt == "") {
		base = strings.TrimSuffix(base, ext)
	}
	return filepath.Join(dir, base+c.compiledExt)
}

// validateCommand validates the command and arguments to prevent command injection
func (c *Compiler) validateCommand() error {
	if err := validation.ValidateCommand(c.command, nil); err != nil {
		return err
	}

	for _, arg := range c.args {
		if err := validation.ValidateArgument(arg); err != nil {
			return fmt.Errorf("invalid argument '%s': %w", arg, err)
		}
	}

	return nil
}
