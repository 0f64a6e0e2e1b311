// Package build implements the expressor pipeline: the four stages that take
// an Expresso source file to a running program, and the composer that chains
// them.
//
// Every stage has the same shape, Stage, taking the previous artifact path
// and returning an outcome.Outcome with the next one. Stages never return
// raw errors; faults are converted to a Failure at the stage boundary and
// carried unchanged through the rest of the chain.
package build

import (
	"context"
	"fmt"
	"io"

	"github.com/conneroisu/expressor/internal/logging"
	"github.com/conneroisu/expressor/internal/outcome"
)

// Stage is one fallible step of the pipeline.
type Stage func(ctx context.Context, input string) outcome.Outcome[string]

// Compose chains stages left to right. The first Failure stops the chain;
// later stages are not invoked.
func Compose(stages ...Stage) Stage {
	return func(ctx context.Context, input string) outcome.Outcome[string] {
		res := outcome.Success(input)
		for _, stage := range stages {
			res = outcome.Chain(res, func(in string) outcome.Outcome[string] {
				return stage(ctx, in)
			})
		}
		return res
	}
}

// Options are shared by every stage of one invocation.
type Options struct {
	// OutputDir receives the materialized target file.
	OutputDir string
	// Verbose enables progress lines on Progress.
	Verbose bool
	// Progress receives verbose progress lines, normally stdout.
	Progress io.Writer
	// Logger receives structured diagnostics.
	Logger logging.Logger
}

// progressf writes a progress line when verbose output is enabled.
func (o Options) progressf(format string, args ...interface{}) {
	if !o.Verbose || o.Progress == nil {
		return
	}
	fmt.Fprintf(o.Progress, format+"\n", args...)
}

func (o Options) logger(component string) logging.Logger {
	if o.Logger == nil {
		return logging.NewNopLogger().WithComponent(component)
	}
	return o.Logger.WithComponent(component)
}

// fail converts a stage error into a Failure and logs it.
func fail(ctx context.Context, log logging.Logger, err error) outcome.Outcome[string] {
	log.Debug(ctx, "stage failed", "error", err.Error())
	return outcome.FromError[string](err)
}
