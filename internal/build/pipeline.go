package build

import (
	"context"
	"fmt"
	"time"

	"github.com/conneroisu/expressor/internal/config"
	"github.com/conneroisu/expressor/internal/logging"
	"github.com/conneroisu/expressor/internal/outcome"
	"github.com/conneroisu/expressor/internal/templates"
)

// Pipeline names.
const (
	PipelineTranspile = "transpile"
	PipelineBuild     = "build"
	PipelineRun       = "run"
)

// Names lists the pipelines in the order each one extends the previous.
func Names() []string {
	return []string{PipelineTranspile, PipelineBuild, PipelineRun}
}

// Pipeline composes the stages into the transpile, build and run pipelines.
// It holds no state between invocations.
type Pipeline struct {
	validator    *SourceValidator
	materializer *Materializer
	compiler     *Compiler
	executor     *Executor
	opts         Options
}

// NewPipeline wires the stages from cfg. runner is used for the compiler
// and the runtime.
func NewPipeline(cfg *config.Config, runner CommandRunner, opts Options) *Pipeline {
	if opts.Logger == nil {
		opts.Logger = logging.NewNopLogger()
	}

	resolver := &templates.Resolver{
		Dir:       cfg.Template.Dir,
		Fallback:  cfg.Template.Fallback,
		Extension: cfg.Target.Extension,
		Builtin:   cfg.Template.Builtin,
	}

	return &Pipeline{
		validator:    NewSourceValidator(cfg.Source.Extension),
		materializer: NewMaterializer(resolver, cfg.Template.Placeholder, cfg.Target.Extension),
		compiler: NewCompiler(cfg.Compiler.Command, cfg.Compiler.Args,
			cfg.Target.Extension, cfg.Target.CompiledExtension, runner),
		executor: NewExecutor(cfg.Runtime.Command, cfg.Runtime.Args, runner),
		opts:     opts,
	}
}

// Transpile runs validate → materialize.
func (p *Pipeline) Transpile(ctx context.Context, source string) outcome.Outcome[string] {
	return p.Execute(ctx, PipelineTranspile, source)
}

// Build runs transpile → compile.
func (p *Pipeline) Build(ctx context.Context, source string) outcome.Outcome[string] {
	return p.Execute(ctx, PipelineBuild, source)
}

// Run runs build → execute.
func (p *Pipeline) Run(ctx context.Context, source string) outcome.Outcome[string] {
	return p.Execute(ctx, PipelineRun, source)
}

// Execute evaluates the named pipeline once on source.
func (p *Pipeline) Execute(ctx context.Context, name, source string) outcome.Outcome[string] {
	res, _ := p.ExecuteWithMetrics(ctx, name, source)
	return res
}

// ExecuteWithMetrics is Execute that also returns the per-stage timings.
func (p *Pipeline) ExecuteWithMetrics(ctx context.Context, name, source string) (outcome.Outcome[string], *PipelineMetrics) {
	metrics := NewPipelineMetrics()

	stage, ok := p.compose(name, metrics)
	if !ok {
		return outcome.Failure[string](fmt.Sprintf("unknown pipeline: %s", name)), metrics
	}

	perf := logging.StartOperation(p.opts.Logger, name)
	res := stage(ctx, source)

	if res.IsSuccess() {
		perf.End(ctx)
	} else {
		failed, _ := metrics.FailedStage()
		perf.With("stage", failed).Debug(ctx, "pipeline stopped",
			"stages_run", metrics.StageNames(),
			"stages_duration", metrics.TotalDuration().String())
		perf.EndWithError(ctx, res.Err())
	}

	return res, metrics
}

// compose builds the stage chain for name, recording timings in metrics.
func (p *Pipeline) compose(name string, metrics *PipelineMetrics) (Stage, bool) {
	validate := timed("validate", metrics, func(ctx context.Context, in string) outcome.Outcome[string] {
		return p.validator.Validate(ctx, in, p.opts)
	})
	materialize := timed("materialize", metrics, func(ctx context.Context, in string) outcome.Outcome[string] {
		return p.materializer.Materialize(ctx, in, p.opts)
	})
	compile := timed("compile", metrics, func(ctx context.Context, in string) outcome.Outcome[string] {
		return p.compiler.Compile(ctx, in, p.opts)
	})
	execute := timed("execute", metrics, func(ctx context.Context, in string) outcome.Outcome[string] {
		return p.executor.Execute(ctx, in, p.opts)
	})

	transpile := Compose(validate, materialize)
	build := Compose(transpile, compile)
	run := Compose(build, execute)

	switch name {
	case PipelineTranspile:
		return transpile, true
	case PipelineBuild:
		return build, true
	case PipelineRun:
		return run, true
	default:
		return nil, false
	}
}

func timed(name string, metrics *PipelineMetrics, stage Stage) Stage {
	return func(ctx context.Context, in string) outcome.Outcome[string] {
		start := time.Now()
		res := stage(ctx, in)
		metrics.Record(name, time.Since(start), res.IsSuccess())
		return res
	}
}
