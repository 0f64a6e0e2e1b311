package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/conneroisu/expressor/internal/build"
	"github.com/conneroisu/expressor/internal/config"
	experrors "github.com/conneroisu/expressor/internal/errors"
	"github.com/conneroisu/expressor/internal/logging"
	"github.com/conneroisu/expressor/internal/outcome"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// successMessages are printed when a pipeline succeeds. %s is the final
// artifact path.
var successMessages = map[string]string{
	build.PipelineTranspile: "Transpile succeeded: %s",
	build.PipelineBuild:     "Build succeeded: %s",
	build.PipelineRun:       "Run completed successfully",
}

// newPipelineCommand creates the subcommand that runs the named pipeline on
// its single source argument.
func newPipelineCommand(name, short, long string) *cobra.Command {
	flags := &PipelineFlags{}

	cmd := &cobra.Command{
		Use:   name + " <source>",
		Short: short,
		Long:  long,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPipeline(cmd, name, args[0], flags)
		},
	}

	AddPipelineFlags(cmd, flags)
	return cmd
}

// runPipeline loads the configuration, evaluates the pipeline once and
// folds the outcome into output and an exit status.
func runPipeline(cmd *cobra.Command, name, source string, flags *PipelineFlags) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := newLogger(cmd, cfg)
	if err != nil {
		return err
	}

	opts := build.Options{
		OutputDir: flags.OutputDir(cmd, cfg),
		Verbose:   flags.Verbose,
		Progress:  cmd.OutOrStdout(),
		Logger:    logger,
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	pipeline := build.NewPipeline(cfg, newRunner(cmd), opts)
	res := pipeline.Execute(ctx, name, source)

	err = report(cmd, name, res)
	if err != nil && flags.Verbose {
		printSuggestions(cmd, cfg, res.Err())
	}
	return err
}

// printSuggestions lists possible fixes for a failed pipeline on stderr.
func printSuggestions(cmd *cobra.Command, cfg *config.Config, err error) {
	hints := experrors.FormatSuggestions(experrors.Suggest(err, &experrors.SuggestionContext{
		SourceExtension: cfg.Source.Extension,
		TemplateDir:     cfg.Template.Dir,
		CompilerCommand: cfg.Compiler.Command,
		RuntimeCommand:  cfg.Runtime.Command,
	}))
	if hints == "" {
		return
	}
	st := newStyles(cmd.ErrOrStderr())
	fmt.Fprint(cmd.ErrOrStderr(), renderLines(st.muted, hints))
}

// report writes the outcome of a pipeline and converts a failure into an
// ExitError with status 1.
func report(cmd *cobra.Command, name string, res outcome.Outcome[string]) error {
	label := cases.Title(language.English).String(name)

	return outcome.Fold(res,
		func(msg string) error {
			st := newStyles(cmd.ErrOrStderr())
			fmt.Fprintln(cmd.ErrOrStderr(), st.failure.Render(fmt.Sprintf("%s error: %s", label, msg)))
			return &ExitError{Code: 1, Err: errors.New(msg), Reported: true}
		},
		func(value string) error {
			line := successMessages[name]
			if name != build.PipelineRun {
				line = fmt.Sprintf(line, value)
			}
			st := newStyles(cmd.OutOrStdout())
			fmt.Fprintln(cmd.OutOrStdout(), st.success.Render(line))
			return nil
		},
	)
}

func newLogger(cmd *cobra.Command, cfg *config.Config) (logging.Logger, error) {
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}

	return logging.NewLogger(&logging.LoggerConfig{
		Level:     level,
		Format:    cfg.Log.Format,
		Output:    cmd.ErrOrStderr(),
		Component: "expressor",
	}), nil
}
