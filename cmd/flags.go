package cmd

import (
	"fmt"

	"github.com/conneroisu/expressor/internal/config"
	"github.com/conneroisu/expressor/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// PipelineFlags are shared by the transpile, build and run commands.
type PipelineFlags struct {
	Out     string
	Verbose bool
}

// AddPipelineFlags adds the pipeline flags to a command.
func AddPipelineFlags(cmd *cobra.Command, flags *PipelineFlags) {
	cmd.Flags().StringVarP(&flags.Out, "out", "o", config.DefaultOutputDir, "output directory for the generated Java file")
	cmd.Flags().BoolVarP(&flags.Verbose, "verbose", "v", false, "print progress for each stage")
}

// OutputDir returns --out when given, else the configured output directory.
func (f *PipelineFlags) OutputDir(cmd *cobra.Command, cfg *config.Config) string {
	if cmd.Flags().Changed("out") || cfg.Output.Dir == "" {
		return f.Out
	}
	return cfg.Output.Dir
}

// AddFlagValidation adds validation for a specific flag
func AddFlagValidation(cmd *cobra.Command, flagName string, validator func(string) error) {
	wrapFlag(cmd.Flags().Lookup(flagName), validator)
}

// AddPersistentFlagValidation is AddFlagValidation for persistent flags.
func AddPersistentFlagValidation(cmd *cobra.Command, flagName string, validator func(string) error) {
	wrapFlag(cmd.PersistentFlags().Lookup(flagName), validator)
}

func wrapFlag(flag *pflag.Flag, validator func(string) error) {
	if flag == nil {
		return
	}

	flag.Value = &validatingValue{
		Value:       flag.Value,
		validator:   validator,
		originalSet: flag.Value.Set,
	}
}

type validatingValue struct {
	pflag.Value
	validator   func(string) error
	originalSet func(string) error
}

func (v *validatingValue) Set(val string) error {
	if v.validator != nil {
		if err := v.validator(val); err != nil {
			return err
		}
	}
	return v.originalSet(val)
}

// ValidateLogLevel accepts the names understood by the logger.
func ValidateLogLevel(level string) error {
	if _, err := logging.ParseLevel(level); err != nil {
		return fmt.Errorf("invalid log level %q (supported: debug, info, warn, error)", level)
	}
	return nil
}

// ValidateFormat returns a validator accepting only the given output formats.
func ValidateFormat(formats ...string) func(string) error {
	return func(format string) error {
		for _, f := range formats {
			if f == format {
				return nil
			}
		}
		return fmt.Errorf("unsupported format: %s (supported: %v)", format, formats)
	}
}
