package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/conneroisu/expressor/internal/validation"
)

// ValidationError represents a configuration validation error with suggestions
type ValidationError struct {
	Field       string
	Value       interface{}
	Message     string
	Suggestions []string
}

func (ve *ValidationError) Error() string {
	return fmt.Sprintf("validation error in %s: %s", ve.Field, ve.Message)
}

// ValidationResult holds the result of configuration validation
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationError
}

// HasErrors returns true if there are any validation errors
func (vr *ValidationResult) HasErrors() bool {
	return len(vr.Errors) > 0
}

// HasWarnings returns true if there are any validation warnings
func (vr *ValidationResult) HasWarnings() bool {
	return len(vr.Warnings) > 0
}

// String returns a formatted string of all validation issues
func (vr *ValidationResult) String() string {
	var builder strings.Builder

	if len(vr.Errors) > 0 {
		builder.WriteString("Validation errors:\n")
		for _, err := range vr.Errors {
			builder.WriteString(fmt.Sprintf("  • %s: %s\n", err.Field, err.Message))
			for _, suggestion := range err.Suggestions {
				builder.WriteString(fmt.Sprintf("    hint: %s\n", suggestion))
			}
		}
	}

	if len(vr.Warnings) > 0 {
		builder.WriteString("Validation warnings:\n")
		for _, warning := range vr.Warnings {
			builder.WriteString(fmt.Sprintf("  • %s: %s\n", warning.Field, warning.Message))
			for _, suggestion := range warning.Suggestions {
				builder.WriteString(fmt.Sprintf("    hint: %s\n", suggestion))
			}
		}
	}

	return builder.String()
}

// Err returns the first error, or nil if there are none.
func (vr *ValidationResult) Err() error {
	if !vr.HasErrors() {
		return nil
	}
	first := vr.Errors[0]
	return &first
}

func (vr *ValidationResult) addError(field string, value interface{}, msg string, suggestions ...string) {
	vr.Errors = append(vr.Errors, ValidationError{
		Field: field, Value: value, Message: msg, Suggestions: suggestions,
	})
}

func (vr *ValidationResult) addWarning(field string, value interface{}, msg string, suggestions ...string) {
	vr.Warnings = append(vr.Warnings, ValidationError{
		Field: field, Value: value, Message: msg, Suggestions: suggestions,
	})
}

// Validate checks every configuration value and collects errors and
// warnings. Warnings describe settings that are legal but will make a
// pipeline stage fail, such as a missing template directory.
func Validate(config *Config) *ValidationResult {
	result := &ValidationResult{}

	validateExtension(result, "source.extension", config.Source.Extension)
	validateExtension(result, "target.extension", config.Target.Extension)
	validateExtension(result, "target.compiled_extension", config.Target.CompiledExtension)

	if config.Target.Extension == config.Target.CompiledExtension && config.Target.Extension != "" {
		result.addError("target.compiled_extension", config.Target.CompiledExtension,
			"compiled extension must differ from target extension")
	}

	if err := validation.ValidatePath(config.Template.Dir); err != nil {
		result.addError("template.dir", config.Template.Dir, err.Error())
	} else if info, statErr := os.Stat(config.Template.Dir); statErr != nil || !info.IsDir() {
		if !config.Template.Builtin {
			result.addWarning("template.dir", config.Template.Dir,
				"template directory does not exist",
				"run 'expressor init' to create it",
				"or enable template.builtin to use the embedded template")
		}
	}

	if err := validation.ValidateIdentifier(config.Template.Fallback); err != nil {
		result.addError("template.fallback", config.Template.Fallback, err.Error())
	}
	if config.Template.Placeholder == "" {
		result.addError("template.placeholder", config.Template.Placeholder, "placeholder cannot be empty")
	}

	validateCommand(result, "compiler", config.Compiler)
	validateCommand(result, "runtime", config.Runtime)

	if err := validation.ValidatePath(config.Output.Dir); err != nil {
		result.addError("output.dir", config.Output.Dir, err.Error())
	}

	switch strings.ToLower(config.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		result.addError("log.level", config.Log.Level, "unknown log level",
			"use one of: debug, info, warn, error")
	}

	switch config.Log.Format {
	case "text", "json":
	default:
		result.addError("log.format", config.Log.Format, "unknown log format",
			"use one of: text, json")
	}

	return result
}

// validateConfig validates configuration values for security and correctness
func validateConfig(config *Config) error {
	return Validate(config).Err()
}

func validateExtension(result *ValidationResult, field, ext string) {
	if err := validation.ValidateExtension(ext); err != nil {
		result.addError(field, ext, err.Error(), "extensions look like \".java\"")
	}
}

func validateCommand(result *ValidationResult, field string, cmd CommandConfig) {
	if err := validation.ValidateCommand(cmd.Command, nil); err != nil {
		result.addError(field+".command", cmd.Command, err.Error())
	}

	for _, arg := range cmd.Args {
		if err := validation.ValidateArgument(arg); err != nil {
			result.addError(field+".args", arg, err.Error())
		}
	}
}
