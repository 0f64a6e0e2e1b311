// Package errors defines the structured error type produced by the pipeline
// stages. Every stage returns an *ExpressorError whose Error() text is the
// exact diagnostic shown to the user; the Kind and Code only feed logging.
package errors

import (
	"errors"
	"fmt"
)

// ErrorKind classifies where in the pipeline an error originated.
type ErrorKind string

const (
	// KindInput covers problems with the source file itself.
	KindInput ErrorKind = "input"
	// KindResource covers templates, the output directory and file I/O.
	KindResource ErrorKind = "resource"
	// KindToolchain covers the external compiler.
	KindToolchain ErrorKind = "toolchain"
	// KindExecution covers spawning and running the compiled unit.
	KindExecution ErrorKind = "execution"
	// KindConfig covers invalid configuration values.
	KindConfig ErrorKind = "config"
)

// Common error codes.
const (
	ErrCodeFileNotFound      = "ERR_FILE_NOT_FOUND"
	ErrCodeWrongExtension    = "ERR_WRONG_EXTENSION"
	ErrCodeEmptySource       = "ERR_EMPTY_SOURCE"
	ErrCodeReadFailed        = "ERR_READ_FAILED"
	ErrCodeTemplateNotFound  = "ERR_TEMPLATE_NOT_FOUND"
	ErrCodeOutputDir         = "ERR_OUTPUT_DIR"
	ErrCodeWriteFailed       = "ERR_WRITE_FAILED"
	ErrCodeCompilerNotFound  = "ERR_COMPILER_NOT_FOUND"
	ErrCodeCompileFailed     = "ERR_COMPILE_FAILED"
	ErrCodeSpawnFailed       = "ERR_SPAWN_FAILED"
	ErrCodeNonZeroExit       = "ERR_NON_ZERO_EXIT"
	ErrCodeConfigInvalid     = "ERR_CONFIG_INVALID"
	ErrCodeCommandNotAllowed = "ERR_COMMAND_NOT_ALLOWED"
)

// ExpressorError is a structured error with pipeline context.
type ExpressorError struct {
	Kind    ErrorKind
	Code    string
	Message string
	Path    string
	Cause   error
}

// Error implements the error interface. The result is the user-facing
// message, followed by the cause when there is one.
func (e *ExpressorError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}

	return e.Message
}

// Unwrap returns the underlying cause error.
func (e *ExpressorError) Unwrap() error {
	return e.Cause
}

// Is implements error comparison on Kind and Code.
func (e *ExpressorError) Is(target error) bool {
	var t *ExpressorError
	if errors.As(target, &t) {
		return e.Kind == t.Kind && e.Code == t.Code
	}

	return false
}

// WithPath records the file the error refers to.
func (e *ExpressorError) WithPath(path string) *ExpressorError {
	e.Path = path

	return e
}

// NewInputError creates an error about the source file.
func NewInputError(code, message string) *ExpressorError {
	return &ExpressorError{Kind: KindInput, Code: code, Message: message}
}

// NewResourceError creates a template or I/O error.
func NewResourceError(code, message string, cause error) *ExpressorError {
	return &ExpressorError{Kind: KindResource, Code: code, Message: message, Cause: cause}
}

// NewToolchainError creates a compiler error.
func NewToolchainError(code, message string, cause error) *ExpressorError {
	return &ExpressorError{Kind: KindToolchain, Code: code, Message: message, Cause: cause}
}

// NewExecutionError creates an error about running the compiled unit.
func NewExecutionError(code, message string, cause error) *ExpressorError {
	return &ExpressorError{Kind: KindExecution, Code: code, Message: message, Cause: cause}
}

// NewConfigError creates a configuration error.
func NewConfigError(code, message string, cause error) *ExpressorError {
	return &ExpressorError{Kind: KindConfig, Code: code, Message: message, Cause: cause}
}

// IsKind reports whether err is an *ExpressorError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var ee *ExpressorError
	if errors.As(err, &ee) {
		return ee.Kind == kind
	}

	return false
}

// CodeOf returns the error code of err, or "" when err is not structured.
func CodeOf(err error) string {
	var ee *ExpressorError
	if errors.As(err, &ee) {
		return ee.Code
	}

	return ""
}

// Helper functions for common errors

// ErrFileNotFound creates the error for a missing source file.
func ErrFileNotFound(path string) *ExpressorError {
	return NewInputError(ErrCodeFileNotFound, "file not found: "+path).WithPath(path)
}

// ErrWrongExtension creates the error for a source with the wrong extension.
func ErrWrongExtension(path, ext string) *ExpressorError {
	return NewInputError(ErrCodeWrongExtension, "file must have extension "+ext).WithPath(path)
}

// ErrEmptySource creates the error for a blank source file.
func ErrEmptySource(path string) *ExpressorError {
	return NewInputError(ErrCodeEmptySource, "file is empty: "+path).WithPath(path)
}

// ErrTemplateNotFound creates the error for a missing template.
func ErrTemplateNotFound(path string) *ExpressorError {
	return NewResourceError(ErrCodeTemplateNotFound, "template not found: "+path, nil).WithPath(path)
}
