package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpressorError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *ExpressorError
		expected string
	}{
		{
			name:     "message only",
			err:      ErrFileNotFound("Main.expresso"),
			expected: "file not found: Main.expresso",
		},
		{
			name:     "message with cause",
			err:      NewResourceError(ErrCodeWriteFailed, "error copying template", fs.ErrPermission),
			expected: "error copying template: permission denied",
		},
		{
			name:     "wrong extension",
			err:      ErrWrongExtension("Foo.src", ".expresso"),
			expected: "file must have extension .expresso",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestExpressorError_Unwrap(t *testing.T) {
	err := NewExecutionError(ErrCodeSpawnFailed, "error executing unit", fs.ErrNotExist)

	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Equal(t, fs.ErrNotExist, errors.Unwrap(err))
}

func TestExpressorError_Is(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", ErrEmptySource("a.expresso"))

	assert.ErrorIs(t, err, &ExpressorError{Kind: KindInput, Code: ErrCodeEmptySource})
	assert.NotErrorIs(t, err, &ExpressorError{Kind: KindInput, Code: ErrCodeFileNotFound})
}

func TestIsKind(t *testing.T) {
	assert.True(t, IsKind(ErrTemplateNotFound("tpl/X.java"), KindResource))
	assert.False(t, IsKind(ErrTemplateNotFound("tpl/X.java"), KindInput))
	assert.True(t, IsKind(NewToolchainError(ErrCodeCompileFailed, "error compiling X.java", nil), KindToolchain))
	assert.False(t, IsKind(errors.New("plain"), KindInput))
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, ErrCodeNonZeroExit, CodeOf(NewExecutionError(ErrCodeNonZeroExit, "exit", nil)))
	assert.Empty(t, CodeOf(errors.New("plain")))
}

func TestWithPath(t *testing.T) {
	err := ErrFileNotFound("missing.expresso")
	assert.Equal(t, "missing.expresso", err.Path)
}

func TestNewConfigError(t *testing.T) {
	cause := errors.New("yaml: line 1: did not find expected node content")
	err := NewConfigError(ErrCodeConfigInvalid, "error reading config file", cause)

	assert.Equal(t, "error reading config file: yaml: line 1: did not find expected node content", err.Error())
	assert.True(t, IsKind(err, KindConfig))
	assert.Equal(t, ErrCodeConfigInvalid, CodeOf(err))
	assert.ErrorIs(t, err, cause)
}
