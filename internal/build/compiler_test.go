package build

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	experrors "github.com/conneroisu/expressor/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompiler_Compile(t *testing.T) {
	artifact := filepath.Join("out", "Main.java")

	tests := []struct {
		name        string
		runner      func() *fakeRunner
		wantOK      bool
		wantPath    string
		wantMessage string
		wantCode    string
	}{
		{
			name:     "successful compilation",
			runner:   func() *fakeRunner { return newFakeRunner("javac") },
			wantOK:   true,
			wantPath: filepath.Join("out", "Main.class"),
		},
		{
			name:        "compiler unavailable",
			runner:      func() *fakeRunner { return newFakeRunner() },
			wantMessage: "Java compiler not found",
			wantCode:    experrors.ErrCodeCompilerNotFound,
		},
		{
			name: "non-zero status",
			runner: func() *fakeRunner {
				r := newFakeRunner("javac")
				r.statuses["javac"] = 1
				return r
			},
			wantMessage: "error compiling " + artifact,
			wantCode:    experrors.ErrCodeCompileFailed,
		},
		{
			name: "spawn failure",
			runner: func() *fakeRunner {
				r := newFakeRunner("javac")
				r.errs["javac"] = errors.New("fork/exec javac: permission denied")
				return r
			},
			wantMessage: "error compiling " + artifact + ": fork/exec javac: permission denied",
			wantCode:    experrors.ErrCodeCompileFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := tt.runner()
			compiler := NewCompiler("javac", nil, ".java", ".class", runner)

			res := compiler.Compile(context.Background(), artifact, Options{})

			if tt.wantOK {
				require.True(t, res.IsSuccess(), res.Message())
				got, _ := res.ToOptional()
				assert.Equal(t, tt.wantPath, got)
				return
			}

			require.False(t, res.IsSuccess())
			assert.Equal(t, tt.wantMessage, res.Message())
			assert.Equal(t, tt.wantCode, experrors.CodeOf(res.Err()))
			assert.True(t, experrors.IsKind(res.Err(), experrors.KindToolchain))
		})
	}
}

func TestCompiler_PassesArgsBeforeArtifact(t *testing.T) {
	runner := newFakeRunner("javac")
	compiler := NewCompiler("javac", []string{"-g", "-Xlint"}, ".java", ".class", runner)

	res := compiler.Compile(context.Background(), "Main.java", Options{})
	require.True(t, res.IsSuccess())

	require.Len(t, runner.calls, 1)
	assert.Equal(t, Command{Name: "javac", Args: []string{"-g", "-Xlint", "Main.java"}}, runner.calls[0])
}

func TestCompiler_UnavailableDoesNotRun(t *testing.T) {
	runner := newFakeRunner()
	compiler := NewCompiler("javac", nil, ".java", ".class", runner)

	compiler.Compile(context.Background(), "Main.java", Options{})
	assert.Empty(t, runner.calls)
}

func TestCompiler_validateCommand(t *testing.T) {
	tests := []struct {
		name        string
		command     string
		args        []string
		expectError bool
	}{
		{name: "valid javac", command: "javac", args: nil},
		{name: "valid with args", command: "javac", args: []string{"-d", "classes"}},
		{name: "empty command", command: "", expectError: true},
		{name: "injection in command", command: "javac; rm -rf /", expectError: true},
		{name: "injection in args", command: "javac", args: []string{"; rm -rf /"}, expectError: true},
		{name: "null byte", command: "javac\x00rm", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			compiler := NewCompiler(tt.command, tt.args, ".java", ".class", newFakeRunner(tt.command))
			err := compiler.validateCommand()

			if tt.expectError {
				assert.Error(t, err)

				res := compiler.Compile(context.Background(), "Main.java", Options{})
				assert.False(t, res.IsSuccess())
				assert.Contains(t, res.Message(), "command validation failed")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCompiler_compiledPath(t *testing.T) {
	compiler := NewCompiler("javac", nil, ".java", ".class", newFakeRunner())

	assert.Equal(t, "Main.class", compiler.compiledPath("Main.java"))
	assert.Equal(t, filepath.Join("out", "java", "Main.class"), compiler.compiledPath(filepath.Join("out", "java", "Main.java")))
	assert.Equal(t, filepath.Join("dir.java", "Main.class"), compiler.compiledPath(filepath.Join("dir.java", "Main.java")))
}

func TestCompiler_VerboseProgress(t *testing.T) {
	compiler := NewCompiler("javac", nil, ".java", ".class", newFakeRunner("javac"))
	opts, buf := verboseOptions(".")

	res := compiler.Compile(context.Background(), "Main.java", opts)
	require.True(t, res.IsSuccess())
	assert.Equal(t, "Compiling: Main.java\nCompiled successfully: Main.class\n", buf.String())
}
