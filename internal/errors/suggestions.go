package errors

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrorSuggestion represents a suggestion for fixing an error
type ErrorSuggestion struct {
	Title   string
	Command string
}

// SuggestionContext provides the settings a suggestion may refer to.
type SuggestionContext struct {
	SourceExtension string
	TemplateDir     string
	CompilerCommand string
	RuntimeCommand  string
}

// Suggest returns fixes for a pipeline failure, or nil when err is not an
// *ExpressorError or nothing useful can be said.
func Suggest(err error, ctx *SuggestionContext) []ErrorSuggestion {
	if ctx == nil {
		ctx = &SuggestionContext{}
	}

	switch CodeOf(err) {
	case ErrCodeFileNotFound:
		return []ErrorSuggestion{
			{Title: "Check the path is relative to the current directory", Command: "ls *" + ctx.SourceExtension},
		}
	case ErrCodeWrongExtension:
		return []ErrorSuggestion{
			{Title: "Rename the source file to end in " + ctx.SourceExtension},
			{Title: "Or change the expected extension", Command: "EXPRESSOR_SOURCE_EXTENSION=" + extensionOf(err)},
		}
	case ErrCodeEmptySource:
		return []ErrorSuggestion{
			{Title: "Add at least one definition to the source file"},
		}
	case ErrCodeTemplateNotFound:
		return []ErrorSuggestion{
			{Title: "Scaffold the template directory", Command: "expressor init"},
			{Title: "Point at an existing template directory", Command: "--template-dir <dir>"},
			{Title: "Use the embedded template", Command: "--builtin-template"},
		}
	case ErrCodeOutputDir:
		return []ErrorSuggestion{
			{Title: "Choose an output directory you can write to", Command: "--out <dir>"},
		}
	case ErrCodeCompilerNotFound:
		return []ErrorSuggestion{
			{Title: fmt.Sprintf("Install a JDK so that %q is on PATH", ctx.CompilerCommand)},
			{Title: "Or configure another compiler", Command: "EXPRESSOR_COMPILER_COMMAND=<path>"},
		}
	case ErrCodeCompileFailed:
		return []ErrorSuggestion{
			{Title: "Check the template in " + ctx.TemplateDir + " compiles on its own"},
		}
	case ErrCodeSpawnFailed:
		return []ErrorSuggestion{
			{Title: fmt.Sprintf("Make sure %q is installed and on PATH", ctx.RuntimeCommand)},
		}
	default:
		return nil
	}
}

// FormatSuggestions renders suggestions one per line, indented for display
// under an error message.
func FormatSuggestions(suggestions []ErrorSuggestion) string {
	if len(suggestions) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("Suggestions:\n")
	for _, s := range suggestions {
		b.WriteString("  • " + s.Title)
		if s.Command != "" {
			b.WriteString(": " + s.Command)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func extensionOf(err error) string {
	var ee *ExpressorError
	if errors.As(err, &ee) {
		if ext := filepath.Ext(ee.Path); ext != "" {
			return ext
		}
	}
	return "<ext>"
}
