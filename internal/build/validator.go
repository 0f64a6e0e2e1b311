package build

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	experrors "github.com/conneroisu/expressor/internal/errors"
	"github.com/conneroisu/expressor/internal/outcome"
)

// SourceValidator checks that a source file exists, carries the expected
// extension and is not blank.
type SourceValidator struct {
	extension string
}

// NewSourceValidator creates a validator for files ending in extension.
func NewSourceValidator(extension string) *SourceValidator {
	return &SourceValidator{extension: extension}
}

// Validate runs the checks in order and returns path unchanged on success.
func (v *SourceValidator) Validate(ctx context.Context, path string, opts Options) outcome.Outcome[string] {
	log := opts.logger("validate")
	opts.progressf("Reading file: %s", path)
	log.Debug(ctx, "validating source", "path", path, "extension", v.extension)

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fail(ctx, log, experrors.ErrFileNotFound(path))
		}
		return fail(ctx, log, experrors.NewResourceError(experrors.ErrCodeReadFailed, "error reading file", err).WithPath(path))
	}

	if filepath.Ext(path) != v.extension {
		return fail(ctx, log, experrors.ErrWrongExtension(path, v.extension))
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return fail(ctx, log, experrors.NewResourceError(experrors.ErrCodeReadFailed, "error reading file", err).WithPath(path))
	}

	if strings.TrimSpace(string(content)) == "" {
		return fail(ctx, log, experrors.ErrEmptySource(path))
	}

	opts.progressf("File read successfully")
	return outcome.Success(path)
}
