package build

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	experrors "github.com/conneroisu/expressor/internal/errors"
	"github.com/conneroisu/expressor/internal/outcome"
	"github.com/conneroisu/expressor/internal/templates"
)

// Materializer produces the target source file for a validated Expresso
// file by copying a template and substituting the derived name for its
// placeholder. It stands in for a real transpiler.
type Materializer struct {
	resolver    *templates.Resolver
	placeholder string
	extension   string
}

// NewMaterializer creates a materializer that writes files ending in
// extension, using templates from resolver.
func NewMaterializer(resolver *templates.Resolver, placeholder, extension string) *Materializer {
	return &Materializer{
		resolver:    resolver,
		placeholder: placeholder,
		extension:   extension,
	}
}

// Materialize writes <OutputDir>/<derived name><extension> and returns its
// path.
func (m *Materializer) Materialize(ctx context.Context, sourcePath string, opts Options) outcome.Outcome[string] {
	log := opts.logger("materialize")
	opts.progressf("Transpiling...")

	name := templates.DerivedName(sourcePath)
	log.Debug(ctx, "resolving template", "name", name, "candidates", m.resolver.Candidates(name))

	tpl, missing, ok := m.resolver.Resolve(name)
	if !ok {
		return fail(ctx, log, experrors.ErrTemplateNotFound(missing))
	}
	log.Debug(ctx, "template resolved", "path", tpl.Path, "origin", tpl.Origin.String())

	outDir := opts.OutputDir
	if outDir == "" {
		outDir = "."
	}

	created, err := ensureDir(outDir)
	if err != nil {
		return fail(ctx, log, experrors.NewResourceError(experrors.ErrCodeOutputDir, "error creating output directory", err).WithPath(outDir))
	}
	if created {
		opts.progressf("Created directory: %s", outDir)
	}

	content, err := tpl.Read()
	if err != nil {
		return fail(ctx, log, experrors.NewResourceError(experrors.ErrCodeReadFailed, "error copying template", err).WithPath(tpl.Path))
	}

	placeholder := m.placeholder
	if tpl.Origin == templates.OriginBuiltin {
		placeholder = templates.BuiltinPlaceholder
	}

	target := filepath.Join(outDir, name+m.extension)
	if err := os.WriteFile(target, []byte(templates.Substitute(content, placeholder, name)), 0644); err != nil {
		return fail(ctx, log, experrors.NewResourceError(experrors.ErrCodeWriteFailed, "error copying template", err).WithPath(target))
	}

	opts.progressf("File transpiled to: %s", target)
	return outcome.Success(target)
}

// ensureDir creates dir and its parents when missing and reports whether it
// had to.
func ensureDir(dir string) (bool, error) {
	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return false, &fs.PathError{Op: "mkdir", Path: dir, Err: fs.ErrExist}
		}
		return false, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return false, err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return false, err
	}
	return true, nil
}
