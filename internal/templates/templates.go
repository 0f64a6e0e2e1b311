// Package templates resolves the template used to materialize a target
// source file and performs the placeholder substitution.
//
// Lookup is a pure function over an ordered list of candidates: the template
// named after the source file, the generic fallback template, and, when
// enabled, the template embedded in the binary. The first candidate that
// exists wins.
package templates

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

//go:embed builtin/HelloWorld.java
var builtinFS embed.FS

// builtinPath is the embedded default template.
const builtinPath = "builtin/HelloWorld.java"

// BuiltinPlaceholder is the identifier the embedded template carries.
const BuiltinPlaceholder = "HelloWorld"

// Origin describes where a resolved template came from.
type Origin int

const (
	OriginNamed Origin = iota
	OriginFallback
	OriginBuiltin
)

// String returns the string representation of the Origin
func (o Origin) String() string {
	switch o {
	case OriginNamed:
		return "named"
	case OriginFallback:
		return "fallback"
	case OriginBuiltin:
		return "builtin"
	default:
		return "unknown"
	}
}

// Source is a resolved template.
type Source struct {
	// Path is the filesystem path, or "builtin:<name>" for the embedded
	// template.
	Path   string
	Origin Origin
	fsys   fs.FS
	name   string
}

// Read returns the full template content.
func (s Source) Read() (string, error) {
	data, err := fs.ReadFile(s.fsys, s.name)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Resolver looks up templates inside a directory.
type Resolver struct {
	// Dir is the template directory.
	Dir string
	// Fallback is the base name of the generic template.
	Fallback string
	// Extension is appended to template base names, e.g. ".java".
	Extension string
	// Builtin enables the embedded template as the last candidate.
	Builtin bool
	// FS overrides the filesystem Dir is read from. Nil means the OS
	// filesystem rooted at Dir.
	FS fs.FS
}

// Candidates returns the lookup order for derivedName without touching the
// filesystem.
func (r *Resolver) Candidates(derivedName string) []string {
	candidates := []string{
		filepath.Join(r.Dir, derivedName+r.Extension),
		filepath.Join(r.Dir, r.Fallback+r.Extension),
	}
	if r.Builtin {
		candidates = append(candidates, "builtin:"+r.Fallback+r.Extension)
	}
	return candidates
}

// Resolve returns the first existing template for derivedName. When no
// candidate exists it returns false together with the path of the last
// filesystem candidate tried, for use in diagnostics.
func (r *Resolver) Resolve(derivedName string) (Source, string, bool) {
	fsys := r.FS
	if fsys == nil {
		fsys = os.DirFS(r.Dir)
	}

	tries := []struct {
		name   string
		origin Origin
	}{
		{derivedName + r.Extension, OriginNamed},
		{r.Fallback + r.Extension, OriginFallback},
	}

	for _, try := range tries {
		if !fs.ValidPath(try.name) {
			continue
		}
		info, err := fs.Stat(fsys, try.name)
		if err != nil || info.IsDir() {
			continue
		}
		return Source{
			Path:   filepath.Join(r.Dir, try.name),
			Origin: try.origin,
			fsys:   fsys,
			name:   try.name,
		}, "", true
	}

	if r.Builtin {
		return Builtin(), "", true
	}

	return Source{}, filepath.Join(r.Dir, r.Fallback+r.Extension), false
}

// Builtin returns the embedded default template.
func Builtin() Source {
	return Source{
		Path:   "builtin:" + filepath.Base(builtinPath),
		Origin: OriginBuiltin,
		fsys:   builtinFS,
		name:   builtinPath,
	}
}

// Substitute replaces every occurrence of placeholder in content with name.
// The replacement is purely textual: occurrences inside comments, strings or
// longer identifiers are replaced too.
func Substitute(content, placeholder, name string) string {
	if placeholder == "" {
		return content
	}
	return strings.ReplaceAll(content, placeholder, name)
}

// DerivedName returns the base name of path without its extension.
func DerivedName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
