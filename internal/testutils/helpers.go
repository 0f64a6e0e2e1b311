// Package testutils holds fixtures shared by the expressor test suites.
package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/conneroisu/expressor/internal/config"
	"github.com/stretchr/testify/require"
)

// HelloTemplate is a minimal target template carrying the default
// placeholder in its class name and its output.
const HelloTemplate = `public class HelloWorld {
    public static void main(String[] args) {
        System.out.println("Hello from HelloWorld");
    }
}
`

// SampleSource is a small but non-trivial Expresso program.
const SampleSource = `// Test Expresso file
data nat = {
    Zero,
    S(nat)
}

fun add(x:nat, y:nat) = match x with
    Zero -> y
    S(z) -> S(add(z, y))
`

// Project is a temporary directory laid out like an expressor project.
type Project struct {
	Dir         string
	TemplateDir string
	OutDir      string
}

// CreateTempProject creates a project whose template directory holds the
// HelloWorld fallback template. OutDir is not created.
func CreateTempProject(t *testing.T) *Project {
	t.Helper()
	dir := t.TempDir()

	p := &Project{
		Dir:         dir,
		TemplateDir: filepath.Join(dir, "template"),
		OutDir:      filepath.Join(dir, "out"),
	}
	WriteFile(t, filepath.Join(p.TemplateDir, config.DefaultTemplateFallback+config.DefaultTargetExtension), HelloTemplate)
	return p
}

// Source writes a source file into the project and returns its path.
func (p *Project) Source(t *testing.T, name, content string) string {
	t.Helper()
	return WriteFile(t, filepath.Join(p.Dir, name), content)
}

// Template writes a named template into the project's template directory.
func (p *Project) Template(t *testing.T, name, content string) string {
	t.Helper()
	return WriteFile(t, filepath.Join(p.TemplateDir, name+config.DefaultTargetExtension), content)
}

// Config returns the default configuration pointed at the project's
// template directory.
func (p *Project) Config() *config.Config {
	cfg := config.Default()
	cfg.Template.Dir = p.TemplateDir
	return cfg
}

// WriteFile creates path and its parent directories with content.
func WriteFile(t *testing.T, path, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// AssertFilePermissions checks that a file has the expected mode bits.
func AssertFilePermissions(t *testing.T, path string, expectedMode os.FileMode) {
	t.Helper()
	info, err := os.Stat(path)
	require.NoError(t, err)

	actualMode := info.Mode()
	require.Equal(t, expectedMode, actualMode&os.FileMode(0777),
		"File %s has incorrect permissions: got %o, want %o",
		path, actualMode&os.FileMode(0777), expectedMode)
}
