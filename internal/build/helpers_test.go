package build

import (
	"bytes"
	"context"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/conneroisu/expressor/internal/config"
	"github.com/conneroisu/expressor/internal/testutils"
)

const (
	helloTemplate = testutils.HelloTemplate
	sampleSource  = testutils.SampleSource
)

// fakeRunner records invocations instead of spawning processes.
type fakeRunner struct {
	available map[string]bool
	statuses  map[string]int
	errs      map[string]error
	calls     []Command
}

func newFakeRunner(available ...string) *fakeRunner {
	f := &fakeRunner{
		available: make(map[string]bool),
		statuses:  make(map[string]int),
		errs:      make(map[string]error),
	}
	for _, name := range available {
		f.available[name] = true
	}
	return f
}

func (f *fakeRunner) LookPath(name string) (string, error) {
	if f.available[name] {
		return "/usr/bin/" + name, nil
	}
	return "", exec.ErrNotFound
}

func (f *fakeRunner) Run(_ context.Context, cmd Command) (int, error) {
	f.calls = append(f.calls, cmd)
	if err := f.errs[cmd.Name]; err != nil {
		return -1, err
	}
	return f.statuses[cmd.Name], nil
}

func (f *fakeRunner) callsTo(name string) int {
	n := 0
	for _, c := range f.calls {
		if c.Name == name {
			n++
		}
	}
	return n
}

// newTestConfig returns the default configuration with a template
// directory containing the generic HelloWorld template.
func newTestConfig(t *testing.T) *config.Config {
	t.Helper()
	return testutils.CreateTempProject(t).Config()
}

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	return testutils.WriteFile(t, path, content)
}

// writeSource creates an Expresso source file in a fresh directory.
func writeSource(t *testing.T, name, content string) string {
	t.Helper()
	return testutils.WriteFile(t, filepath.Join(t.TempDir(), name), content)
}

func verboseOptions(outDir string) (Options, *bytes.Buffer) {
	var buf bytes.Buffer
	return Options{OutputDir: outDir, Verbose: true, Progress: &buf}, &buf
}
