package pactool

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gookit/color"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	color.Disable()
	os.Exit(m.Run())
}

type call struct {
	Name string
	Args []string
}

func (c call) String() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

// fakeRunner records every command instead of executing it.
type fakeRunner struct {
	calls      []call
	outputs    map[string]string
	outputErrs map[string]error
	runErr     error
}

func newFakeRunner() *fakeRunner {
	return &fakeRunner{outputs: map[string]string{}, outputErrs: map[string]error{}}
}

func (f *fakeRunner) Run(name string, args ...string) error {
	f.calls = append(f.calls, call{Name: name, Args: args})
	return f.runErr
}

func (f *fakeRunner) Output(name string, args ...string) ([]byte, error) {
	key := call{Name: name, Args: args}.String()
	return []byte(f.outputs[key]), f.outputErrs[key]
}

// ran returns the recorded Run calls as "name arg..." strings.
func (f *fakeRunner) ran() []string {
	out := make([]string, 0, len(f.calls))
	for _, c := range f.calls {
		out = append(out, c.String())
	}
	return out
}

func newTestSession(input string) (*Session, *fakeRunner, *bytes.Buffer, *bytes.Buffer) {
	runner := newFakeRunner()
	var stdout, stderr bytes.Buffer
	s := NewSession(context.Background(), nil, runner, strings.NewReader(input), &stdout, &stderr)
	return s, runner, &stdout, &stderr
}

// withRoot points rootDir at a fresh temporary directory for the test.
func withRoot(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	old := rootDir
	rootDir = dir
	t.Cleanup(func() { rootDir = old })
	return dir
}

func touch(t *testing.T, root, rel string) {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, nil, 0o755))
}
