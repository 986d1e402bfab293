package pkgmgr

import (
	"context"
	"errors"
	"strings"
)

type call struct {
	dir  string
	name string
	args []string
}

// fakeRunner records invocations and fails any call whose arguments mention
// a package listed in fail.
type fakeRunner struct {
	calls   []call
	fail    map[string]bool
	version string
}

func (f *fakeRunner) Run(_ context.Context, dir, name string, args ...string) error {
	f.calls = append(f.calls, call{dir: dir, name: name, args: args})
	for _, a := range args {
		if f.fail[a] {
			return errors.New("exit status 1")
		}
	}
	return nil
}

func (f *fakeRunner) Output(_ context.Context, dir, name string, args ...string) (string, error) {
	f.calls = append(f.calls, call{dir: dir, name: name, args: args})
	if f.version == "" {
		return "", errors.New("exit status 127")
	}
	return f.version, nil
}

func (f *fakeRunner) commandLines() []string {
	lines := make([]string, 0, len(f.calls))
	for _, c := range f.calls {
		lines = append(lines, c.name+" "+strings.Join(c.args, " "))
	}
	return lines
}

// fakeWorkDir tracks directory changes without touching the process.
type fakeWorkDir struct {
	cwd     string
	history []string
}

func (w *fakeWorkDir) Getwd() (string, error) { return w.cwd, nil }

func (w *fakeWorkDir) Chdir(dir string) error {
	w.history = append(w.history, dir)
	w.cwd = dir
	return nil
}

type fakeProbe map[string]string

func (p fakeProbe) LookPath(file string) (string, error) {
	if path, ok := p[file]; ok {
		return path, nil
	}
	return "", errors.New("executable file not found in $PATH")
}
