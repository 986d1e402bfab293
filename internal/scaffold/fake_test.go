package scaffold

import (
	"context"
	"errors"
	"strings"
)

type fakeRunner struct {
	calls   []string
	dirs    []string
	fail    map[string]bool
	version string
}

func (f *fakeRunner) Run(_ context.Context, dir, name string, args ...string) error {
	f.calls = append(f.calls, name+" "+strings.Join(args, " "))
	f.dirs = append(f.dirs, dir)
	for _, a := range args {
		if f.fail[a] {
			return errors.New("exit status 1")
		}
	}
	return nil
}

func (f *fakeRunner) Output(_ context.Context, _, name string, args ...string) (string, error) {
	f.calls = append(f.calls, name+" "+strings.Join(args, " "))
	if f.version == "" {
		return "", errors.New("exit status 127")
	}
	return f.version, nil
}

type fakeWorkDir struct {
	cwd string
}

func (w *fakeWorkDir) Getwd() (string, error) { return w.cwd, nil }

func (w *fakeWorkDir) Chdir(dir string) error {
	w.cwd = dir
	return nil
}

type fakeProbe struct {
	found bool
}

func (p fakeProbe) LookPath(file string) (string, error) {
	if !p.found {
		return "", errors.New("executable file not found in $PATH")
	}
	return "/usr/bin/" + file, nil
}
