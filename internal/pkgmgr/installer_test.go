package pkgmgr

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func newTestInstaller(r *fakeRunner, wd *fakeWorkDir, policy Policy) *Installer {
	npm, _ := Lookup("npm")
	return &Installer{
		Manager: npm,
		Runner:  r,
		WorkDir: wd,
		Policy:  policy,
		Out:     &bytes.Buffer{},
	}
}

func TestInstallOrder(t *testing.T) {
	r := &fakeRunner{}
	wd := &fakeWorkDir{cwd: "/home/dev"}
	inst := newTestInstaller(r, wd, PolicyContinue)
	dir := t.TempDir()

	if err := inst.Install(context.Background(), dir, []string{"a", "b"}, []string{"c"}); err != nil {
		t.Fatalf("Install() error: %v", err)
	}

	want := []string{
		"npm install a --save-dev --silent",
		"npm install b --save-dev --silent",
		"npm install c --save --silent",
	}
	if got := r.commandLines(); !reflect.DeepEqual(got, want) {
		t.Errorf("invocations = %v, want %v", got, want)
	}
	for _, c := range r.calls {
		if c.dir != dir {
			t.Errorf("invocation ran in %q, want %q", c.dir, dir)
		}
	}
	if wd.cwd != "/home/dev" {
		t.Errorf("working directory = %q, want restored to /home/dev", wd.cwd)
	}
	if want := []string{dir, "/home/dev"}; !reflect.DeepEqual(wd.history, want) {
		t.Errorf("chdir history = %v, want %v", wd.history, want)
	}
}

func TestInstallContinueAggregatesFailures(t *testing.T) {
	r := &fakeRunner{fail: map[string]bool{"a": true, "c": true}}
	wd := &fakeWorkDir{cwd: "/home/dev"}
	inst := newTestInstaller(r, wd, PolicyContinue)

	err := inst.Install(context.Background(), t.TempDir(), []string{"a", "b"}, []string{"c"})
	if err == nil {
		t.Fatal("expected error")
	}
	if len(r.calls) != 3 {
		t.Errorf("got %d invocations, want 3 (continue-on-error)", len(r.calls))
	}

	var ie *InstallError
	if !errors.As(err, &ie) {
		t.Fatalf("error %v does not wrap *InstallError", err)
	}
	msg := err.Error()
	if !strings.Contains(msg, "dev package a") || !strings.Contains(msg, "dependency package c") {
		t.Errorf("aggregated error should name both failures, got %q", msg)
	}
	if wd.cwd != "/home/dev" {
		t.Errorf("working directory = %q, want restored after failures", wd.cwd)
	}
}

func TestInstallAbortStopsAtFirstFailure(t *testing.T) {
	r := &fakeRunner{fail: map[string]bool{"a": true}}
	wd := &fakeWorkDir{cwd: "/home/dev"}
	inst := newTestInstaller(r, wd, PolicyAbort)

	err := inst.Install(context.Background(), t.TempDir(), []string{"a", "b"}, []string{"c"})
	if err == nil {
		t.Fatal("expected error")
	}
	if len(r.calls) != 1 {
		t.Errorf("got %d invocations, want 1 (abort-on-error)", len(r.calls))
	}
	if wd.cwd != "/home/dev" {
		t.Errorf("working directory = %q, want restored after abort", wd.cwd)
	}
}

func TestInstallBatch(t *testing.T) {
	r := &fakeRunner{}
	inst := newTestInstaller(r, &fakeWorkDir{cwd: "/"}, PolicyContinue)
	inst.Batch = true

	if err := inst.Install(context.Background(), t.TempDir(), []string{"a", "b"}, []string{"c"}); err != nil {
		t.Fatalf("Install() error: %v", err)
	}
	want := []string{
		"npm install a b --save-dev --silent",
		"npm install c --save --silent",
	}
	if got := r.commandLines(); !reflect.DeepEqual(got, want) {
		t.Errorf("invocations = %v, want %v", got, want)
	}
}

func TestInstallSkipsBlankNamesAndEmptyLists(t *testing.T) {
	r := &fakeRunner{}
	wd := &fakeWorkDir{cwd: "/"}
	inst := newTestInstaller(r, wd, PolicyContinue)

	if err := inst.Install(context.Background(), t.TempDir(), nil, []string{" ", ""}); err != nil {
		t.Fatalf("Install() error: %v", err)
	}
	if len(r.calls) != 0 {
		t.Errorf("got %d invocations, want 0", len(r.calls))
	}
	if len(wd.history) != 0 {
		t.Errorf("working directory touched with nothing to install: %v", wd.history)
	}
}

func TestInstallRelativeDirIsResolved(t *testing.T) {
	r := &fakeRunner{}
	inst := newTestInstaller(r, &fakeWorkDir{cwd: "/"}, PolicyContinue)

	if err := inst.Install(context.Background(), "site", []string{"a"}, nil); err != nil {
		t.Fatalf("Install() error: %v", err)
	}
	if !filepath.IsAbs(r.calls[0].dir) {
		t.Errorf("invocation dir %q is not absolute", r.calls[0].dir)
	}
}

func TestInstallCancelled(t *testing.T) {
	r := &fakeRunner{}
	wd := &fakeWorkDir{cwd: "/home/dev"}
	inst := newTestInstaller(r, wd, PolicyContinue)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := inst.Install(ctx, t.TempDir(), []string{"a"}, []string{"c"})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Install() error = %v, want context.Canceled", err)
	}
	if len(r.calls) != 0 {
		t.Errorf("got %d invocations after cancel, want 0", len(r.calls))
	}
	if wd.cwd != "/home/dev" {
		t.Errorf("working directory = %q, want restored", wd.cwd)
	}
}

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    Policy
		wantErr bool
	}{
		{"continue", PolicyContinue, false},
		{"ABORT", PolicyAbort, false},
		{" abort ", PolicyAbort, false},
		{"retry", "", true},
	}
	for _, tt := range tests {
		got, err := ParsePolicy(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePolicy(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParsePolicy(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
