package pkgmgr

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Runner executes a package manager subprocess.
type Runner interface {
	// Run executes name with args in dir and streams its output.
	Run(ctx context.Context, dir, name string, args ...string) error
	// Output executes name with args in dir and returns its stdout.
	Output(ctx context.Context, dir, name string, args ...string) (string, error)
}

// ExecRunner runs real processes through os/exec.
type ExecRunner struct {
	// Stdout and Stderr can be set for testing; defaults to os.Stdout/os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
}

// Run executes the command and returns an error for a non-zero exit status.
// Stderr is captured alongside streaming so the error carries the reason.
func (r *ExecRunner) Run(ctx context.Context, dir, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stderrBuf bytes.Buffer
	cmd.Stdout = r.stdout()
	cmd.Stderr = io.MultiWriter(r.stderr(), &stderrBuf)

	if err := cmd.Run(); err != nil {
		return commandError(name, args, err, stderrBuf.String())
	}
	return nil
}

// Output executes the command and returns its trimmed stdout.
func (r *ExecRunner) Output(ctx context.Context, dir, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	if err := cmd.Run(); err != nil {
		return "", commandError(name, args, err, stderrBuf.String())
	}
	return strings.TrimSpace(stdoutBuf.String()), nil
}

func (r *ExecRunner) stdout() io.Writer {
	if r.Stdout == nil {
		return os.Stdout
	}
	return r.Stdout
}

func (r *ExecRunner) stderr() io.Writer {
	if r.Stderr == nil {
		return os.Stderr
	}
	return r.Stderr
}

func commandError(name string, args []string, err error, stderr string) error {
	line := strings.TrimSpace(name + " " + strings.Join(args, " "))
	if exitErr, ok := err.(*exec.ExitError); ok {
		msg := lastLine(stderr)
		if msg == "" {
			return fmt.Errorf("%s exited with status %d", line, exitErr.ExitCode())
		}
		return fmt.Errorf("%s exited with status %d: %s", line, exitErr.ExitCode(), msg)
	}
	return fmt.Errorf("running %s: %w", line, err)
}

func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	return strings.TrimSpace(lines[len(lines)-1])
}
