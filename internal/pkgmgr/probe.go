package pkgmgr

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// ErrManagerNotFound is returned when the package manager executable is not
// on the search path.
var ErrManagerNotFound = errors.New("package manager not found")

// Probe finds executables. PathProbe is the real implementation.
type Probe interface {
	LookPath(file string) (string, error)
}

// PathProbe searches the process PATH.
type PathProbe struct{}

// LookPath wraps exec.LookPath.
func (PathProbe) LookPath(file string) (string, error) { return exec.LookPath(file) }

// Preflight verifies that m can be executed and returns its resolved path.
func Preflight(probe Probe, m Manager) (string, error) {
	path, err := probe.LookPath(m.Name)
	if err != nil {
		return "", fmt.Errorf("%w: %s is not on PATH, %s (%v)", ErrManagerNotFound, m.Name, m.InstallHint, err)
	}
	return path, nil
}

// Version runs "<manager> --version" and parses the result.
func Version(ctx context.Context, r Runner, m Manager) (*semver.Version, error) {
	out, err := r.Output(ctx, "", m.Name, "--version")
	if err != nil {
		return nil, fmt.Errorf("reading %s version: %w", m.Name, err)
	}
	return ParseVersion(out)
}

// ParseVersion parses version output such as "10.8.2\n" or "v9.0.0".
func ParseVersion(out string) (*semver.Version, error) {
	fields := strings.Fields(out)
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty version output")
	}
	raw := strings.TrimPrefix(fields[len(fields)-1], "v")
	v, err := semver.NewVersion(raw)
	if err != nil {
		return nil, fmt.Errorf("parsing version %q: %w", raw, err)
	}
	return v, nil
}

// CheckVersion reports an error when v does not satisfy constraint, e.g. ">= 7".
func CheckVersion(v *semver.Version, constraint string) error {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return fmt.Errorf("parsing version constraint %q: %w", constraint, err)
	}
	if ok, errs := c.Validate(v); !ok {
		msgs := make([]string, 0, len(errs))
		for _, e := range errs {
			msgs = append(msgs, e.Error())
		}
		return fmt.Errorf("version %s does not satisfy %q: %s", v, constraint, strings.Join(msgs, "; "))
	}
	return nil
}

// RequireVersion checks that the installed m satisfies constraint.
func RequireVersion(ctx context.Context, r Runner, m Manager, constraint string) error {
	v, err := Version(ctx, r, m)
	if err != nil {
		return err
	}
	if err := CheckVersion(v, constraint); err != nil {
		return fmt.Errorf("%s: %w", m.Name, err)
	}
	return nil
}
