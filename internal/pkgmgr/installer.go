package pkgmgr

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/indigos33k3r/WebDevelopmentEnvironment/internal/platform"
)

// Policy decides what happens after a failure inside a loop of independent
// units (package installs, scaffold paths).
type Policy string

const (
	// PolicyContinue runs every remaining unit and reports all failures together.
	PolicyContinue Policy = "continue"
	// PolicyAbort stops at the first failure.
	PolicyAbort Policy = "abort"
)

// ParsePolicy validates a policy name.
func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(strings.ToLower(strings.TrimSpace(s))); p {
	case PolicyContinue, PolicyAbort:
		return p, nil
	default:
		return "", fmt.Errorf("invalid failure policy %q: must be %q or %q", s, PolicyContinue, PolicyAbort)
	}
}

// InstallError records one failed package manager invocation.
type InstallError struct {
	Packages []string
	Category Category
	Err      error
}

func (e *InstallError) Error() string {
	return fmt.Sprintf("installing %s package %s: %v", e.Category, strings.Join(e.Packages, " "), e.Err)
}

func (e *InstallError) Unwrap() error { return e.Err }

// Installer installs package lists into a project directory.
type Installer struct {
	Manager Manager
	Runner  Runner
	WorkDir platform.WorkDir
	Policy  Policy
	// Batch installs each category with a single invocation instead of one per package.
	Batch bool
	Out   io.Writer
}

type installStep struct {
	category Category
	packages []string
}

// Install enters dir, installs every dev package and then every dependency
// package in list order, and returns to the previous working directory
// whether or not the installs succeed.
func (i *Installer) Install(ctx context.Context, dir string, dev, deps []string) (err error) {
	steps := i.plan(dev, deps)
	if len(steps) == 0 {
		return nil
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", dir, err)
	}
	restore, err := platform.Enter(i.workDir(), abs)
	if err != nil {
		return err
	}
	defer func() {
		if rerr := restore(); rerr != nil {
			err = errors.Join(err, rerr)
		}
	}()

	var failures []error
	for _, step := range steps {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return errors.Join(append(failures, ctxErr)...)
		}

		label := strings.Join(step.packages, " ")
		args := i.Manager.InstallArgs(step.category, step.packages...)
		if runErr := i.Runner.Run(ctx, abs, i.Manager.Name, args...); runErr != nil {
			failure := &InstallError{Packages: step.packages, Category: step.category, Err: runErr}
			i.logf("  [FAIL] %s (%s): %v\n", label, step.category, runErr)
			if i.Policy == PolicyAbort {
				return failure
			}
			failures = append(failures, failure)
			continue
		}
		i.logf("  [ OK ] %s (%s)\n", label, step.category)
	}

	return errors.Join(failures...)
}

func (i *Installer) plan(dev, deps []string) []installStep {
	var steps []installStep
	for _, group := range []installStep{{Dev, dev}, {Runtime, deps}} {
		pkgs := nonEmpty(group.packages)
		if len(pkgs) == 0 {
			continue
		}
		if i.Batch {
			steps = append(steps, installStep{group.category, pkgs})
			continue
		}
		for _, p := range pkgs {
			steps = append(steps, installStep{group.category, []string{p}})
		}
	}
	return steps
}

func (i *Installer) workDir() platform.WorkDir {
	if i.WorkDir == nil {
		return platform.OSWorkDir{}
	}
	return i.WorkDir
}

func (i *Installer) logf(format string, args ...any) {
	if i.Out != nil {
		fmt.Fprintf(i.Out, format, args...)
	}
}

func nonEmpty(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
