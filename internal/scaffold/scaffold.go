package scaffold

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/indigos33k3r/WebDevelopmentEnvironment/internal/manifest"
	"github.com/indigos33k3r/WebDevelopmentEnvironment/internal/pkgmgr"
)

// Result holds the outcome of one scaffolded base path.
type Result struct {
	BasePath string
	Created  []string
	Warnings []string
}

// Scaffolder creates projects and installs their packages.
type Scaffolder struct {
	Manager pkgmgr.Manager
	Probe   pkgmgr.Probe
	// Runner is used for the optional version check; nil means ExecRunner.
	Runner pkgmgr.Runner
	// Installer is nil when package installation is skipped.
	Installer *pkgmgr.Installer
	// PathPolicy decides whether a failed base path stops the remaining ones.
	PathPolicy pkgmgr.Policy
	// MinVersion is an optional semver constraint on the package manager.
	MinVersion string
	Out        io.Writer
}

// Preflight checks that the package manager is available. It does nothing
// when installation is skipped.
func (s *Scaffolder) Preflight(ctx context.Context) error {
	if s.Installer == nil {
		return nil
	}
	probe := s.Probe
	if probe == nil {
		probe = pkgmgr.PathProbe{}
	}
	if _, err := pkgmgr.Preflight(probe, s.Manager); err != nil {
		return err
	}
	if s.MinVersion != "" {
		runner := s.Runner
		if runner == nil {
			runner = &pkgmgr.ExecRunner{}
		}
		if err := pkgmgr.RequireVersion(ctx, runner, s.Manager, s.MinVersion); err != nil {
			return err
		}
	}
	return nil
}

// Run checks prerequisites once and then scaffolds each request in order.
// A failed prerequisite returns before any path is touched. Results are
// returned for every path that was attempted.
func (s *Scaffolder) Run(ctx context.Context, reqs []Request) ([]*Result, error) {
	if err := s.Preflight(ctx); err != nil {
		return nil, err
	}

	var (
		results  []*Result
		failures []error
	)
	for _, req := range reqs {
		if err := ctx.Err(); err != nil {
			return results, errors.Join(append(failures, err)...)
		}

		s.logf("Scaffolding %s\n", req.BasePath)
		res, err := s.Scaffold(ctx, req)
		results = append(results, res)
		if err != nil {
			s.logf("[FAIL] %s: %v\n", req.BasePath, err)
			if s.PathPolicy != pkgmgr.PolicyContinue {
				return results, err
			}
			failures = append(failures, err)
			continue
		}
		s.logf("[ OK ] %s\n", req.BasePath)
	}
	return results, errors.Join(failures...)
}

// Scaffold creates one project. Filesystem failures stop at the failing
// step and leave earlier steps in place.
func (s *Scaffolder) Scaffold(ctx context.Context, req Request) (*Result, error) {
	req = req.WithDefaults()
	plan := req.Plan()
	res := &Result{BasePath: req.BasePath}

	created, err := CreateStructure(plan, s.Out)
	res.Created = append(res.Created, created...)
	if err != nil {
		return res, err
	}

	pkg := manifest.New(manifest.PackageName(baseName(req.BasePath)))
	path, err := manifest.Write(plan.Base, pkg)
	if err != nil {
		return res, &StepError{Path: plan.Manifest, Step: StepManifest, Err: err}
	}
	res.Created = append(res.Created, path)
	s.logf("  create %s\n", path)
	res.Warnings = append(res.Warnings, validateManifest(path)...)

	if req.BuildConfig {
		if err := WriteBuildConfig(req, plan); err != nil {
			return res, err
		}
		res.Created = append(res.Created, plan.BuildConfig)
		s.logf("  create %s\n", plan.BuildConfig)
	}

	if s.Installer == nil {
		return res, nil
	}
	if err := s.Installer.Install(ctx, plan.Base, req.DevPackages, req.Dependencies); err != nil {
		return res, &StepError{Path: plan.Base, Step: StepInstall, Err: err}
	}
	return res, nil
}

func validateManifest(path string) []string {
	result, err := manifest.ValidateFile(path)
	if err != nil {
		return []string{fmt.Sprintf("Could not validate manifest: %v", err)}
	}
	var warnings []string
	for _, issue := range result.Issues {
		warnings = append(warnings, issue.String())
	}
	return warnings
}

// baseName returns the last element of the absolute base path so "." still
// names the project after its directory.
func baseName(base string) string {
	if abs, err := filepath.Abs(base); err == nil {
		base = abs
	}
	return filepath.Base(base)
}

func (s *Scaffolder) logf(format string, args ...any) {
	if s.Out != nil {
		fmt.Fprintf(s.Out, format, args...)
	}
}
