package pkgmgr

import (
	"fmt"
	"sort"
	"strings"
)

// Category says whether a package is build-time tooling or a runtime dependency.
type Category int

const (
	Dev Category = iota
	Runtime
)

func (c Category) String() string {
	if c == Dev {
		return "dev"
	}
	return "dependency"
}

// Manager describes how to invoke one package manager.
type Manager struct {
	Name        string // executable looked up on PATH
	Install     string // install subcommand
	DevFlag     string // saves as a development dependency
	RuntimeFlag string // saves as a runtime dependency; empty when implied
	SilentFlag  string
	InstallHint string
}

var managers = map[string]Manager{
	"npm": {
		Name:        "npm",
		Install:     "install",
		DevFlag:     "--save-dev",
		RuntimeFlag: "--save",
		SilentFlag:  "--silent",
		InstallHint: "install Node.js from https://nodejs.org first",
	},
	"pnpm": {
		Name:        "pnpm",
		Install:     "add",
		DevFlag:     "--save-dev",
		RuntimeFlag: "--save-prod",
		SilentFlag:  "--silent",
		InstallHint: "run 'npm install -g pnpm' or enable it with 'corepack enable'",
	},
	"yarn": {
		Name:        "yarn",
		Install:     "add",
		DevFlag:     "--dev",
		SilentFlag:  "--silent",
		InstallHint: "run 'npm install -g yarn' or enable it with 'corepack enable'",
	},
}

// Lookup returns the Manager registered under name.
func Lookup(name string) (Manager, error) {
	m, ok := managers[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Manager{}, fmt.Errorf("unknown package manager %q (supported: %s)", name, strings.Join(Names(), ", "))
	}
	return m, nil
}

// Names returns the supported manager names in sorted order.
func Names() []string {
	names := make([]string, 0, len(managers))
	for name := range managers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// InstallArgs builds the argument list that installs pkgs in category c with
// normal output suppressed.
func (m Manager) InstallArgs(c Category, pkgs ...string) []string {
	args := []string{m.Install}
	args = append(args, pkgs...)
	switch {
	case c == Dev:
		args = append(args, m.DevFlag)
	case m.RuntimeFlag != "":
		args = append(args, m.RuntimeFlag)
	}
	if m.SilentFlag != "" {
		args = append(args, m.SilentFlag)
	}
	return args
}
