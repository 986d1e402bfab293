package platform

import (
	"fmt"
	"os"
)

// WorkDir is a handle on a process working directory.
type WorkDir interface {
	Getwd() (string, error)
	Chdir(dir string) error
}

// OSWorkDir is the working directory of the running process.
type OSWorkDir struct{}

// Getwd returns the process working directory.
func (OSWorkDir) Getwd() (string, error) { return os.Getwd() }

// Chdir changes the process working directory.
func (OSWorkDir) Chdir(dir string) error { return os.Chdir(dir) }

// Enter switches wd to dir and returns a function that switches back to the
// directory that was current before the call. The restore function must be
// called exactly once.
func Enter(wd WorkDir, dir string) (func() error, error) {
	prev, err := wd.Getwd()
	if err != nil {
		return nil, fmt.Errorf("reading working directory: %w", err)
	}
	if err := wd.Chdir(dir); err != nil {
		return nil, fmt.Errorf("entering %s: %w", dir, err)
	}
	return func() error {
		if err := wd.Chdir(prev); err != nil {
			return fmt.Errorf("restoring working directory %s: %w", prev, err)
		}
		return nil
	}, nil
}
