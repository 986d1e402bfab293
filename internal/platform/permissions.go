package platform

import (
	"fmt"
	"os"
	"runtime"
)

// Chmod sets permission bits on path. It does nothing on Windows.
func Chmod(path string, mode os.FileMode) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	return os.Chmod(path, mode)
}

// EnsurePrivateDir creates dir if needed and restricts it to the owner,
// tightening the mode of a directory that already exists.
func EnsurePrivateDir(dir string) error {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	if err := Chmod(dir, 0700); err != nil {
		return fmt.Errorf("restricting %s: %w", dir, err)
	}
	return nil
}
