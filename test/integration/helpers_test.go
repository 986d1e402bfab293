//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// fakeNPM records each install as "<dir>|<args>" in $FAKE_NPM_LOG and fails
// any invocation naming $FAKE_NPM_FAIL.
const fakeNPM = `#!/bin/sh
if [ "$1" = "--version" ]; then
  echo "10.8.2"
  exit 0
fi
echo "$(pwd)|$*" >> "$FAKE_NPM_LOG"
for arg in "$@"; do
  if [ -n "$FAKE_NPM_FAIL" ] && [ "$arg" = "$FAKE_NPM_FAIL" ]; then
    echo "npm ERR! 404 Not Found - $arg" >&2
    exit 1
  fi
done
echo "added 1 package"
`

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir string // WEBDEVENV_HOME
	WorkDir string // process working directory during the test
	LogFile string // fake npm invocation log
}

// setupTestEnv sandboxes the config directory and working directory and puts
// a fake npm first on PATH.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake npm is a shell script")
	}

	env := &testEnv{
		HomeDir: t.TempDir(),
		WorkDir: t.TempDir(),
	}
	binDir := t.TempDir()
	env.LogFile = filepath.Join(binDir, "npm.log")

	writeFile(t, filepath.Join(binDir, "npm"), fakeNPM)
	if err := os.Chmod(filepath.Join(binDir, "npm"), 0755); err != nil {
		t.Fatal(err)
	}

	t.Setenv("PATH", binDir+string(os.PathListSeparator)+os.Getenv("PATH"))
	t.Setenv("WEBDEVENV_HOME", env.HomeDir)
	t.Setenv("FAKE_NPM_LOG", env.LogFile)
	t.Setenv("FAKE_NPM_FAIL", "")
	t.Chdir(env.WorkDir)

	return env
}

// npmCalls returns the logged invocations as "<dir base>|<args>".
func npmCalls(t *testing.T, env *testEnv) []string {
	t.Helper()
	data, err := os.ReadFile(env.LogFile)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		t.Fatal(err)
	}
	var calls []string
	for _, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
		dir, args, _ := strings.Cut(line, "|")
		calls = append(calls, filepath.Base(dir)+"|"+args)
	}
	return calls
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func assertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected directory %s to exist: %v", path, err)
		return
	}
	if !info.IsDir() {
		t.Errorf("expected %s to be a directory", path)
	}
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file %s to exist: %v", path, err)
	}
}
