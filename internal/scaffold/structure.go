package scaffold

import (
	"fmt"
	"io"
	"os"
)

// Step names reported in StepError.
const (
	StepBasePath     = "base path"
	StepAppFolder    = "app folder"
	StepCSSFolder    = "css folder"
	StepFontsFolder  = "fonts folder"
	StepImagesFolder = "images folder"
	StepJSFolder     = "js folder"
	StepSassFolder   = "sass folder"
	StepEntryFile    = "entry file"
	StepDistFolder   = "dist folder"
	StepManifest     = "manifest"
	StepBuildConfig  = "build config"
	StepInstall      = "install"
)

// StepError reports which step of a scaffold failed and on which path.
type StepError struct {
	Path string
	Step string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Step, e.Path, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

// CreateStructure creates the folder tree and the empty entry file described
// by p. Existing folders or files are reported as conflicts; nothing created
// before a failure is removed.
func CreateStructure(p Plan, out io.Writer) ([]string, error) {
	if err := os.MkdirAll(p.Base, 0755); err != nil {
		return nil, &StepError{Path: p.Base, Step: StepBasePath, Err: err}
	}

	var created []string
	for _, e := range p.entries() {
		var err error
		switch e.kind {
		case dirEntry:
			err = os.Mkdir(e.path, 0755)
		case fileEntry:
			err = createEmpty(e.path)
		}
		if err != nil {
			return created, &StepError{Path: e.path, Step: e.step, Err: err}
		}
		created = append(created, e.path)
		if out != nil {
			fmt.Fprintf(out, "  create %s\n", e.path)
		}
	}
	return created, nil
}

func createEmpty(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return err
	}
	return f.Close()
}
