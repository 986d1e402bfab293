package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"github.com/indigos33k3r/WebDevelopmentEnvironment/internal/branding"
)

//go:embed templates/gulpfile.js.tmpl
var templateFS embed.FS

// buildConfigData holds the template variables of gulpfile.js. Paths are
// relative to the project root and use forward slashes as gulp globs expect.
type buildConfigData struct {
	Tool   string
	App    string
	CSS    string
	Fonts  string
	Images string
	JS     string
	Sass   string
	HTML   string
	Dist   string
}

// RenderBuildConfig renders gulpfile.js for the folder names in r.
func RenderBuildConfig(r Request) ([]byte, error) {
	r = r.WithDefaults()

	tmplBytes, err := templateFS.ReadFile("templates/gulpfile.js.tmpl")
	if err != nil {
		return nil, fmt.Errorf("reading build config template: %w", err)
	}
	tmpl, err := template.New(BuildConfigFile).Funcs(sprig.TxtFuncMap()).Parse(string(tmplBytes))
	if err != nil {
		return nil, fmt.Errorf("parsing build config template: %w", err)
	}

	data := buildConfigData{
		Tool:   branding.CLIName(),
		App:    r.AppFolder,
		CSS:    r.CSSFolder,
		Fonts:  r.FontsFolder,
		Images: r.ImagesFolder,
		JS:     r.JSFolder,
		Sass:   r.SassFolder,
		HTML:   r.HTMLFile,
		Dist:   r.DistFolder,
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing build config template: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteBuildConfig renders and writes gulpfile.js at p.BuildConfig. It fails
// if the file already exists.
func WriteBuildConfig(r Request, p Plan) error {
	content, err := RenderBuildConfig(r)
	if err != nil {
		return &StepError{Path: p.BuildConfig, Step: StepBuildConfig, Err: err}
	}
	f, err := os.OpenFile(p.BuildConfig, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return &StepError{Path: p.BuildConfig, Step: StepBuildConfig, Err: err}
	}
	if _, err := f.Write(content); err != nil {
		f.Close()
		return &StepError{Path: p.BuildConfig, Step: StepBuildConfig, Err: err}
	}
	if err := f.Close(); err != nil {
		return &StepError{Path: p.BuildConfig, Step: StepBuildConfig, Err: err}
	}
	return nil
}
