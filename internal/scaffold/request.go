package scaffold

import (
	"path/filepath"

	"github.com/indigos33k3r/WebDevelopmentEnvironment/internal/manifest"
)

// Default folder and file names.
const (
	DefaultAppFolder    = "app"
	DefaultCSSFolder    = "css"
	DefaultFontsFolder  = "fonts"
	DefaultImagesFolder = "images"
	DefaultJSFolder     = "js"
	DefaultSassFolder   = "scss"
	DefaultHTMLFile     = "index.html"
	DefaultDistFolder   = "wwwroot"
)

// BuildConfigFile is the name of the optional gulp build script.
const BuildConfigFile = "gulpfile.js"

// DefaultDevPackages are the build-time tools the generated gulpfile needs.
// del and gulp-autoprefixer are pinned to their last CommonJS majors so the
// gulpfile can require() them.
var DefaultDevPackages = []string{
	"gulp",
	"gulp-concat",
	"gulp-uglify",
	"gulp-clean-css",
	"gulp-autoprefixer@8",
	"gulp-sourcemaps",
	"gulp-gzip",
	"gulp-sass",
	"sass",
	"browser-sync",
	"del@6",
}

// DefaultDependencies are the runtime packages of the starter site.
var DefaultDependencies = []string{
	"jquery",
	"bootstrap",
}

// Request describes one project to scaffold. Blank names fall back to the
// defaults; nil package lists fall back to the default lists, while an empty
// non-nil list installs nothing.
type Request struct {
	BasePath     string
	BuildConfig  bool
	DevPackages  []string
	Dependencies []string

	AppFolder    string
	CSSFolder    string
	FontsFolder  string
	ImagesFolder string
	JSFolder     string
	SassFolder   string
	HTMLFile     string
	DistFolder   string
}

// Defaults returns a fully populated request for basePath.
func Defaults(basePath string) Request {
	return Request{BasePath: basePath}.WithDefaults()
}

// WithDefaults returns a copy of r with every blank field filled in.
func (r Request) WithDefaults() Request {
	fill := func(s *string, def string) {
		if *s == "" {
			*s = def
		}
	}
	fill(&r.AppFolder, DefaultAppFolder)
	fill(&r.CSSFolder, DefaultCSSFolder)
	fill(&r.FontsFolder, DefaultFontsFolder)
	fill(&r.ImagesFolder, DefaultImagesFolder)
	fill(&r.JSFolder, DefaultJSFolder)
	fill(&r.SassFolder, DefaultSassFolder)
	fill(&r.HTMLFile, DefaultHTMLFile)
	fill(&r.DistFolder, DefaultDistFolder)

	if r.DevPackages == nil {
		r.DevPackages = append([]string(nil), DefaultDevPackages...)
	}
	if r.Dependencies == nil {
		r.Dependencies = append([]string(nil), DefaultDependencies...)
	}
	return r
}

// Plan resolves every path the request will create. Names are joined as
// given; nothing is sanitized.
func (r Request) Plan() Plan {
	r = r.WithDefaults()
	app := filepath.Join(r.BasePath, r.AppFolder)
	return Plan{
		Base:        r.BasePath,
		App:         app,
		CSS:         filepath.Join(app, r.CSSFolder),
		Fonts:       filepath.Join(app, r.FontsFolder),
		Images:      filepath.Join(app, r.ImagesFolder),
		JS:          filepath.Join(app, r.JSFolder),
		Sass:        filepath.Join(app, r.SassFolder),
		EntryFile:   filepath.Join(app, r.HTMLFile),
		Dist:        filepath.Join(r.BasePath, r.DistFolder),
		Manifest:    filepath.Join(r.BasePath, manifest.FileName),
		BuildConfig: filepath.Join(r.BasePath, BuildConfigFile),
	}
}
