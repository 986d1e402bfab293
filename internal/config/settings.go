package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/indigos33k3r/WebDevelopmentEnvironment/internal/pkgmgr"
	"github.com/indigos33k3r/WebDevelopmentEnvironment/internal/scaffold"
)

// Setting keys. Folder keys are nested under "folders" in the YAML file and
// map to WEBDEVENV_FOLDERS_<NAME> in the environment.
const (
	KeyPackageManager = "package_manager"
	KeyMinVersion     = "min_version"
	KeyOnInstallError = "on_install_error"
	KeyOnPathError    = "on_path_error"
	KeyBatch          = "batch"
	KeyGulp           = "gulp"
	KeySkipInstall    = "skip_install"
	KeyDevPackages    = "dev_packages"
	KeyDependencies   = "dependencies"

	KeyAppFolder    = "folders.app"
	KeyCSSFolder    = "folders.css"
	KeyFontsFolder  = "folders.fonts"
	KeyImagesFolder = "folders.images"
	KeyJSFolder     = "folders.js"
	KeySassFolder   = "folders.sass"
	KeyHTMLFile     = "folders.html"
	KeyDistFolder   = "folders.dist"
)

var defaults = map[string]any{
	KeyPackageManager: "npm",
	KeyMinVersion:     "",
	KeyOnInstallError: string(pkgmgr.PolicyContinue),
	KeyOnPathError:    string(pkgmgr.PolicyAbort),
	KeyBatch:          false,
	KeyGulp:           false,
	KeySkipInstall:    false,
	KeyDevPackages:    scaffold.DefaultDevPackages,
	KeyDependencies:   scaffold.DefaultDependencies,

	KeyAppFolder:    scaffold.DefaultAppFolder,
	KeyCSSFolder:    scaffold.DefaultCSSFolder,
	KeyFontsFolder:  scaffold.DefaultFontsFolder,
	KeyImagesFolder: scaffold.DefaultImagesFolder,
	KeyJSFolder:     scaffold.DefaultJSFolder,
	KeySassFolder:   scaffold.DefaultSassFolder,
	KeyHTMLFile:     scaffold.DefaultHTMLFile,
	KeyDistFolder:   scaffold.DefaultDistFolder,
}

func setDefaults() {
	for k, v := range defaults {
		if list, ok := v.([]string); ok {
			v = append([]string(nil), list...)
		}
		viper.SetDefault(k, v)
	}
}

// Folders holds the folder and file name settings.
type Folders struct {
	App    string
	CSS    string
	Fonts  string
	Images string
	JS     string
	Sass   string
	HTML   string
	Dist   string
}

// Settings is a snapshot of the resolved configuration.
type Settings struct {
	PackageManager string
	MinVersion     string
	OnInstallError string
	OnPathError    string
	Batch          bool
	Gulp           bool
	SkipInstall    bool
	DevPackages    []string
	Dependencies   []string
	Folders        Folders
}

// Current returns the settings as resolved by Viper. Load must run first.
func Current() Settings {
	return Settings{
		PackageManager: viper.GetString(KeyPackageManager),
		MinVersion:     viper.GetString(KeyMinVersion),
		OnInstallError: viper.GetString(KeyOnInstallError),
		OnPathError:    viper.GetString(KeyOnPathError),
		Batch:          viper.GetBool(KeyBatch),
		Gulp:           viper.GetBool(KeyGulp),
		SkipInstall:    viper.GetBool(KeySkipInstall),
		DevPackages:    stringList(KeyDevPackages),
		Dependencies:   stringList(KeyDependencies),
		Folders: Folders{
			App:    viper.GetString(KeyAppFolder),
			CSS:    viper.GetString(KeyCSSFolder),
			Fonts:  viper.GetString(KeyFontsFolder),
			Images: viper.GetString(KeyImagesFolder),
			JS:     viper.GetString(KeyJSFolder),
			Sass:   viper.GetString(KeySassFolder),
			HTML:   viper.GetString(KeyHTMLFile),
			Dist:   viper.GetString(KeyDistFolder),
		},
	}
}

// stringList reads a list key. Environment values arrive as one string, so
// every element is split on commas as well.
func stringList(key string) []string {
	return splitList(strings.Join(viper.GetStringSlice(key), ","))
}

// Request builds a scaffold request for base from the settings.
func (s Settings) Request(base string) scaffold.Request {
	return scaffold.Request{
		BasePath:     base,
		BuildConfig:  s.Gulp,
		DevPackages:  nonNil(s.DevPackages),
		Dependencies: nonNil(s.Dependencies),
		AppFolder:    s.Folders.App,
		CSSFolder:    s.Folders.CSS,
		FontsFolder:  s.Folders.Fonts,
		ImagesFolder: s.Folders.Images,
		JSFolder:     s.Folders.JS,
		SassFolder:   s.Folders.Sass,
		HTMLFile:     s.Folders.HTML,
		DistFolder:   s.Folders.Dist,
	}
}

// nonNil keeps an explicitly emptied list from falling back to the defaults.
func nonNil(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
