package manifest

import (
	"regexp"
	"strings"
)

// FileName is the manifest file name inside a project base path.
const FileName = "package.json"

// Fixed manifest values.
const (
	DefaultVersion     = "1.0.0"
	DefaultMain        = "index.js"
	DefaultLicense     = "ISC"
	DefaultTestScript  = `echo "Error: no test specified" && exit 1`
	DefaultPackageName = "web-project"
)

// Package is the package.json document. Field order matches the file layout.
type Package struct {
	Name        string     `json:"name"`
	Version     string     `json:"version"`
	Description string     `json:"description"`
	Main        string     `json:"main"`
	Repository  Repository `json:"repository"`
	Scripts     Scripts    `json:"scripts"`
	Author      string     `json:"author"`
	License     string     `json:"license"`
}

// Repository is written as an empty object.
type Repository struct{}

// Scripts holds the npm run scripts.
type Scripts struct {
	Test string `json:"test"`
}

// New returns the fixed-shape manifest for a package called name.
func New(name string) Package {
	return Package{
		Name:    name,
		Version: DefaultVersion,
		Main:    DefaultMain,
		Scripts: Scripts{Test: DefaultTestScript},
		License: DefaultLicense,
	}
}

var invalidNameChars = regexp.MustCompile(`[^a-z0-9._~-]+`)

// PackageName derives an npm-compatible package name from a directory name.
func PackageName(dir string) string {
	name := strings.ToLower(strings.TrimSpace(dir))
	name = invalidNameChars.ReplaceAllString(name, "-")
	name = strings.TrimLeft(name, "._-")
	if len(name) > 214 {
		name = name[:214]
	}
	name = strings.TrimRight(name, "-")
	if name == "" {
		return DefaultPackageName
	}
	return name
}
