// Package manifest writes and validates the package manager manifest
// (package.json) of a scaffolded project. Write never merges with an existing
// file; Validate checks a document against the embedded JSON schema.
package manifest
