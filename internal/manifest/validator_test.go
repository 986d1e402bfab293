package manifest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidateGeneratedManifest(t *testing.T) {
	data, err := Marshal(New("site"))
	if err != nil {
		t.Fatal(err)
	}

	result, err := Validate(data)
	if err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if !result.Valid {
		for _, issue := range result.Issues {
			t.Errorf("unexpected issue: %s (keyword %s)", issue, issue.Keyword)
		}
	}
}

func TestValidateInvalidManifests(t *testing.T) {
	tests := []struct {
		desc     string
		doc      string
		wantPath string
	}{
		{"uppercase name", `{"name":"MySite","version":"1.0.0","license":"ISC"}`, "/name"},
		{"missing version", `{"name":"site","license":"ISC"}`, ""},
		{"non-semver version", `{"name":"site","version":"1.0","license":"ISC"}`, "/version"},
		{"non-string script", `{"name":"site","version":"1.0.0","license":"ISC","scripts":{"test":1}}`, "/scripts/test"},
		{"array dependencies", `{"name":"site","version":"1.0.0","license":"ISC","dependencies":["jquery"]}`, "/dependencies"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			result, err := Validate([]byte(tt.doc))
			if err != nil {
				t.Fatalf("Validate() error: %v", err)
			}
			if result.Valid {
				t.Fatal("expected invalid, got valid")
			}
			if len(result.Issues) == 0 {
				t.Fatal("expected at least one issue")
			}
			found := false
			for _, issue := range result.Issues {
				if issue.Path == tt.wantPath {
					found = true
				}
			}
			if !found {
				t.Errorf("no issue at path %q, got %v", tt.wantPath, result.Issues)
			}
		})
	}
}

func TestValidateMalformedJSON(t *testing.T) {
	if _, err := Validate([]byte(`{"name": "site",`)); err == nil {
		t.Fatal("expected parse error for malformed JSON")
	}
}

func TestValidateFile(t *testing.T) {
	dir := t.TempDir()
	path, err := Write(dir, New("site"))
	if err != nil {
		t.Fatal(err)
	}

	result, err := ValidateFile(path)
	if err != nil {
		t.Fatalf("ValidateFile() error: %v", err)
	}
	if !result.Valid {
		t.Errorf("expected valid manifest, got %v", result.Issues)
	}

	if _, err := ValidateFile(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("expected error for a missing file")
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`{"name":"Bad Name","version":"1.0.0","license":"ISC"}`), 0644); err != nil {
		t.Fatal(err)
	}
	result, err = ValidateFile(bad)
	if err != nil {
		t.Fatalf("ValidateFile() error: %v", err)
	}
	if result.Valid {
		t.Fatal("expected invalid manifest")
	}
	if !strings.HasPrefix(result.Issues[0].String(), "/name: ") {
		t.Errorf("issue = %q, want it prefixed with /name", result.Issues[0].String())
	}
}
