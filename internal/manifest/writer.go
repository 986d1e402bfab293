package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Marshal renders pkg as indented JSON with a trailing newline. HTML
// escaping is off so the test script keeps its literal "&&".
func Marshal(pkg Package) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(pkg); err != nil {
		return nil, fmt.Errorf("encoding %s: %w", FileName, err)
	}
	return buf.Bytes(), nil
}

// Write creates dir/package.json. It fails if the file already exists.
func Write(dir string, pkg Package) (string, error) {
	data, err := Marshal(pkg)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, FileName)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return "", err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("closing %s: %w", path, err)
	}
	return path, nil
}

// Read parses the package.json at path.
func Read(path string) (Package, error) {
	var pkg Package
	data, err := os.ReadFile(path)
	if err != nil {
		return pkg, fmt.Errorf("reading %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &pkg); err != nil {
		return pkg, fmt.Errorf("parsing %s: %w", path, err)
	}
	return pkg, nil
}
