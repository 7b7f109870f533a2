// Package samples bundles the specification converted by --test.
package samples

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
)

//go:embed sample-spec.yaml
var spec string

// Spec returns the bundled sample specification.
func Spec() string {
	return spec
}

// Read returns the sample specification. An empty path selects the bundled
// sample; a relative path is resolved against the executable's directory.
func Read(path string) (string, error) {
	if path == "" {
		return spec, nil
	}

	if !filepath.IsAbs(path) {
		exe, err := os.Executable()
		if err != nil {
			return "", fmt.Errorf("failed to locate executable: %w", err)
		}
		path = filepath.Join(filepath.Dir(exe), path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read sample specification: %w", err)
	}

	return string(data), nil
}
