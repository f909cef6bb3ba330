package styleguide

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is the style-guide file discovered in the working
// directory when no explicit path is given.
const DefaultFileName = ".styleguide.yaml"

// Parse decodes YAML style-guide content and resolves defaults.
func Parse(data []byte) (*Guide, error) {
	var guide Guide
	if err := yaml.Unmarshal(data, &guide); err != nil {
		return nil, fmt.Errorf("parse style guide: %w", err)
	}
	applyDefaults(&guide)
	return &guide, nil
}

// Load reads and parses the style-guide file at path.
func Load(path string) (*Guide, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read style guide %s: %w", path, err)
	}
	guide, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return guide, nil
}

// Discover locates a style-guide file. An explicit path wins; otherwise
// the default file name is searched in dir. Returns "" when nothing is
// found, which callers treat as "run with an empty guide".
func Discover(explicit, dir string) string {
	if explicit != "" {
		return explicit
	}
	candidate := filepath.Join(dir, DefaultFileName)
	if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
		return candidate
	}
	return ""
}
