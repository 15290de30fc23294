// Package project locates the JavaScript project a config is generated for
// and reads the parts of its package.json that steer flavor selection.
package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/jsonc"
)

// ManifestFile is the project manifest name.
const ManifestFile = "package.json"

// maxUpwardSearchLevels limits how far up the directory tree FindRoot looks.
const maxUpwardSearchLevels = 10

// Package types as written in the manifest "type" field.
const (
	TypeModule   = "module"
	TypeCommonJS = "commonjs"
)

// Manifest is the subset of package.json lintcfg cares about.
type Manifest struct {
	Name             string            `json:"name"`
	Type             string            `json:"type"`
	Dependencies     map[string]string `json:"dependencies"`
	DevDependencies  map[string]string `json:"devDependencies"`
	PeerDependencies map[string]string `json:"peerDependencies"`
}

// Declares reports whether name appears in any dependency list.
func (m Manifest) Declares(name string) bool {
	for _, deps := range []map[string]string{m.Dependencies, m.DevDependencies, m.PeerDependencies} {
		if _, ok := deps[name]; ok {
			return true
		}
	}
	return false
}

// FindRoot searches upward from start for a directory holding package.json.
// It returns the absolute start directory when none is found.
func FindRoot(start string) (string, error) {
	abs, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", start, err)
	}

	dir := abs
	for i := 0; i < maxUpwardSearchLevels; i++ {
		if info, err := os.Stat(filepath.Join(dir, ManifestFile)); err == nil && info.Mode().IsRegular() {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			break
		}
		dir = parent
	}
	return abs, nil
}

// ReadManifest decodes dir/package.json. Comments and trailing commas are
// tolerated. A missing file yields a zero Manifest and nil error.
func ReadManifest(dir string) (Manifest, error) {
	path := filepath.Join(dir, ManifestFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Manifest{}, nil
		}
		return Manifest{}, fmt.Errorf("reading %s: %w", path, err)
	}

	var m Manifest
	if err := json.Unmarshal(jsonc.ToJSON(data), &m); err != nil {
		return Manifest{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return m, nil
}
