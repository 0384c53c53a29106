package discovery

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// ManifestFileName is the optional project manifest declaring explicit
// package roots. A missing or malformed manifest is never fatal: the
// caller falls back to the src directory convention.
const ManifestFileName = "doctest.toml"

// Manifest mirrors the structure of doctest.toml.
type Manifest struct {
	Build struct {
		Packages []string `toml:"packages"`
	} `toml:"build"`
}

// LoadManifest reads doctest.toml from the project root and returns the
// declared package directories as absolute paths.
func LoadManifest(projectRoot string) ([]string, error) {
	path := filepath.Join(projectRoot, ManifestFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var manifest Manifest
	if err := toml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}

	var dirs []string
	for _, pkg := range manifest.Build.Packages {
		dirs = append(dirs, filepath.Join(projectRoot, filepath.FromSlash(pkg)))
	}
	return dirs, nil
}
