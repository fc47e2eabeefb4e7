package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/toyz/roast/internal/errors"
)

// CargoManifestName is the file name of a Cargo package manifest
const CargoManifestName = "Cargo.toml"

// CargoManifest is the subset of Cargo.toml the tool reads
type CargoManifest struct {
	Package struct {
		Name    string   `toml:"name"`
		Version string   `toml:"version"`
		Authors []string `toml:"authors"`
	} `toml:"package"`
	Lib struct {
		Name      string   `toml:"name"`
		CrateType []string `toml:"crate-type"`
	} `toml:"lib"`
	Dependencies map[string]interface{} `toml:"dependencies"`
}

// LibraryName is the name of the shared library cargo produces: the [lib]
// name when set, otherwise the package name with dashes folded to underscores
func (m *CargoManifest) LibraryName() string {
	if m.Lib.Name != "" {
		return m.Lib.Name
	}
	return strings.ReplaceAll(m.Package.Name, "-", "_")
}

// IsDynamicLibrary reports whether the crate builds a cdylib
func (m *CargoManifest) IsDynamicLibrary() bool {
	for _, kind := range m.Lib.CrateType {
		if kind == "cdylib" || kind == "dylib" {
			return true
		}
	}
	return false
}

// ParseCargoManifest decodes a Cargo.toml file
func ParseCargoManifest(path string) (*CargoManifest, error) {
	var manifest CargoManifest
	if _, err := toml.DecodeFile(path, &manifest); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", CargoManifestName, err)
	}

	if manifest.Package.Name == "" {
		return nil, fmt.Errorf("no [package] name found in %s", path)
	}

	return &manifest, nil
}

// FindCargoManifest searches for Cargo.toml starting from the given directory and walking up
func FindCargoManifest(startDir string) (string, error) {
	currentDir, err := filepath.Abs(startDir)
	if err != nil {
		return "", errors.WrapFileSystemError("resolve", startDir, err)
	}

	for {
		manifestPath := filepath.Join(currentDir, CargoManifestName)
		if info, err := os.Stat(manifestPath); err == nil && !info.IsDir() {
			return manifestPath, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	return "", fmt.Errorf("%s not found in %s or any parent directory", CargoManifestName, startDir)
}
