package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/toyz/roast/internal/errors"
)

// BuildRecordName is the file generation leaves behind for roast build
const BuildRecordName = "roast.build.toml"

// BuildRecord is the persisted build-location record: where the compiled
// library and generated Java sources are, and where they should be copied
type BuildRecord struct {
	Root       string `toml:"root"`
	Name       string `toml:"name"`
	BinSource  string `toml:"bin_source"`
	BinTarget  string `toml:"bin_target"`
	JavaSource string `toml:"java_source"`
	JavaTarget string `toml:"java_target"`
}

// BuildRecord derives the record from the configuration, paths absolute
func (c *Config) BuildRecord() BuildRecord {
	return BuildRecord{
		Root:       c.Project.Root,
		Name:       c.Project.Name,
		BinSource:  c.Resolve(c.Build.BinSource),
		BinTarget:  c.Resolve(c.Build.BinTarget),
		JavaSource: c.Resolve(c.Build.JavaSource),
		JavaTarget: c.Resolve(c.Build.JavaTarget),
	}
}

// BuildRecordPath is where the record for this project lives
func (c *Config) BuildRecordPath() string {
	return filepath.Join(c.Project.Root, BuildRecordName)
}

// SaveBuildRecord writes the record as TOML
func SaveBuildRecord(path string, record BuildRecord) error {
	data, err := toml.Marshal(record)
	if err != nil {
		return errors.Wrap(err, "failed to marshal build record")
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.WrapFileSystemError("write", path, err)
	}
	return nil
}

// LoadBuildRecord reads a record written by SaveBuildRecord
func LoadBuildRecord(path string) (*BuildRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WithHint(
			errors.WrapFileSystemError("read", path, err),
			"run 'roast generate' before 'roast build'",
		)
	}

	var record BuildRecord
	if err := toml.Unmarshal(data, &record); err != nil {
		return nil, errors.WrapConfigurationError(path, "decode", err)
	}
	return &record, nil
}
