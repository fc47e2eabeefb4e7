// Package config loads roast.toml and persists the build-location record.
package config

import (
	"path/filepath"

	"github.com/kballard/go-shellquote"
)

// FileName is the project configuration file looked up in the project root
const FileName = "roast.toml"

// Config is the project configuration
type Config struct {
	Project  ProjectConfig  `mapstructure:"project"`
	Generate GenerateConfig `mapstructure:"generate"`
	Build    BuildConfig    `mapstructure:"build"`

	// path of the file the configuration was read from, "" when defaults only
	source string
}

// ProjectConfig identifies the project
type ProjectConfig struct {
	Name string `mapstructure:"name"` // shared library name; defaults to the Cargo lib name
	Root string `mapstructure:"root"` // project root; defaults to the config file's directory
}

// GenerateConfig drives binding generation
type GenerateConfig struct {
	SourceRoot   string   `mapstructure:"source_root"`
	NativeOut    string   `mapstructure:"native_out"`
	JavaOut      string   `mapstructure:"java_out"`
	SymbolPrefix string   `mapstructure:"symbol_prefix"`
	RuntimeCrate string   `mapstructure:"runtime_crate"`
	ExportMarker string   `mapstructure:"export_marker"`
	Entities     []string `mapstructure:"entities"`
}

// BuildConfig drives the cargo build and artifact copy
type BuildConfig struct {
	BinSource  string `mapstructure:"bin_source"`
	BinTarget  string `mapstructure:"bin_target"`
	JavaSource string `mapstructure:"java_source"`
	JavaTarget string `mapstructure:"java_target"`
	CargoArgs  string `mapstructure:"cargo_args"`
}

// Source returns the file the configuration was read from
func (c *Config) Source() string {
	return c.source
}

// Resolve makes a configured path absolute against the project root
func (c *Config) Resolve(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.Project.Root, path)
}

// SourceRoot is the absolute directory discovery walks
func (c *Config) SourceRoot() string {
	return c.Resolve(c.Generate.SourceRoot)
}

// NativeOutDir is the absolute directory generated glue is written to
func (c *Config) NativeOutDir() string {
	return c.Resolve(c.Generate.NativeOut)
}

// JavaOutDir is the absolute directory generated stubs are written to
func (c *Config) JavaOutDir() string {
	return c.Resolve(c.Generate.JavaOut)
}

// CargoArgs splits build.cargo_args with shell quoting rules
func (c *Config) CargoArgs() ([]string, error) {
	if c.Build.CargoArgs == "" {
		return nil, nil
	}
	return shellquote.Split(c.Build.CargoArgs)
}
