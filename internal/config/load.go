package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/toyz/roast/internal/errors"
	"github.com/toyz/roast/internal/utils"
)

// EnvPrefix is the prefix of environment overrides, e.g. ROAST_GENERATE_JAVA_OUT
const EnvPrefix = "ROAST"

// Load reads the configuration for the project in dir. An explicit
// configPath must exist; otherwise dir/roast.toml is used when present.
func Load(dir, configPath string) (*Config, error) {
	v := newViper()

	source := configPath
	if source == "" {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			source = candidate
		}
	}

	if source != "" {
		v.SetConfigFile(source)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.WrapConfigurationError(source, "read", err)
		}
	}

	cfg, err := LoadWithViper(v)
	if err != nil {
		return nil, errors.WrapConfigurationError(source, "decode", err)
	}
	cfg.source = source

	if err := cfg.resolve(dir); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.WrapConfigurationError(source, "validate", err)
	}

	return cfg, nil
}

// LoadWithViper decodes configuration from a prepared viper instance
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	return &cfg, nil
}

// newViper sets up defaults and ROAST_* environment overrides
func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)
	return v
}

// resolve fills the values that depend on the project location
func (c *Config) resolve(dir string) error {
	if c.Project.Root == "" {
		c.Project.Root = dir
		if c.source != "" {
			c.Project.Root = filepath.Dir(c.source)
		}
	} else if !filepath.IsAbs(c.Project.Root) {
		c.Project.Root = filepath.Join(dir, c.Project.Root)
	}

	root, err := filepath.Abs(c.Project.Root)
	if err != nil {
		return errors.WrapConfigurationError(c.source, "resolve root", err)
	}
	c.Project.Root = root

	if c.Project.Name == "" {
		manifest, err := utils.ParseCargoManifest(filepath.Join(root, utils.CargoManifestName))
		if err != nil {
			return errors.WithHint(
				errors.WrapConfigurationError(c.source, "resolve project name", err),
				"set [project] name in "+FileName+" or add a Cargo.toml to the project root",
			)
		}
		c.Project.Name = manifest.LibraryName()
	}

	if c.Build.JavaSource == "" {
		c.Build.JavaSource = c.Generate.JavaOut
	}

	return nil
}
