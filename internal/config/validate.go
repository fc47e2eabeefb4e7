package config

import (
	"github.com/toyz/roast/internal/utils"
)

// Validate checks the values that end up in generated sources
func (c *Config) Validate() error {
	checks := []struct {
		value     string
		validator utils.Validator[string]
	}{
		{c.Project.Name, utils.IsValidRustIdentifier("project.name")},
		{c.Generate.SymbolPrefix, utils.IsValidRustIdentifier("generate.symbol_prefix")},
		{c.Generate.RuntimeCrate, utils.IsValidRustIdentifier("generate.runtime_crate")},
		{c.Generate.ExportMarker, utils.IsValidRustIdentifier("generate.export_marker")},
		{c.Generate.SourceRoot, utils.NotEmpty("generate.source_root")},
		{c.Generate.NativeOut, utils.NotEmpty("generate.native_out")},
		{c.Generate.JavaOut, utils.NotEmpty("generate.java_out")},
	}

	for _, check := range checks {
		if err := check.validator(check.value); err != nil {
			return err
		}
	}

	for _, entity := range c.Generate.Entities {
		if err := utils.IsValidRustIdentifier("generate.entities")(entity); err != nil {
			return err
		}
	}

	if _, err := c.CargoArgs(); err != nil {
		return utils.ValidationError{Field: "build.cargo_args", Value: c.Build.CargoArgs, Message: err.Error()}
	}

	return nil
}
