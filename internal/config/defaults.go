package config

import (
	"github.com/spf13/viper"

	"github.com/toyz/roast/internal/naming"
	"github.com/toyz/roast/internal/parser"
	"github.com/toyz/roast/internal/typemap"
)

// Default values
const (
	DefaultSourceRoot = "src"
	DefaultNativeOut  = "src/generated"
	DefaultJavaOut    = "target/roast/java"
	DefaultBinSource  = "target/debug"
	DefaultBinTarget  = "src/main/resources"
	DefaultJavaTarget = "src/main/java"
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	v.SetDefault("project.name", "")
	v.SetDefault("project.root", "")

	v.SetDefault("generate.source_root", DefaultSourceRoot)
	v.SetDefault("generate.native_out", DefaultNativeOut)
	v.SetDefault("generate.java_out", DefaultJavaOut)
	v.SetDefault("generate.symbol_prefix", naming.DefaultSymbolPrefix)
	v.SetDefault("generate.runtime_crate", typemap.DefaultRuntimeCrate)
	v.SetDefault("generate.export_marker", parser.DefaultExportMarker)
	v.SetDefault("generate.entities", []string{})

	v.SetDefault("build.bin_source", DefaultBinSource)
	v.SetDefault("build.bin_target", DefaultBinTarget)
	v.SetDefault("build.java_source", "") // follows generate.java_out
	v.SetDefault("build.java_target", DefaultJavaTarget)
	v.SetDefault("build.cargo_args", "")
}
