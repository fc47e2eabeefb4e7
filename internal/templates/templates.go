// Package templates holds the text templates for generated sources and
// scaffolded projects.
package templates

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/BurntSushi/toml"

	"github.com/toyz/roast/internal/naming"
)

// Template names
const (
	GlueFunctionTemplate = "glue-function"
	GlueFileTemplate     = "glue-file"
	GlueModTemplate      = "glue-mod"
	HostStubTemplate     = "host-stub"
)

// GeneratedHeader is the first line of every generated Rust file
const GeneratedHeader = "// Code generated by roast. DO NOT EDIT."

// GlueFunctionData is one exported native function
type GlueFunctionData struct {
	Symbol     string
	Params     []string // "name: type" entries in boundary order
	ReturnType string   // boundary type, "" for none
	Body       string   // single expression or statement, without indentation
}

// GlueFileData is a generated Rust source file
type GlueFileData struct {
	Imports   []string // paths brought into scope with use
	Functions string   // already rendered functions
}

// GlueModData is the mod.rs declaring every generated glue module
type GlueModData struct {
	Modules []string
}

// HostStubData is a generated Java class
type HostStubData struct {
	Name         string
	Library      string
	Declarations []string
}

var funcMap = template.FuncMap{
	"join":  strings.Join,
	"camel": naming.CamelCase,
	"toml":  tomlString,
}

// tomlString renders s as a TOML basic string, quotes and escapes included
func tomlString(s string) (string, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(map[string]string{"v": s}); err != nil {
		return "", err
	}
	return strings.TrimSuffix(strings.TrimPrefix(buf.String(), "v = "), "\n"), nil
}

// executeTemplate executes a Go template with the given data
func executeTemplate(name, templateStr string, data interface{}) (string, error) {
	tmpl, err := template.New(name).Funcs(funcMap).Parse(templateStr)
	if err != nil {
		return "", fmt.Errorf("failed to parse template %s: %w", name, err)
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, data)
	if err != nil {
		return "", fmt.Errorf("failed to execute template %s: %w", name, err)
	}

	return buf.String(), nil
}

// ExecuteTemplate executes a registered template with the given data
func ExecuteTemplate(name string, data interface{}) (string, error) {
	templateStr, ok := defaultRegistry.Get(name)
	if !ok {
		return "", fmt.Errorf("template %s is not registered", name)
	}
	return executeTemplate(name, templateStr, data)
}
