package templates

// TemplateRegistry provides a centralized way to access all templates
type TemplateRegistry struct {
	templates map[string]string
}

var defaultRegistry = NewTemplateRegistry()

// NewTemplateRegistry creates a new template registry with all templates
func NewTemplateRegistry() *TemplateRegistry {
	registry := &TemplateRegistry{
		templates: make(map[string]string),
	}

	registry.registerGlueTemplates()
	registry.registerStubTemplates()

	return registry
}

// Get retrieves a template by name
func (tr *TemplateRegistry) Get(name string) (string, bool) {
	template, exists := tr.templates[name]
	return template, exists
}

// MustGet retrieves a template by name, panics if not found
func (tr *TemplateRegistry) MustGet(name string) string {
	template, exists := tr.templates[name]
	if !exists {
		panic("template not found: " + name)
	}
	return template
}

// Names lists the registered template names
func (tr *TemplateRegistry) Names() []string {
	names := make([]string, 0, len(tr.templates))
	for name := range tr.templates {
		names = append(names, name)
	}
	return names
}

func (tr *TemplateRegistry) registerGlueTemplates() {
	tr.templates[GlueFunctionTemplate] = `#[no_mangle]
pub extern "system" fn {{.Symbol}}({{join .Params ", "}}){{if .ReturnType}} -> {{.ReturnType}}{{end}} {
    {{.Body}}
}
`

	tr.templates[GlueFileTemplate] = GeneratedHeader + `
{{if .Imports}}
{{range .Imports}}use {{.}};
{{end}}{{end}}{{if .Functions}}
{{.Functions}}{{end}}`

	tr.templates[GlueModTemplate] = GeneratedHeader + `
{{if .Modules}}
{{range .Modules}}mod {{.}};
{{end}}{{end}}`
}

func (tr *TemplateRegistry) registerStubTemplates() {
	// the layout is byte-exact: one blank line before every declaration and before the closing brace
	tr.templates[HostStubTemplate] = "public class {{.Name}} {\n\n\tstatic {\n\t\tSystem.loadLibrary(\"{{.Library}}\");\n\t}\n{{range .Declarations}}\n\t{{.}}\n{{end}}\n}\n"
}
