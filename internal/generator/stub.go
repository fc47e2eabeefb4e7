package generator

import (
	"strings"

	"github.com/toyz/roast/internal/models"
	"github.com/toyz/roast/internal/templates"
)

// HostStub renders the Java class declaring one native method per method
func (g *Generator) HostStub(entity *models.Entity) (string, error) {
	methods := entity.Methods()
	declarations := make([]string, 0, len(methods))

	for _, method := range methods {
		declaration, err := stubDeclaration(method)
		if err != nil {
			return "", err
		}
		declarations = append(declarations, declaration)
	}

	return templates.ExecuteTemplate(templates.HostStubTemplate, templates.HostStubData{
		Name:         entity.Name(),
		Library:      g.library,
		Declarations: declarations,
	})
}

func stubDeclaration(method models.Method) (string, error) {
	ret, returns, err := returnMapping(method)
	if err != nil {
		return "", err
	}

	returnType := "void"
	if returns {
		returnType = ret.Host
	}

	captured := method.Captured()
	params := make([]string, 0, len(captured))
	for _, arg := range captured {
		mapping, err := argumentMapping(method, arg)
		if err != nil {
			return "", err
		}
		params = append(params, mapping.Host+" "+arg.HostName())
	}

	var b strings.Builder
	b.WriteString("public ")
	if method.IsStatic() {
		b.WriteString("static ")
	}
	b.WriteString("native ")
	b.WriteString(returnType)
	b.WriteString(" ")
	b.WriteString(method.HostName())
	b.WriteString("(")
	b.WriteString(strings.Join(params, ", "))
	b.WriteString(");")
	return b.String(), nil
}
