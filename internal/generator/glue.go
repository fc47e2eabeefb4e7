package generator

import (
	"strings"

	"github.com/toyz/roast/internal/models"
	"github.com/toyz/roast/internal/templates"
)

// NativeGlue emits one exported function per method, separated by a blank
// line. An entity without methods yields "".
func (g *Generator) NativeGlue(entity *models.Entity) (string, error) {
	functions := make([]string, 0, entity.MethodCount())
	for _, method := range entity.Methods() {
		function, err := g.glueFunction(entity, method)
		if err != nil {
			return "", err
		}
		functions = append(functions, function)
	}
	return strings.Join(functions, "\n"), nil
}

func (g *Generator) glueFunction(entity *models.Entity, method models.Method) (string, error) {
	ret, returns, err := returnMapping(method)
	if err != nil {
		return "", err
	}

	captured := method.Captured()
	params := make([]string, 0, len(captured)+2)
	callArgs := make([]string, 0, len(captured))

	env := "_env"
	if returns || len(captured) > 0 {
		env = "env"
	}
	params = append(params, env+": "+g.crate+"::JNIEnv")

	if method.IsStatic() {
		params = append(params, "_class: "+g.crate+"::JClass")
	} else {
		params = append(params, "_obj: "+g.crate+"::JObject")
	}

	for _, arg := range captured {
		mapping, err := argumentMapping(method, arg)
		if err != nil {
			return "", err
		}
		params = append(params, arg.Name+": "+mapping.QualifiedBoundary(g.crate))
		callArgs = append(callArgs, mapping.QualifiedArgConverter(g.crate)+"(&env, "+arg.Name+")")
	}

	call := entity.Name() + "::" + method.Name + "(" + strings.Join(callArgs, ", ") + ")"

	data := templates.GlueFunctionData{
		Symbol: g.symbol(entity, method),
		Params: params,
		Body:   call + ";",
	}
	if returns {
		data.ReturnType = ret.QualifiedBoundary(g.crate)
		data.Body = ret.QualifiedRetConverter(g.crate) + "(&env, " + call + ")"
	}

	return templates.ExecuteTemplate(templates.GlueFunctionTemplate, data)
}
