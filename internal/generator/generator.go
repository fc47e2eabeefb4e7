// Package generator emits the JNI glue and Java stub for an entity.
// It is pure: nothing here touches the filesystem.
package generator

import (
	"go.uber.org/zap"

	"github.com/toyz/roast/internal/errors"
	"github.com/toyz/roast/internal/models"
	"github.com/toyz/roast/internal/naming"
	"github.com/toyz/roast/internal/typemap"
)

// Options configures what the emitted sources refer to
type Options struct {
	Library      string // shared library name loaded by the stub
	SymbolPrefix string // first component of every native symbol
	RuntimeCrate string // crate providing the boundary types and converters
	Logger       *zap.Logger
}

// Generator implements BindingGenerator
type Generator struct {
	library string
	prefix  string
	crate   string
	logger  *zap.Logger
}

var _ BindingGenerator = (*Generator)(nil)

// NewGenerator creates a generator, filling unset options with defaults
func NewGenerator(opts Options) *Generator {
	g := &Generator{
		library: opts.Library,
		prefix:  opts.SymbolPrefix,
		crate:   opts.RuntimeCrate,
		logger:  opts.Logger,
	}
	if g.prefix == "" {
		g.prefix = naming.DefaultSymbolPrefix
	}
	if g.crate == "" {
		g.crate = typemap.DefaultRuntimeCrate
	}
	if g.logger == nil {
		g.logger = zap.NewNop()
	}
	return g
}

// Library returns the library name the stub loads
func (g *Generator) Library() string {
	return g.library
}

// Generate runs both emitters. A binding is returned only when both succeed.
func (g *Generator) Generate(entity *models.Entity) (*models.GeneratedBinding, error) {
	symbols, err := g.Symbols(entity)
	if err != nil {
		return nil, err
	}

	glue, err := g.NativeGlue(entity)
	if err != nil {
		g.logger.Debug("native glue failed", zap.String("entity", entity.Name()), zap.Error(err))
		return nil, err
	}

	stub, err := g.HostStub(entity)
	if err != nil {
		g.logger.Debug("host stub failed", zap.String("entity", entity.Name()), zap.Error(err))
		return nil, err
	}

	g.logger.Debug("generated binding",
		zap.String("entity", entity.Name()),
		zap.Int("methods", entity.MethodCount()),
	)

	return &models.GeneratedBinding{
		Entity:       entity.Name(),
		NativeGlue:   glue,
		HostStub:     stub,
		GlueFileName: naming.SnakeCase(entity.Name()) + ".rs",
		StubFileName: entity.Name() + ".java",
		Symbols:      symbols,
	}, nil
}

// Symbols returns the native symbol of every method in discovery order.
// Two methods that mangle to the same symbol are rejected.
func (g *Generator) Symbols(entity *models.Entity) ([]string, error) {
	methods := entity.Methods()
	symbols := make([]string, len(methods))
	owners := make(map[string]string, len(methods))

	for i, method := range methods {
		if err := method.Validate(); err != nil {
			return nil, errors.NewGenerationError(entity.Name(), "validate", err)
		}

		symbol := g.symbol(entity, method)
		if previous, exists := owners[symbol]; exists {
			return nil, errors.NewSymbolCollisionError(entity.Name(), symbol, previous, method.Name)
		}
		owners[symbol] = method.Name
		symbols[i] = symbol
	}

	return symbols, nil
}

func (g *Generator) symbol(entity *models.Entity, method models.Method) string {
	return naming.NativeSymbol(g.prefix, entity.Name(), method.Name)
}

// returnMapping resolves a method's return type. ok is false for a method
// that returns nothing.
func returnMapping(method models.Method) (mapping typemap.Mapping, ok bool, err error) {
	if !method.ReturnsValue() {
		return typemap.Mapping{}, false, nil
	}
	mapping, found := typemap.Lookup(method.ReturnType)
	if !found {
		return typemap.Mapping{}, false, errors.NewUnsupportedReturnTypeError(method.Name, method.ReturnType)
	}
	return mapping, true, nil
}

// argumentMapping resolves a captured argument's type
func argumentMapping(method models.Method, arg models.Captured) (typemap.Mapping, error) {
	mapping, found := typemap.Lookup(arg.Type)
	if !found {
		return typemap.Mapping{}, errors.NewUnsupportedArgumentTypeError(method.Name, arg.Name, arg.Type)
	}
	return mapping, nil
}
