// Package parser discovers bindable method signatures in a Rust source tree.
package parser

import (
	"go.uber.org/zap"

	"github.com/toyz/roast/internal/errors"
	"github.com/toyz/roast/internal/models"
	"github.com/toyz/roast/internal/naming"
	"github.com/toyz/roast/internal/registry"
	"github.com/toyz/roast/internal/syntax"
	"github.com/toyz/roast/internal/utils"
)

// Parser walks a source tree once and extracts the methods of every impl block
type Parser struct {
	logger       *zap.Logger
	processor    *utils.FileProcessor
	reporter     *ErrorReporter
	exportMarker string
}

var _ SignatureDiscoverer = (*Parser)(nil)

// Option configures a Parser
type Option func(*Parser)

// WithLogger sets the structured logger
func WithLogger(logger *zap.Logger) Option {
	return func(p *Parser) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithExportMarker sets the derive name that marks exported types
func WithExportMarker(marker string) Option {
	return func(p *Parser) {
		if marker != "" {
			p.exportMarker = marker
		}
	}
}

// WithFileProcessor shares a file processor, and its parse cache, with the parser
func WithFileProcessor(processor *utils.FileProcessor) Option {
	return func(p *Parser) {
		if processor != nil {
			p.processor = processor
		}
	}
}

// NewParser creates a discovery parser
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		logger:       zap.NewNop(),
		processor:    utils.NewFileProcessor(),
		exportMarker: DefaultExportMarker,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.reporter = NewErrorReporter()
	return p
}

// ExportMarker returns the derive name used to mark exported types
func (p *Parser) ExportMarker() string {
	return p.exportMarker
}

// Discover parses every .rs file under root, in lexicographic path order,
// and records the methods of every impl target. Unchanged files are served
// from the parse cache.
func (p *Parser) Discover(root string) (*registry.Registry, error) {
	files, err := p.processor.WalkFiles(root, utils.RustWalkOptions())
	if err != nil {
		return nil, errors.WrapFileSystemError("walk", root, err)
	}

	reader := p.processor.GetFileReader()
	if pruned := reader.Prune(files); pruned > 0 {
		p.logger.Debug("pruned parse cache", zap.Int("entries", pruned))
	}

	reg := registry.New(root)
	for _, path := range files {
		file, err := reader.ParseRustFile(path)
		if err != nil {
			p.logger.Debug("failed to parse source", zap.String("file", path), zap.Error(err))
			return nil, err
		}
		reg.AddFile(path)
		p.collectFile(reg, path, file)
	}

	stats := reader.GetCacheStats()
	p.logger.Debug("discovery complete",
		zap.String("root", root),
		zap.Int("files", len(files)),
		zap.Int("types", len(reg.Names())),
		zap.Int("methods", reg.MethodCount()),
		zap.Int("cache_hits", stats.Hits),
		zap.Int("cache_misses", stats.Misses),
	)

	return reg, nil
}

// MethodsFor returns the public methods of the type named ident, normalized
// to its capitalized form, across every impl block under root
func (p *Parser) MethodsFor(root, ident string) ([]models.Method, error) {
	reg, err := p.Discover(root)
	if err != nil {
		return nil, err
	}

	name := naming.PascalCase(ident)
	if err := reg.Err(name); err != nil {
		return nil, err
	}
	return reg.Entity(name).Methods(), nil
}

// Invalidate drops any cached parse of path
func (p *Parser) Invalidate(path string) {
	p.processor.GetFileReader().InvalidateFile(path)
}

// collectFile records the exported types and impl methods of one file.
// Only top-level items are inspected. A signature that cannot be bound is
// recorded against its impl targets instead of failing the traversal.
func (p *Parser) collectFile(reg *registry.Registry, path string, file *syntax.File) {
	for _, item := range file.Items {
		if name := item.StructName(); name != "" && item.HasDerive(p.exportMarker) {
			reg.MarkExported(name, models.SourceLocation{File: path, Line: item.Pos.Line})
		}

		if item.Impl == nil {
			continue
		}

		methods, err := p.extractImpl(path, item.Impl)
		if err != nil {
			for _, target := range implTargets(item.Impl) {
				reg.AddFailure(target, err)
			}
			p.logger.Debug("impl has unbindable signatures",
				zap.String("file", path),
				zap.String("impl", item.Impl.HeaderText()),
				zap.Error(err),
			)
			continue
		}
		if len(methods) == 0 {
			continue
		}

		for _, target := range implTargets(item.Impl) {
			reg.AddMethods(target, methods...)
		}
		p.logger.Debug("collected impl",
			zap.String("file", path),
			zap.String("impl", item.Impl.HeaderText()),
			zap.Int("methods", len(methods)),
		)
	}
}

// extractImpl converts the bare-pub fns of an impl block into methods
func (p *Parser) extractImpl(path string, impl *syntax.Impl) ([]models.Method, error) {
	var methods []models.Method
	for _, member := range impl.Members {
		if member.Function == nil || !member.IsPublic() {
			continue
		}
		method, err := p.extractMethod(path, member.Function)
		if err != nil {
			return nil, err
		}
		methods = append(methods, method)
	}
	return methods, nil
}

// extractMethod classifies the receiver and arguments of one fn
func (p *Parser) extractMethod(path string, fn *syntax.Function) (models.Method, error) {
	method := models.Method{
		Name:     fn.Name,
		Location: models.SourceLocation{File: path, Line: fn.Pos.Line},
	}

	for i, param := range fn.Params {
		arg, err := p.extractArgument(path, fn, i, param)
		if err != nil {
			return models.Method{}, err
		}
		method.Args = append(method.Args, arg)
	}

	if len(fn.Return) > 0 {
		ret, ok := syntax.ParsePath(fn.Return)
		if !ok {
			return models.Method{}, p.reporter.ReturnShape(path, fn)
		}
		method.ReturnType = ret.Key()
	}

	return method, nil
}

func (p *Parser) extractArgument(path string, fn *syntax.Function, index int, param *syntax.Param) (models.Argument, error) {
	if param.Self != nil {
		if index != 0 {
			return nil, p.reporter.ArgumentShape(path, fn, param, "the self receiver must be the first argument")
		}
		if param.Self.IsBorrow() {
			return models.SelfBorrow{Mutable: param.Self.IsMutable()}, nil
		}
		return models.SelfOwned{Mutable: param.Self.IsMutable()}, nil
	}

	name, ok := param.Typed.BindingName()
	if !ok {
		return nil, p.reporter.ArgumentShape(path, fn, param, "argument pattern must be a plain identifier")
	}

	typ, ok := syntax.ParsePath(param.Typed.Type)
	if !ok {
		return nil, p.reporter.ArgumentShape(path, fn, param, "argument type must be a named type")
	}
	if typ.HasGenerics() && typ.Key() != ByteSequenceType {
		return nil, p.reporter.ArgumentShape(path, fn, param, "generic argument types other than "+ByteSequenceType+" are not supported")
	}

	return models.Captured{Name: name, Type: typ.Key()}, nil
}

// implTargets lists the self-type segments an impl block binds methods to
func implTargets(impl *syntax.Impl) []string {
	var targets []string
	for _, segment := range impl.SelfTypeSegments() {
		if !isPathKeyword(segment) {
			targets = append(targets, segment)
		}
	}
	return targets
}

// isPathKeyword reports path segments that never name a type
func isPathKeyword(segment string) bool {
	switch segment {
	case "crate", "self", "super", "Self":
		return true
	}
	return false
}
