package cli

import (
	"bytes"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/toyz/roast/internal/config"
	"github.com/toyz/roast/internal/errors"
	"github.com/toyz/roast/internal/generator"
	"github.com/toyz/roast/internal/models"
	"github.com/toyz/roast/internal/naming"
	"github.com/toyz/roast/internal/parser"
	"github.com/toyz/roast/internal/registry"
	"github.com/toyz/roast/internal/templates"
	"github.com/toyz/roast/internal/utils"
	"github.com/toyz/roast/internal/utils/fileops"
)

const (
	kindGlue   = "glue"
	kindStub   = "stub"
	kindModule = "module"

	// modFileName declares the generated glue modules to the crate
	modFileName = "mod.rs"
)

// Generator coordinates one project's discovery, generation and output
type Generator struct {
	cfg         *config.Config
	parser      *parser.Parser
	bindings    *generator.Generator
	processor   *utils.FileProcessor
	fileOps     *fileops.FileOps
	diagnostics *utils.DiagnosticSystem
	logger      *zap.Logger
	summary     GenerationSummary
}

// NewGenerator creates a generation driver for cfg. The parser and its
// cache are kept for the lifetime of the driver, so repeated runs in
// watch mode only re-parse changed files.
func NewGenerator(cfg *config.Config, diagnostics *utils.DiagnosticSystem, logger *zap.Logger) *Generator {
	if diagnostics == nil {
		diagnostics = utils.NewDiagnosticSystem(utils.DiagnosticSilent)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	processor := utils.NewFileProcessor()
	return &Generator{
		cfg: cfg,
		parser: parser.NewParser(
			parser.WithLogger(logger.Named("parser")),
			parser.WithExportMarker(cfg.Generate.ExportMarker),
			parser.WithFileProcessor(processor),
		),
		bindings: generator.NewGenerator(generator.Options{
			Library:      cfg.Project.Name,
			SymbolPrefix: cfg.Generate.SymbolPrefix,
			RuntimeCrate: cfg.Generate.RuntimeCrate,
			Logger:       logger.Named("generator"),
		}),
		processor:   processor,
		fileOps:     fileops.NewFileOps(),
		diagnostics: diagnostics,
		logger:      logger,
		summary:     GenerationSummary{GeneratedFiles: make([]models.GeneratedFile, 0)},
	}
}

// GetSummary returns the summary of the last run
func (g *Generator) GetSummary() GenerationSummary {
	return g.summary
}

// Parser exposes the driver's parser, e.g. for cache invalidation
func (g *Generator) Parser() *parser.Parser {
	return g.parser
}

// Inspect discovers the source root without generating anything
func (g *Generator) Inspect() (*registry.Registry, error) {
	return g.parser.Discover(g.cfg.SourceRoot())
}

// Run executes a complete generation pass. Either every selected entity
// is generated and written, or nothing is written at all.
func (g *Generator) Run(opts Config) error {
	startTime := time.Now()
	g.summary = GenerationSummary{GeneratedFiles: make([]models.GeneratedFile, 0)}

	g.diagnostics.RoastHeader("Generating JNI bindings")
	g.diagnostics.SourcePath(g.cfg.SourceRoot())
	g.diagnostics.Verbose("Starting generation at %s", startTime.Format("15:04:05"))

	g.diagnostics.PhaseHeader("Discovery")
	reg, err := g.parser.Discover(g.cfg.SourceRoot())
	if err != nil {
		return err
	}
	g.summary.FilesScanned = len(reg.Files())
	stats := g.processor.GetFileReader().GetCacheStats()
	g.diagnostics.Debug("Parse cache: %d hits, %d misses, %d entries", stats.Hits, stats.Misses, stats.Size)
	g.diagnostics.PhaseItem(fmt.Sprintf("Scanned %d source files, found %d types", len(reg.Files()), len(reg.Names())))

	names := g.selectEntities(reg, opts.Entities)
	if len(names) == 0 {
		g.diagnostics.Warn("No entities to bind; derive %s on a struct or pass --entity", g.parser.ExportMarker())
	}

	g.diagnostics.PhaseHeader("Generation")
	bindings, err := g.generateAll(reg, names)
	if err != nil {
		return err
	}

	g.diagnostics.PhaseHeader("Output")
	if err := g.writeAll(reg, bindings); err != nil {
		return err
	}

	if err := config.SaveBuildRecord(g.cfg.BuildRecordPath(), g.cfg.BuildRecord()); err != nil {
		return err
	}
	g.diagnostics.Verbose("Build record written to %s", g.cfg.BuildRecordPath())

	g.summary.Duration = time.Since(startTime)
	g.logger.Info("generation complete",
		zap.Int("files_scanned", g.summary.FilesScanned),
		zap.Int("entities", g.summary.EntitiesBound),
		zap.Int("methods", g.summary.MethodsBound),
		zap.Duration("duration", g.summary.Duration),
	)
	g.diagnostics.GenerationComplete()

	return nil
}

// selectEntities picks the explicit names, else the configured ones, else
// every exported type, normalized to PascalCase and de-duplicated
func (g *Generator) selectEntities(reg *registry.Registry, explicit []string) []string {
	requested := explicit
	if len(requested) == 0 {
		requested = g.cfg.Generate.Entities
	}
	if len(requested) == 0 {
		requested = reg.Exported()
	}

	seen := make(map[string]bool)
	var names []string
	for _, name := range requested {
		name = naming.PascalCase(name)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true

		if !reg.Known(name) {
			g.diagnostics.Warn("Entity %s has no public methods under %s", name, g.cfg.SourceRoot())
		}
		names = append(names, name)
	}
	return names
}

// generateAll produces every binding in memory, collecting all failures
func (g *Generator) generateAll(reg *registry.Registry, names []string) ([]*models.GeneratedBinding, error) {
	failures := errors.NewMultipleErrors()
	bindings := make([]*models.GeneratedBinding, 0, len(names))

	for _, name := range names {
		entity := reg.Entity(name)
		err := reg.Err(name)
		var binding *models.GeneratedBinding
		if err == nil {
			binding, err = g.bindings.Generate(entity)
		}
		if err != nil {
			var roastErr errors.RoastError
			if errors.As(err, &roastErr) {
				failures.Add(roastErr)
			} else {
				failures.Add(errors.NewGenerationError(name, "binding", err))
			}
			continue
		}

		bindings = append(bindings, binding)
		g.summary.EntitiesBound++
		g.summary.MethodsBound += entity.MethodCount()
		g.diagnostics.PhaseItem(fmt.Sprintf("%s: %d methods", name, entity.MethodCount()))
	}

	switch failures.Count() {
	case 0:
		return bindings, nil
	case 1:
		g.diagnostics.Error("1 of %d entities failed; nothing was written", len(names))
		return nil, failures.Errors[0]
	default:
		g.diagnostics.Error("%d of %d entities failed; nothing was written", failures.Count(), len(names))
		return nil, failures
	}
}

// writeAll writes the glue, the glue mod.rs and the Java stubs
func (g *Generator) writeAll(reg *registry.Registry, bindings []*models.GeneratedBinding) error {
	nativeOut := g.cfg.NativeOutDir()
	javaOut := g.cfg.JavaOutDir()

	for _, binding := range bindings {
		if binding.NativeGlue != "" {
			content, err := templates.ExecuteTemplate(templates.GlueFileTemplate, templates.GlueFileData{
				Imports:   []string{g.entityImport(reg, binding.Entity)},
				Functions: binding.NativeGlue,
			})
			if err != nil {
				return errors.NewGenerationError(binding.Entity, "glue", err)
			}
			if err := g.write(filepath.Join(nativeOut, binding.GlueFileName), content, binding.Entity, kindGlue); err != nil {
				return err
			}
		}

		if err := g.write(filepath.Join(javaOut, binding.StubFileName), binding.HostStub, binding.Entity, kindStub); err != nil {
			return err
		}
	}

	modules, err := g.generatedModules(nativeOut)
	if err != nil {
		return err
	}
	if len(modules) == 0 {
		return nil
	}

	content, err := templates.ExecuteTemplate(templates.GlueModTemplate, templates.GlueModData{Modules: modules})
	if err != nil {
		return errors.WrapTemplateError(templates.GlueModTemplate, "execute", err)
	}
	return g.write(filepath.Join(nativeOut, modFileName), content, "", kindModule)
}

// write writes one file and records it in the summary
func (g *Generator) write(path, content, entity, kind string) error {
	if err := g.fileOps.WriteFile(path, []byte(content)); err != nil {
		return err
	}

	g.summary.GeneratedFiles = append(g.summary.GeneratedFiles, models.GeneratedFile{
		Path:   path,
		Entity: entity,
		Kind:   kind,
	})
	g.diagnostics.PhaseProgress("Writing " + g.relative(path))
	g.logger.Debug("wrote file", zap.String("path", path), zap.String("kind", kind))
	return nil
}

// entityImport is the use path that brings the entity into glue scope
func (g *Generator) entityImport(reg *registry.Registry, name string) string {
	module := "crate"

	var file string
	if locations := reg.ExportLocations(name); len(locations) > 0 {
		file = locations[0].File
	} else if methods := reg.Entity(name).Methods(); len(methods) > 0 {
		file = methods[0].Location.File
	}

	if file != "" {
		if rel, err := filepath.Rel(g.cfg.SourceRoot(), file); err == nil && !strings.HasPrefix(rel, "..") {
			module = naming.ModulePath(filepath.ToSlash(rel))
		}
	}
	return module + "::" + name
}

// generatedModules lists the module names of the generated glue files in dir
func (g *Generator) generatedModules(dir string) ([]string, error) {
	if !g.fileOps.IsDir(dir) {
		return nil, nil
	}

	files, err := g.processor.WalkFiles(dir, utils.FileWalkOptions{
		FileFilter: g.generatedRustFilter(dir),
	})
	if err != nil {
		return nil, errors.WrapFileSystemError("list", dir, err)
	}

	var modules []string
	for _, file := range files {
		if filepath.Base(file) == modFileName {
			continue
		}
		modules = append(modules, strings.TrimSuffix(filepath.Base(file), utils.RustSourceExtension))
	}
	sort.Strings(modules)
	return modules, nil
}

// generatedRustFilter accepts the .rs files directly in dir that start with the generated header
func (g *Generator) generatedRustFilter(dir string) utils.FileFilter {
	rustFiles := utils.RustFileFilter()
	return func(path string, entry fs.DirEntry) bool {
		if filepath.Dir(path) != filepath.Clean(dir) || !rustFiles(path, entry) {
			return false
		}
		return g.hasPrefix(path, []byte(templates.GeneratedHeader))
	}
}

// hasPrefix reports whether the file at path starts with prefix
func (g *Generator) hasPrefix(path string, prefix []byte) bool {
	content, err := g.processor.GetFileReader().ReadFile(path)
	if err != nil {
		return false
	}
	return bytes.HasPrefix(content, prefix)
}

// relative renders path relative to the project root for display
func (g *Generator) relative(path string) string {
	if rel, err := filepath.Rel(g.cfg.Project.Root, path); err == nil {
		return rel
	}
	return path
}
