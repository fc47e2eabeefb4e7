// Package build compiles the native library with cargo and copies the
// artifacts into the Java project's scope.
package build

import (
	"bytes"
	"context"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"go.uber.org/zap"

	"github.com/toyz/roast/internal/config"
	"github.com/toyz/roast/internal/errors"
	"github.com/toyz/roast/internal/utils/fileops"
)

// CargoCommand is the executable invoked for the native build
const CargoCommand = "cargo"

// CommandRunner runs name with args in dir and returns its combined output
type CommandRunner func(ctx context.Context, dir, name string, args ...string) ([]byte, error)

// ExecRunner runs commands with os/exec
func ExecRunner(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var output bytes.Buffer
	cmd.Stdout = &output
	cmd.Stderr = &output

	err := cmd.Run()
	return output.Bytes(), err
}

// Options configures a Builder
type Options struct {
	Record    config.BuildRecord
	CargoArgs []string // appended to "cargo build"
	Runner    CommandRunner
	GOOS      string // platform naming the library file, defaults to runtime.GOOS
	Logger    *zap.Logger
}

// Result lists what a build copied
type Result struct {
	Library   string   // destination of the shared library
	JavaFiles []string // destinations of the copied Java sources
}

// Builder runs the native build and artifact copy for one project
type Builder struct {
	record    config.BuildRecord
	cargoArgs []string
	runner    CommandRunner
	goos      string
	fileOps   *fileops.FileOps
	logger    *zap.Logger
}

// NewBuilder creates a builder, filling unset options with defaults
func NewBuilder(opts Options) *Builder {
	b := &Builder{
		record:    opts.Record,
		cargoArgs: opts.CargoArgs,
		runner:    opts.Runner,
		goos:      opts.GOOS,
		fileOps:   fileops.NewFileOps(),
		logger:    opts.Logger,
	}
	if b.runner == nil {
		b.runner = ExecRunner
	}
	if b.goos == "" {
		b.goos = runtime.GOOS
	}
	if b.logger == nil {
		b.logger = zap.NewNop()
	}
	return b
}

// LibraryFileName is the file cargo produces for a cdylib named name on goos
func LibraryFileName(goos, name string) string {
	switch goos {
	case "windows":
		return name + ".dll"
	case "darwin", "ios":
		return "lib" + name + ".dylib"
	default:
		return "lib" + name + ".so"
	}
}

// Run compiles the crate, then copies the library and the Java sources
func (b *Builder) Run(ctx context.Context) (*Result, error) {
	if err := b.Cargo(ctx); err != nil {
		return nil, err
	}
	return b.CopyArtifacts()
}

// Cargo runs cargo build in the project root
func (b *Builder) Cargo(ctx context.Context) error {
	args := append([]string{"build"}, b.cargoArgs...)
	command := CargoCommand + " " + strings.Join(args, " ")

	b.logger.Info("running native build", zap.String("command", command), zap.String("dir", b.record.Root))
	output, err := b.runner(ctx, b.record.Root, CargoCommand, args...)
	b.logger.Debug("native build output", zap.String("command", command), zap.ByteString("output", output))

	if err != nil {
		buildErr := errors.WrapBuildError(command, err).
			WithContext("output", strings.TrimSpace(string(output)))
		if errors.Is(err, exec.ErrNotFound) {
			buildErr = buildErr.WithSuggestion("install the Rust toolchain and make sure cargo is on PATH")
		}
		return buildErr
	}
	return nil
}

// CopyArtifacts copies the shared library from bin_source to bin_target
// and the generated Java tree from java_source to java_target
func (b *Builder) CopyArtifacts() (*Result, error) {
	library := LibraryFileName(b.goos, b.record.Name)
	from := filepath.Join(b.record.BinSource, library)
	to := filepath.Join(b.record.BinTarget, library)

	b.logger.Info("copying native library", zap.String("from", from), zap.String("to", to))
	if err := b.fileOps.CopyFile(from, to); err != nil {
		return nil, errors.WrapBuildError("copy library", err).
			WithSuggestion("check that [lib] crate-type includes \"cdylib\" and that bin_source points at cargo's output directory")
	}

	b.logger.Info("copying Java sources", zap.String("from", b.record.JavaSource), zap.String("to", b.record.JavaTarget))
	copied, err := b.fileOps.CopyTree(b.record.JavaSource, b.record.JavaTarget)
	if err != nil {
		return nil, errors.WrapBuildError("copy java sources", err).
			WithSuggestion("run 'roast generate' to produce the Java sources")
	}

	return &Result{Library: to, JavaFiles: copied}, nil
}
