package cli

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/toyz/roast/internal/config"
	"github.com/toyz/roast/internal/errors"
	"github.com/toyz/roast/internal/templates"
	"github.com/toyz/roast/internal/utils"
)

// javaSourceExtension is the extension of generated stubs
const javaSourceExtension = ".java"

// Cleaner removes the files a generation run produced. Hand-written
// files in the output directories are left alone.
type Cleaner struct {
	cfg       *config.Config
	processor *utils.FileProcessor
	logger    *zap.Logger
}

// NewCleaner creates a new cleaner
func NewCleaner(cfg *config.Config, logger *zap.Logger) *Cleaner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Cleaner{
		cfg:       cfg,
		processor: utils.NewFileProcessor(),
		logger:    logger,
	}
}

// CleanGeneratedFiles removes generated glue, generated stubs and the build
// record, returning the removed paths
func (c *Cleaner) CleanGeneratedFiles() ([]string, error) {
	var removed []string

	glue, err := c.processor.RemoveFiles(c.cfg.NativeOutDir(), c.generatedGlue())
	removed = append(removed, glue...)
	if err != nil {
		return removed, errors.WrapFileSystemError("clean", c.cfg.NativeOutDir(), err)
	}

	stubs, err := c.processor.RemoveFiles(c.cfg.JavaOutDir(), c.generatedStubs())
	removed = append(removed, stubs...)
	if err != nil {
		return removed, errors.WrapFileSystemError("clean", c.cfg.JavaOutDir(), err)
	}

	record := c.cfg.BuildRecordPath()
	if err := os.Remove(record); err == nil {
		removed = append(removed, record)
	} else if !os.IsNotExist(err) {
		return removed, errors.WrapFileSystemError("remove", record, err)
	}

	c.logger.Debug("cleaned generated files", zap.Int("removed", len(removed)))
	return removed, nil
}

// generatedGlue accepts Rust files carrying the generated header
func (c *Cleaner) generatedGlue() utils.FileFilter {
	rustFiles := utils.RustFileFilter()
	header := []byte(templates.GeneratedHeader)
	return func(path string, entry fs.DirEntry) bool {
		return rustFiles(path, entry) && c.contentMatches(path, func(content []byte) bool {
			return bytes.HasPrefix(content, header)
		})
	}
}

// generatedStubs accepts Java classes that load this project's library
func (c *Cleaner) generatedStubs() utils.FileFilter {
	load := "System.loadLibrary(\"" + c.cfg.Project.Name + "\");"
	return func(path string, entry fs.DirEntry) bool {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), javaSourceExtension) {
			return false
		}
		return c.contentMatches(path, func(content []byte) bool {
			return bytes.Contains(content, []byte(load))
		})
	}
}

func (c *Cleaner) contentMatches(path string, match func([]byte) bool) bool {
	content, err := c.processor.GetFileReader().ReadFile(filepath.Clean(path))
	if err != nil {
		c.logger.Debug("skipping unreadable file", zap.String("path", path), zap.Error(err))
		return false
	}
	return match(content)
}
