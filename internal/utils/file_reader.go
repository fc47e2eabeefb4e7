package utils

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/toyz/roast/internal/errors"
	"github.com/toyz/roast/internal/syntax"
)

// FileReader reads and parses Rust sources, caching results by path until
// the file's mtime or size changes
type FileReader struct {
	parser       *syntax.Parser
	astCache     *Cache[string, *syntax.File]
	contentCache *Cache[string, []byte]
}

// NewFileReader creates a new FileReader instance with caching
func NewFileReader() *FileReader {
	return &FileReader{
		parser:       syntax.NewParser(),
		astCache:     NewCache[string, *syntax.File](),
		contentCache: NewCache[string, []byte](),
	}
}

// ParseRustFile parses a Rust source file, returning the cached tree when
// the file is unchanged
func (fr *FileReader) ParseRustFile(filePath string) (*syntax.File, error) {
	cleanPath, err := fr.validateAndCleanPath(filePath)
	if err != nil {
		return nil, err
	}

	if cached, exists := fr.astCache.GetWithFileValidation(cleanPath, cleanPath); exists {
		return cached, nil
	}

	content, err := fr.ReadFile(cleanPath)
	if err != nil {
		return nil, err
	}

	file, err := fr.parser.Parse(cleanPath, content)
	if err != nil {
		return nil, err
	}

	_ = fr.astCache.SetWithFileInfo(cleanPath, file, cleanPath)

	return file, nil
}

// ReadFile reads a file's contents with caching
func (fr *FileReader) ReadFile(filePath string) ([]byte, error) {
	cleanPath, err := fr.validateAndCleanPath(filePath)
	if err != nil {
		return nil, err
	}

	if cached, exists := fr.contentCache.GetWithFileValidation(cleanPath, cleanPath); exists {
		return cached, nil
	}

	content, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, errors.WrapFileSystemError("read", cleanPath, err)
	}

	_ = fr.contentCache.SetWithFileInfo(cleanPath, content, cleanPath)

	return content, nil
}

// InvalidateFile removes a specific file from the caches
func (fr *FileReader) InvalidateFile(filePath string) {
	cleanPath := filepath.Clean(filePath)
	fr.astCache.Delete(cleanPath)
	fr.contentCache.Delete(cleanPath)
}

// Prune drops cached entries for files that are no longer part of the tree
func (fr *FileReader) Prune(current []string) int {
	live := make(map[string]bool, len(current))
	for _, path := range current {
		live[filepath.Clean(path)] = true
	}
	keep := func(path string) bool { return live[path] }
	fr.contentCache.Retain(keep)
	return fr.astCache.Retain(keep)
}

// GetCacheStats returns statistics about the parse cache
func (fr *FileReader) GetCacheStats() CacheStats {
	return fr.astCache.GetStats()
}

// validateAndCleanPath cleans a file path and checks that it exists
func (fr *FileReader) validateAndCleanPath(filePath string) (string, error) {
	if err := NotEmpty("filePath")(filePath); err != nil {
		return "", fmt.Errorf("file path %w", err)
	}

	cleanPath := filepath.Clean(filePath)

	if _, err := os.Stat(cleanPath); err != nil {
		return "", errors.WrapFileSystemError("stat", cleanPath, err)
	}

	return cleanPath, nil
}
