package utils

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/toyz/roast/internal/errors"
)

// RustSourceExtension is the extension of files that discovery reads
const RustSourceExtension = ".rs"

// FileProcessor provides utilities for common file processing operations
type FileProcessor struct {
	fileReader *FileReader
}

// NewFileProcessor creates a new file processor
func NewFileProcessor() *FileProcessor {
	return &FileProcessor{
		fileReader: NewFileReader(),
	}
}

// FileFilter defines a function that determines whether a file should be processed
type FileFilter func(path string, info fs.DirEntry) bool

// DirectoryFilter defines a function that determines whether a directory should be descended into
type DirectoryFilter func(path string, info fs.DirEntry) bool

// FileWalkOptions configures file walking behavior
type FileWalkOptions struct {
	FileFilter      FileFilter
	DirectoryFilter DirectoryFilter
	SkipErrors      bool
}

// RustFileFilter selects regular files with the .rs extension
func RustFileFilter() FileFilter {
	return func(path string, info fs.DirEntry) bool {
		if info.IsDir() {
			return false
		}
		return strings.HasSuffix(info.Name(), RustSourceExtension)
	}
}

// DefaultDirectoryFilter skips build output, VCS metadata and hidden directories
func DefaultDirectoryFilter() DirectoryFilter {
	skipDirs := map[string]bool{
		"target":       true,
		"node_modules": true,
		".git":         true,
		".svn":         true,
		".hg":          true,
	}

	return func(path string, info fs.DirEntry) bool {
		if !info.IsDir() {
			return true
		}

		name := info.Name()

		if strings.HasPrefix(name, ".") && name != "." && name != ".." {
			return false
		}

		return !skipDirs[name]
	}
}

// RustWalkOptions is the walk configuration used by discovery
func RustWalkOptions() FileWalkOptions {
	return FileWalkOptions{
		FileFilter:      RustFileFilter(),
		DirectoryFilter: DefaultDirectoryFilter(),
	}
}

// WalkFiles returns the matching files under rootDir in lexicographic path order
func (fp *FileProcessor) WalkFiles(rootDir string, options FileWalkOptions) ([]string, error) {
	var matchedFiles []string

	err := filepath.WalkDir(rootDir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			if options.SkipErrors {
				return nil
			}
			return err
		}

		if entry.IsDir() {
			// the root itself is always walked
			if path != rootDir && options.DirectoryFilter != nil && !options.DirectoryFilter(path, entry) {
				return filepath.SkipDir
			}
			return nil
		}

		if options.FileFilter == nil || options.FileFilter(path, entry) {
			matchedFiles = append(matchedFiles, path)
		}

		return nil
	})
	if err != nil {
		return nil, errors.WrapFileSystemError("walk", rootDir, err)
	}

	sort.Strings(matchedFiles)
	return matchedFiles, nil
}

// RemoveFiles deletes every file under dir accepted by filter and returns
// the removed paths. A missing dir is not an error.
func (fp *FileProcessor) RemoveFiles(dir string, filter FileFilter) ([]string, error) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil, nil
	}

	files, err := fp.WalkFiles(dir, FileWalkOptions{FileFilter: filter})
	if err != nil {
		return nil, err
	}

	var removed []string
	for _, file := range files {
		if err := os.Remove(file); err != nil {
			return removed, errors.WrapFileSystemError("remove", file, err)
		}
		removed = append(removed, file)
	}

	return removed, nil
}

// GetFileReader returns the underlying FileReader for advanced operations
func (fp *FileProcessor) GetFileReader() *FileReader {
	return fp.fileReader
}
