// Package fileops is the only place generated output and build artifacts
// touch the disk.
package fileops

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/toyz/roast/internal/errors"
)

const (
	filePerm = 0o644
	dirPerm  = 0o755
)

// FileOps provides file operations with path validation and typed errors
type FileOps struct {
	pathValidator *PathValidator
}

// NewFileOps creates a new FileOps instance
func NewFileOps() *FileOps {
	return &FileOps{
		pathValidator: NewPathValidator(),
	}
}

// PathValidator returns the path validator instance
func (fo *FileOps) PathValidator() *PathValidator {
	return fo.pathValidator
}

// WriteFile writes content, creating parent directories as needed
func (fo *FileOps) WriteFile(filePath string, content []byte) error {
	cleanPath, err := fo.pathValidator.ValidateAndCleanOptional(filePath)
	if err != nil {
		return errors.WrapFileSystemError("validate", filePath, err)
	}

	if err := os.MkdirAll(filepath.Dir(cleanPath), dirPerm); err != nil {
		return errors.WrapFileSystemError("create directory", filepath.Dir(cleanPath), err)
	}

	if err := os.WriteFile(cleanPath, content, filePerm); err != nil {
		return errors.WrapFileSystemError("write", cleanPath, err)
	}

	return nil
}

// CopyFile copies a single regular file, preserving its permission bits
func (fo *FileOps) CopyFile(src, dst string) error {
	cleanSrc, err := fo.pathValidator.ValidateAndClean(src)
	if err != nil {
		return errors.WrapFileSystemError("validate", src, err)
	}

	in, err := os.Open(cleanSrc)
	if err != nil {
		return errors.WrapFileSystemError("open", cleanSrc, err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return errors.WrapFileSystemError("stat", cleanSrc, err)
	}

	if err := os.MkdirAll(filepath.Dir(dst), dirPerm); err != nil {
		return errors.WrapFileSystemError("create directory", filepath.Dir(dst), err)
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return errors.WrapFileSystemError("create", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return errors.WrapFileSystemError("copy", dst, err)
	}

	if err := out.Close(); err != nil {
		return errors.WrapFileSystemError("close", dst, err)
	}
	return nil
}

// CopyTree recursively copies the directory src into dst, overwriting
// existing files. It returns the destination paths written.
func (fo *FileOps) CopyTree(src, dst string) ([]string, error) {
	cleanSrc, err := fo.pathValidator.ValidateAndClean(src)
	if err != nil {
		return nil, errors.WrapFileSystemError("validate", src, err)
	}
	if !fo.pathValidator.IsDir(cleanSrc) {
		return nil, errors.NewCodef(errors.FileSystemErrorCode, "'%s' is not a directory", cleanSrc)
	}

	var copied []string
	err = filepath.WalkDir(cleanSrc, func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		rel, err := filepath.Rel(cleanSrc, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		if entry.IsDir() {
			return os.MkdirAll(target, dirPerm)
		}

		if err := fo.CopyFile(path, target); err != nil {
			return err
		}
		copied = append(copied, target)
		return nil
	})
	if err != nil {
		return copied, errors.WrapFileSystemError("copy directory", cleanSrc, err)
	}

	return copied, nil
}

// RemoveAll removes a path and everything below it. A missing path is not an error.
func (fo *FileOps) RemoveAll(path string) error {
	cleanPath, err := fo.pathValidator.ValidateAndCleanOptional(path)
	if err != nil {
		return errors.WrapFileSystemError("validate", path, err)
	}

	if err := os.RemoveAll(cleanPath); err != nil {
		return errors.WrapFileSystemError("remove", cleanPath, err)
	}
	return nil
}

// Exists checks if a path exists using the path validator
func (fo *FileOps) Exists(path string) bool {
	return fo.pathValidator.Exists(path)
}

// IsDir checks if a path is a directory using the path validator
func (fo *FileOps) IsDir(path string) bool {
	return fo.pathValidator.IsDir(path)
}

// IsFile checks if a path is a regular file using the path validator
func (fo *FileOps) IsFile(path string) bool {
	return fo.pathValidator.IsFile(path)
}
