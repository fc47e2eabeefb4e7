package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/roast/internal/errors"
)

func TestFileReader_ParseCaching(t *testing.T) {
	tempDir := t.TempDir()
	testFile := filepath.Join(tempDir, "lib.rs")

	require.NoError(t, os.WriteFile(testFile, []byte("impl Entity {\n    pub fn a() {}\n}\n"), 0644))

	reader := NewFileReader()

	file1, err := reader.ParseRustFile(testFile)
	require.NoError(t, err)

	file2, err := reader.ParseRustFile(testFile)
	require.NoError(t, err)
	assert.Same(t, file1, file2, "expected cached tree to be returned")

	stats := reader.GetCacheStats()
	assert.Equal(t, 1, stats.Size)
	assert.Equal(t, 1, stats.Hits)

	require.NoError(t, os.WriteFile(testFile, []byte("impl Entity {\n    pub fn a() {}\n    pub fn b() {}\n}\n"), 0644))
	later := time.Now().Add(2 * time.Second)
	require.NoError(t, os.Chtimes(testFile, later, later))

	file3, err := reader.ParseRustFile(testFile)
	require.NoError(t, err)
	assert.NotSame(t, file1, file3, "expected a fresh tree after modification")
	assert.Len(t, file3.Items[0].Impl.Members, 2)
}

func TestFileReader_Prune(t *testing.T) {
	tempDir := t.TempDir()
	a := filepath.Join(tempDir, "a.rs")
	b := filepath.Join(tempDir, "b.rs")
	require.NoError(t, os.WriteFile(a, []byte("struct A;"), 0644))
	require.NoError(t, os.WriteFile(b, []byte("struct B;"), 0644))

	reader := NewFileReader()
	_, err := reader.ParseRustFile(a)
	require.NoError(t, err)
	_, err = reader.ParseRustFile(b)
	require.NoError(t, err)

	assert.Equal(t, 1, reader.Prune([]string{a}))
	assert.Equal(t, 1, reader.GetCacheStats().Size)
}

func TestFileReader_Errors(t *testing.T) {
	reader := NewFileReader()

	_, err := reader.ParseRustFile("")
	assert.Error(t, err)

	_, err = reader.ParseRustFile(filepath.Join(t.TempDir(), "missing.rs"))
	require.Error(t, err)
	assert.Equal(t, errors.FileSystemErrorCode, errors.CodeOf(err))

	broken := filepath.Join(t.TempDir(), "broken.rs")
	require.NoError(t, os.WriteFile(broken, []byte("impl {"), 0644))
	_, err = reader.ParseRustFile(broken)
	require.Error(t, err)
	assert.Equal(t, errors.SyntaxErrorCode, errors.CodeOf(err))
}
