package fileops

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/roast/internal/errors"
)

func TestFileOps_WriteFileCreatesParents(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, "a", "b", "Entity.java")

	fo := NewFileOps()
	require.NoError(t, fo.WriteFile(target, []byte("public class Entity {}\n")))

	content, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "public class Entity {}\n", string(content))
	assert.True(t, fo.IsFile(target))
	assert.True(t, fo.IsDir(filepath.Dir(target)))
}

func TestFileOps_CopyTree(t *testing.T) {
	src := t.TempDir()
	dst := filepath.Join(t.TempDir(), "out")

	require.NoError(t, os.MkdirAll(filepath.Join(src, "rs", "roast"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "rs", "roast", "Entity.java"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(src, "Top.java"), []byte("y"), 0o644))

	fo := NewFileOps()
	copied, err := fo.CopyTree(src, dst)
	require.NoError(t, err)
	assert.Len(t, copied, 2)

	content, err := os.ReadFile(filepath.Join(dst, "rs", "roast", "Entity.java"))
	require.NoError(t, err)
	assert.Equal(t, "x", string(content))
}

func TestFileOps_CopyTreeErrors(t *testing.T) {
	fo := NewFileOps()

	_, err := fo.CopyTree(filepath.Join(t.TempDir(), "missing"), t.TempDir())
	require.Error(t, err)
	assert.Equal(t, errors.FileSystemErrorCode, errors.CodeOf(err))

	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0o644))
	_, err = fo.CopyTree(file, t.TempDir())
	assert.Error(t, err)
}

func TestFileOps_RemoveAll(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "gen")
	fo := NewFileOps()
	require.NoError(t, fo.WriteFile(filepath.Join(dir, "x.rs"), []byte("")))

	require.NoError(t, fo.RemoveAll(dir))
	assert.False(t, fo.Exists(dir))
	assert.NoError(t, fo.RemoveAll(dir))
}

func TestPathValidator(t *testing.T) {
	pv := NewPathValidator()

	_, err := pv.ValidateAndCleanOptional("")
	assert.Error(t, err)

	_, err = pv.ValidateAndCleanOptional("a/../../b")
	assert.NoError(t, err, "leading .. after cleaning is allowed")

	_, err = pv.ValidateAndCleanOptional("/tmp/a/..x")
	assert.Error(t, err)

	assert.True(t, pv.Within("/project", "/project/src/main"))
	assert.True(t, pv.Within("/project", "/project"))
	assert.False(t, pv.Within("/project", "/other"))
	assert.False(t, pv.Within("/project/src", "/project"))
}
