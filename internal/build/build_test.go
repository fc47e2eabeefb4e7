package build

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/roast/internal/config"
	"github.com/toyz/roast/internal/errors"
)

type recordedCommand struct {
	dir  string
	name string
	args []string
}

func fakeRunner(calls *[]recordedCommand, output string, err error) CommandRunner {
	return func(_ context.Context, dir, name string, args ...string) ([]byte, error) {
		*calls = append(*calls, recordedCommand{dir: dir, name: name, args: args})
		return []byte(output), err
	}
}

func write(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func testRecord(root string) config.BuildRecord {
	return config.BuildRecord{
		Root:       root,
		Name:       "demo",
		BinSource:  filepath.Join(root, "target", "debug"),
		BinTarget:  filepath.Join(root, "src", "main", "resources"),
		JavaSource: filepath.Join(root, "target", "roast", "java"),
		JavaTarget: filepath.Join(root, "src", "main", "java"),
	}
}

func TestLibraryFileName(t *testing.T) {
	tests := []struct {
		goos string
		want string
	}{
		{"linux", "libdemo.so"},
		{"freebsd", "libdemo.so"},
		{"darwin", "libdemo.dylib"},
		{"windows", "demo.dll"},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			assert.Equal(t, tt.want, LibraryFileName(tt.goos, "demo"))
		})
	}
}

func TestBuilder_Run(t *testing.T) {
	root := t.TempDir()
	write(t, filepath.Join(root, "target", "debug", "libdemo.so"), "elf")
	write(t, filepath.Join(root, "target", "roast", "java", "Counter.java"), "public class Counter {}\n")
	write(t, filepath.Join(root, "target", "roast", "java", "nested", "Gauge.java"), "public class Gauge {}\n")

	var calls []recordedCommand
	builder := NewBuilder(Options{
		Record:    testRecord(root),
		CargoArgs: []string{"--release", "--features", "jni extra"},
		Runner:    fakeRunner(&calls, "Finished", nil),
		GOOS:      "linux",
	})

	result, err := builder.Run(context.Background())
	require.NoError(t, err)

	require.Len(t, calls, 1)
	assert.Equal(t, root, calls[0].dir)
	assert.Equal(t, CargoCommand, calls[0].name)
	assert.Equal(t, []string{"build", "--release", "--features", "jni extra"}, calls[0].args)

	assert.Equal(t, filepath.Join(root, "src", "main", "resources", "libdemo.so"), result.Library)
	assert.FileExists(t, result.Library)
	assert.ElementsMatch(t, []string{
		filepath.Join(root, "src", "main", "java", "Counter.java"),
		filepath.Join(root, "src", "main", "java", "nested", "Gauge.java"),
	}, result.JavaFiles)

	data, err := os.ReadFile(filepath.Join(root, "src", "main", "java", "nested", "Gauge.java"))
	require.NoError(t, err)
	assert.Equal(t, "public class Gauge {}\n", string(data))
}

func TestBuilder_CargoFailureStopsBuild(t *testing.T) {
	root := t.TempDir()

	var calls []recordedCommand
	builder := NewBuilder(Options{
		Record: testRecord(root),
		Runner: fakeRunner(&calls, "error[E0425]: cannot find value", assert.AnError),
	})

	result, err := builder.Run(context.Background())
	require.Error(t, err)
	assert.Nil(t, result)
	assert.Equal(t, errors.BuildErrorCode, errors.CodeOf(err))

	var roastErr errors.RoastError
	require.True(t, errors.As(err, &roastErr))
	assert.Equal(t, "error[E0425]: cannot find value", roastErr.Context()["output"])
	assert.NoDirExists(t, filepath.Join(root, "src"))
}

func TestBuilder_MissingCargo(t *testing.T) {
	builder := NewBuilder(Options{
		Record: testRecord(t.TempDir()),
		Runner: func(context.Context, string, string, ...string) ([]byte, error) {
			return nil, &exec.Error{Name: CargoCommand, Err: exec.ErrNotFound}
		},
	})

	err := builder.Cargo(context.Background())
	require.Error(t, err)
	assert.Contains(t, errors.Hints(err), "install the Rust toolchain and make sure cargo is on PATH")
}

func TestBuilder_MissingLibrary(t *testing.T) {
	root := t.TempDir()
	builder := NewBuilder(Options{Record: testRecord(root), GOOS: "darwin"})

	_, err := builder.CopyArtifacts()
	require.Error(t, err)
	assert.Equal(t, errors.BuildErrorCode, errors.CodeOf(err))
	assert.Contains(t, err.Error(), "copy library")
}

func TestBuilder_MissingJavaSources(t *testing.T) {
	root := t.TempDir()
	write(t, filepath.Join(root, "target", "debug", "demo.dll"), "pe")
	builder := NewBuilder(Options{Record: testRecord(root), GOOS: "windows"})

	_, err := builder.CopyArtifacts()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "copy java sources")
	assert.FileExists(t, filepath.Join(root, "src", "main", "resources", "demo.dll"))
}
