package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/roast/internal/config"
)

func TestCleaner_RemovesOnlyGeneratedFiles(t *testing.T) {
	root := writeProject(t, counterProject+`-- src/generated/handwritten.rs --
pub fn helper() {}
-- target/roast/java/Other.java --
public class Other {}
`)
	cfg := loadConfig(t, root)
	require.NoError(t, NewGenerator(cfg, nil, nil).Run(Config{}))

	removed, err := NewCleaner(cfg, nil).CleanGeneratedFiles()
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{
		filepath.Join(root, "src", "generated", "counter.rs"),
		filepath.Join(root, "src", "generated", "gauge.rs"),
		filepath.Join(root, "src", "generated", "mod.rs"),
		filepath.Join(root, "target", "roast", "java", "Counter.java"),
		filepath.Join(root, "target", "roast", "java", "Gauge.java"),
		filepath.Join(root, config.BuildRecordName),
	}, removed)

	assert.FileExists(t, filepath.Join(root, "src", "generated", "handwritten.rs"))
	assert.FileExists(t, filepath.Join(root, "target", "roast", "java", "Other.java"))
	assert.FileExists(t, filepath.Join(root, "src", "lib.rs"))
	assert.FileExists(t, filepath.Join(root, "src", "main", "java", "Keep.java"))
}

func TestCleaner_NothingGenerated(t *testing.T) {
	root := writeProject(t, counterProject)

	removed, err := NewCleaner(loadConfig(t, root), nil).CleanGeneratedFiles()
	require.NoError(t, err)
	assert.Empty(t, removed)
}

func TestCleaner_IgnoresStubsOfOtherLibraries(t *testing.T) {
	root := writeProject(t, counterProject)
	stub := filepath.Join(root, "target", "roast", "java", "Foreign.java")
	require.NoError(t, os.MkdirAll(filepath.Dir(stub), 0755))
	require.NoError(t, os.WriteFile(stub, []byte("public class Foreign {\n\tstatic {\n\t\tSystem.loadLibrary(\"other\");\n\t}\n}\n"), 0644))

	removed, err := NewCleaner(loadConfig(t, root), nil).CleanGeneratedFiles()
	require.NoError(t, err)
	assert.Empty(t, removed)
	assert.FileExists(t, stub)
}
