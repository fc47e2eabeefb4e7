package utils

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFromFlags(t *testing.T) {
	assert.Equal(t, DiagnosticInfo, LevelFromFlags(0, false))
	assert.Equal(t, DiagnosticVerbose, LevelFromFlags(1, false))
	assert.Equal(t, DiagnosticDebug, LevelFromFlags(3, false))
	assert.Equal(t, DiagnosticError, LevelFromFlags(2, true))
}

func TestDiagnosticSystem_Levels(t *testing.T) {
	var out, errOut bytes.Buffer
	d := NewDiagnosticSystem(DiagnosticInfo)
	d.SetOutput(&out, &errOut)

	d.Info("scanning %s", "src")
	d.Verbose("hidden")
	d.Error("broken %d", 1)
	d.Hint("try again")

	assert.Equal(t, "[INFO] scanning src\n", out.String())
	assert.Equal(t, "[ERROR] broken 1\n[HINT] try again\n", errOut.String())
}

func TestDiagnosticSystem_Quiet(t *testing.T) {
	var out, errOut bytes.Buffer
	d := NewDiagnosticSystem(DiagnosticError)
	d.SetOutput(&out, &errOut)

	d.RoastHeader("Generating bindings")
	d.Summary("Summary", map[string]interface{}{"entities": 1})
	d.Error("still shown")

	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "still shown")
}

func TestDiagnosticSystem_SummarySorted(t *testing.T) {
	var out bytes.Buffer
	d := NewDiagnosticSystem(DiagnosticInfo)
	d.SetOutput(&out, &out)

	d.Summary("Summary", map[string]interface{}{"methods": 3, "entities": 1, "files": 2})

	assert.Equal(t, "\nSummary\n   entities: 1\n   files: 2\n   methods: 3\n\n", out.String())
}

func TestDiagnosticSystem_Indent(t *testing.T) {
	var out bytes.Buffer
	d := NewDiagnosticSystem(DiagnosticInfo)
	d.SetOutput(&out, &out)

	d.Indent()
	d.List("Entity")
	d.Unindent()
	d.Unindent()
	d.List("Other")

	assert.Equal(t, "  - Entity\n- Other\n", out.String())
}
