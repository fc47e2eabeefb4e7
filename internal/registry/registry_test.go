package registry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/toyz/roast/internal/models"
)

func sampleRegistry() *Registry {
	r := New("src")
	r.AddFile("src/a.rs")
	r.AddFile("src/b.rs")

	r.AddMethods("Entity",
		models.NewMethod("foobar", "bool", models.Captured{Name: "a", Type: "i32"}),
	)
	r.AddMethods("Other", models.NewMethod("noop", ""))
	r.AddMethods("Entity",
		models.NewMethod("get_foo_bar", "", models.SelfBorrow{}),
	)
	r.MarkExported("Entity", models.SourceLocation{File: "src/a.rs", Line: 3})
	r.MarkExported("Marked", models.SourceLocation{File: "src/b.rs", Line: 1})
	return r
}

func TestRegistry_EntityKeepsDiscoveryOrder(t *testing.T) {
	r := sampleRegistry()

	entity := r.Entity("Entity")
	require.Equal(t, 2, entity.MethodCount())
	methods := entity.Methods()
	assert.Equal(t, "foobar", methods[0].Name)
	assert.Equal(t, "get_foo_bar", methods[1].Name)
}

func TestRegistry_UnknownEntityIsEmpty(t *testing.T) {
	r := sampleRegistry()

	entity := r.Entity("Missing")
	assert.Equal(t, "Missing", entity.Name())
	assert.Zero(t, entity.MethodCount())
	assert.False(t, r.Known("Missing"))
	assert.True(t, r.Known("Marked"))
}

func TestRegistry_EntityIsIsolated(t *testing.T) {
	r := sampleRegistry()

	first := r.Entity("Entity")
	r.AddMethods("Entity", models.NewMethod("later", ""))

	assert.Equal(t, 2, first.MethodCount())
	assert.Equal(t, 3, r.Entity("Entity").MethodCount())
}

func TestRegistry_Listing(t *testing.T) {
	r := sampleRegistry()

	assert.Equal(t, []string{"Entity", "Marked", "Other"}, r.Names())
	assert.Equal(t, []string{"Entity", "Marked"}, r.Exported())
	assert.Equal(t, []string{"src/a.rs", "src/b.rs"}, r.Files())
	assert.Equal(t, 3, r.MethodCount())
	assert.Len(t, r.ExportLocations("Entity"), 1)
}

func TestRegistry_SnapshotYAML(t *testing.T) {
	r := sampleRegistry()

	out, err := r.Snapshot().YAML()
	require.NoError(t, err)

	var decoded Snapshot
	require.NoError(t, yaml.Unmarshal(out, &decoded))

	require.Len(t, decoded.Entities, 3)
	entity := decoded.Entities[0]
	assert.Equal(t, "Entity", entity.Name)
	assert.True(t, entity.Exported)
	require.Len(t, entity.Methods, 2)
	assert.True(t, entity.Methods[0].Static)
	assert.Equal(t, []models.Captured{{Name: "a", Type: "i32"}}, entity.Methods[0].Args)
	assert.Equal(t, "bool", entity.Methods[0].Returns)
	assert.False(t, entity.Methods[1].Static)
	assert.Equal(t, "&self", entity.Methods[1].Receiver)
}

func TestRegistry_FailuresStayWithTheirTarget(t *testing.T) {
	r := sampleRegistry()
	first := errors.New("function new: unsupported argument")
	r.AddFailure("Helper", first)
	r.AddFailure("Helper", errors.New("function label: unsupported return"))

	assert.NoError(t, r.Err("Entity"))
	assert.Equal(t, first, r.Err("Helper"))
	assert.True(t, r.Known("Helper"))
	assert.Equal(t, 0, r.Entity("Helper").MethodCount())
	assert.Contains(t, r.Names(), "Helper")

	var helper EntitySnapshot
	for _, entity := range r.Snapshot().Entities {
		if entity.Name == "Helper" {
			helper = entity
		}
	}
	assert.Equal(t, first.Error(), helper.Error)
}
