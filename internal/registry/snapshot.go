package registry

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/toyz/roast/internal/models"
)

// Snapshot is the serializable view of a registry
type Snapshot struct {
	Root     string           `yaml:"root"`
	Files    []string         `yaml:"files"`
	Entities []EntitySnapshot `yaml:"entities"`
}

// EntitySnapshot describes one type and its bound methods
type EntitySnapshot struct {
	Name     string           `yaml:"name"`
	Exported bool             `yaml:"exported"`
	Methods  []MethodSnapshot `yaml:"methods,omitempty"`
	Error    string           `yaml:"error,omitempty"`
}

// MethodSnapshot describes one discovered method
type MethodSnapshot struct {
	Name     string            `yaml:"name"`
	Static   bool              `yaml:"static"`
	Receiver string            `yaml:"receiver,omitempty"`
	Args     []models.Captured `yaml:"args,omitempty"`
	Returns  string            `yaml:"returns,omitempty"`
	Location string            `yaml:"location,omitempty"`
}

// Snapshot captures the registry contents, entities sorted by name
func (r *Registry) Snapshot() Snapshot {
	exported := make(map[string]bool)
	for _, name := range r.Exported() {
		exported[name] = true
	}

	snap := Snapshot{
		Root:  r.root,
		Files: r.Files(),
	}

	for _, name := range r.Names() {
		entity := EntitySnapshot{Name: name, Exported: exported[name]}
		if err := r.Err(name); err != nil {
			entity.Error = err.Error()
		}
		for _, method := range r.Entity(name).Methods() {
			entity.Methods = append(entity.Methods, snapshotMethod(method))
		}
		snap.Entities = append(snap.Entities, entity)
	}

	return snap
}

// MarshalYAML renders the registry through its snapshot
func (r *Registry) MarshalYAML() (interface{}, error) {
	return r.Snapshot(), nil
}

// YAML encodes the snapshot
func (s Snapshot) YAML() ([]byte, error) {
	out, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to encode registry snapshot: %w", err)
	}
	return out, nil
}

func snapshotMethod(method models.Method) MethodSnapshot {
	snap := MethodSnapshot{
		Name:    method.Name,
		Static:  method.IsStatic(),
		Args:    method.Captured(),
		Returns: method.ReturnType,
	}
	for _, arg := range method.Args {
		if models.IsReceiver(arg) {
			snap.Receiver = models.DescribeArgument(arg)
		}
	}
	if method.Location.File != "" {
		snap.Location = fmt.Sprintf("%s:%d", method.Location.File, method.Location.Line)
	}
	return snap
}
