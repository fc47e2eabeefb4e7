// Package registry records, per impl target, the methods extracted from
// one traversal of a source tree.
package registry

import (
	"fmt"
	"sort"

	"github.com/toyz/roast/internal/models"
	"github.com/toyz/roast/internal/utils"
)

// Registry is populated once per traversal and then only read
type Registry struct {
	root     string
	files    []string
	methods  *utils.OrderedRegistry[string, []models.Method]
	exported *utils.OrderedRegistry[string, []models.SourceLocation]
	failures *utils.OrderedRegistry[string, []error]
}

var _ EntityRegistry = (*Registry)(nil)

// New creates an empty registry for the tree rooted at root
func New(root string) *Registry {
	return &Registry{
		root:     root,
		methods:  utils.NewOrderedRegistry[string, []models.Method](),
		exported: utils.NewOrderedRegistry[string, []models.SourceLocation](),
		failures: utils.NewOrderedRegistry[string, []error](),
	}
}

// Root returns the source root the registry was built from
func (r *Registry) Root() string {
	return r.root
}

// AddFile records a file visited by the traversal
func (r *Registry) AddFile(path string) {
	r.files = append(r.files, path)
}

// AddMethods appends methods found in one impl block for target, keeping
// file order then declaration order
func (r *Registry) AddMethods(target string, methods ...models.Method) {
	r.methods.Update(target, func(current []models.Method, _ bool) []models.Method {
		return append(current, methods...)
	})
}

// AddFailure records a signature of target that cannot be bound. It only
// surfaces when target itself is requested.
func (r *Registry) AddFailure(target string, err error) {
	r.failures.Update(target, func(current []error, _ bool) []error {
		return append(current, err)
	})
}

// Err returns the first failure recorded for name, in traversal order
func (r *Registry) Err(name string) error {
	failures, ok := r.failures.Get(name)
	if !ok || len(failures) == 0 {
		return nil
	}
	return failures[0]
}

// MarkExported records a type carrying the export derive marker
func (r *Registry) MarkExported(name string, loc models.SourceLocation) {
	r.exported.Update(name, func(current []models.SourceLocation, _ bool) []models.SourceLocation {
		return append(current, loc)
	})
}

// Entity builds the immutable entity for name. An unknown name yields an
// entity with no methods.
func (r *Registry) Entity(name string) *models.Entity {
	methods, _ := r.methods.Get(name)
	return models.NewEntity(name, methods)
}

// Known reports whether name has any impl block or export marker
func (r *Registry) Known(name string) bool {
	return r.methods.Has(name) || r.exported.Has(name) || r.failures.Has(name)
}

// Names lists every known type name, sorted
func (r *Registry) Names() []string {
	seen := make(map[string]bool)
	var names []string
	for _, name := range append(append(r.methods.Keys(), r.exported.Keys()...), r.failures.Keys()...) {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Exported lists marked types in discovery order
func (r *Registry) Exported() []string {
	return r.exported.Keys()
}

// ExportLocations returns where a type was marked for export
func (r *Registry) ExportLocations(name string) []models.SourceLocation {
	locs, _ := r.exported.Get(name)
	return locs
}

// Files lists the files visited, in traversal order
func (r *Registry) Files() []string {
	files := make([]string, len(r.files))
	copy(files, r.files)
	return files
}

// MethodCount returns the number of methods recorded across all targets
func (r *Registry) MethodCount() int {
	total := 0
	r.methods.ForEach(func(_ string, methods []models.Method) {
		total += len(methods)
	})
	return total
}

// String summarizes the registry for logs
func (r *Registry) String() string {
	return fmt.Sprintf("registry(%s: %d files, %d types, %d methods, %d exported)",
		r.root, len(r.files), len(r.Names()), r.MethodCount(), r.exported.Size())
}
