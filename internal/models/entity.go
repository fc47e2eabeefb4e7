package models

// Entity is the type whose methods are bound in one generation pass.
// It is immutable once constructed.
type Entity struct {
	name    string
	methods []Method
}

// NewEntity creates an entity, copying the method list
func NewEntity(name string, methods []Method) *Entity {
	copied := make([]Method, len(methods))
	copy(copied, methods)
	return &Entity{
		name:    name,
		methods: copied,
	}
}

// Name returns the capitalized entity name
func (e *Entity) Name() string {
	return e.name
}

// Methods returns a copy of the methods in discovery order
func (e *Entity) Methods() []Method {
	methods := make([]Method, len(e.methods))
	copy(methods, e.methods)
	return methods
}

// MethodCount returns the number of bound methods
func (e *Entity) MethodCount() int {
	return len(e.methods)
}
