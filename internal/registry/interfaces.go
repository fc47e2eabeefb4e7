package registry

import "github.com/toyz/roast/internal/models"

// EntityRegistry is the read side of a discovery pass, shared by every
// entity generated from the same source tree
type EntityRegistry interface {
	Entity(name string) *models.Entity
	Err(name string) error
	Known(name string) bool
	Names() []string
	Exported() []string
	Files() []string
}
