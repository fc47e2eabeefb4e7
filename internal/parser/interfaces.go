package parser

import (
	"github.com/toyz/roast/internal/models"
	"github.com/toyz/roast/internal/registry"
)

// SignatureDiscoverer finds the public methods of Rust types in a source tree
type SignatureDiscoverer interface {
	Discover(root string) (*registry.Registry, error)
	MethodsFor(root, ident string) ([]models.Method, error)
	Invalidate(path string)
}
