package generator

import "github.com/toyz/roast/internal/models"

// BindingGenerator produces the native glue and host stub for one entity
type BindingGenerator interface {
	Generate(entity *models.Entity) (*models.GeneratedBinding, error)
	NativeGlue(entity *models.Entity) (string, error)
	HostStub(entity *models.Entity) (string, error)
}
