package ports

import (
	"context"

	"github.com/aretw0/espalier/pkg/domain"
)

// ModelCatalog provides named kinetic models, whatever their source
// (a Loam repository, config files, or built-ins).
type ModelCatalog interface {
	// Get returns the model stored under id.
	Get(ctx context.Context, id string) (domain.Model, error)

	// List returns the available model ids.
	List(ctx context.Context) ([]string, error)
}
