package catalog

import "context"

// Repo provides read access to the catalog.
type Repo interface {
	All(ctx context.Context) ([]Item, error)
	GetByID(ctx context.Context, id string) (Item, error)
}
