package catalog

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	List(ctx context.Context) ([]*Entry, error)
	// ListGrouped returns the catalog ordered by category then
	// subcategory, the scan order the grouped view is built from.
	ListGrouped(ctx context.Context) ([]*Entry, error)
	Create(ctx context.Context, e *Entry) error
	Update(ctx context.Context, e *Entry) error
	Delete(ctx context.Context, id uuid.UUID) error
	ExistsByName(ctx context.Context, name string) (bool, error)
}
