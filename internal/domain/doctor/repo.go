package doctor

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	// List returns all referring doctors ordered by name.
	List(ctx context.Context) ([]*Doctor, error)
	Create(ctx context.Context, d *Doctor) error
	Update(ctx context.Context, d *Doctor) error
	Delete(ctx context.Context, id uuid.UUID) error
}
