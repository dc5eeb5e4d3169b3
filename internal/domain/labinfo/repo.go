package labinfo

import "context"

type Repository interface {
	// Get returns the singleton row, or pgx.ErrNoRows before it is
	// first created.
	Get(ctx context.Context) (*LabInfo, error)
	Exists(ctx context.Context) (bool, error)
	Create(ctx context.Context, info *LabInfo) error
	Update(ctx context.Context, info *LabInfo) error
}
