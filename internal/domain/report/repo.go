package report

import "context"

type Repository interface {
	Create(ctx context.Context, e *Entry) error
	Count(ctx context.Context) (int64, error)
	// Recent returns the latest audit rows with patient names, newest
	// first, at most limit rows.
	Recent(ctx context.Context, limit int) ([]*RecentEntry, error)
}
