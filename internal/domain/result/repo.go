package result

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	// ListJoined returns all results with the owning patient's name
	// and code, newest first.
	ListJoined(ctx context.Context) ([]*ListedResult, error)
	// ListByPatient returns one patient's results ordered by
	// category, subcategory, then newest first within a group.
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*TestResult, error)
	Create(ctx context.Context, r *TestResult) error
	Delete(ctx context.Context, id uuid.UUID) error
}
