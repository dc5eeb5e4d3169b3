package account

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	GetByEmail(ctx context.Context, email string) (*Account, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Account, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, a *Account) error
	// UpdateProfile writes the editable profile fields. An empty role
	// leaves the stored role untouched.
	UpdateProfile(ctx context.Context, id uuid.UUID, fullName, phone, role string) error
	UpdateEmail(ctx context.Context, id uuid.UUID, email string) error
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	// ExistsByEmail reports whether another account than excludeID
	// already uses the email.
	ExistsByEmail(ctx context.Context, email string, excludeID uuid.UUID) (bool, error)
}
