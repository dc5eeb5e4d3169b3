package labinfo

import (
	"time"

	"github.com/google/uuid"
)

// LabInfo is the lab's own letterhead data: a single row that reports
// and printed documents draw from.
type LabInfo struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Address   string    `db:"address" json:"address"`
	Phone     string    `db:"phone" json:"phone"`
	Email     string    `db:"email" json:"email"`
	Website   *string   `db:"website" json:"website"`
	Tagline   *string   `db:"tagline" json:"tagline"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}
