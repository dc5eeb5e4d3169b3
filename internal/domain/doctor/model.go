package doctor

import (
	"time"

	"github.com/google/uuid"
)

// Doctor is a referring doctor patients can be attributed to.
type Doctor struct {
	ID             uuid.UUID `db:"id" json:"id"`
	Name           string    `db:"name" json:"name"`
	Specialization *string   `db:"specialization" json:"specialization"`
	Phone          *string   `db:"phone" json:"phone"`
	CreatedAt      time.Time `db:"created_at" json:"createdAt"`
}
