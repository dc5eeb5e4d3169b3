package patient

import (
	"time"

	"github.com/google/uuid"
)

// Patient maps to the patients table. Wire field names are camelCase
// regardless of the storage schema.
type Patient struct {
	ID            uuid.UUID `db:"id" json:"id"`
	FullName      string    `db:"full_name" json:"fullName"`
	Age           int       `db:"age" json:"age"`
	Gender        string    `db:"gender" json:"gender"`
	ContactNumber string    `db:"contact_number" json:"contactNumber"`
	Email         string    `db:"email" json:"email"`
	PatientCode   string    `db:"patient_code" json:"patientCode"`
	Address       string    `db:"address" json:"address"`
	RefBy         string    `db:"ref_by" json:"refBy"`
	CreatedAt     time.Time `db:"created_at" json:"createdAt"`
}
