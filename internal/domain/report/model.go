package report

import (
	"time"

	"github.com/google/uuid"

	"github.com/metacore/lims/pkg/refrange"
)

// Entry is one audit row recording that a report was generated for a
// patient. The report document itself is composed on demand and never
// stored. The timestamp reads as generatedAt on the wire.
type Entry struct {
	ID        uuid.UUID `db:"id" json:"id"`
	PatientID uuid.UUID `db:"patient_id" json:"patientId"`
	CreatedAt time.Time `db:"created_at" json:"generatedAt"`
}

// RecentEntry is an audit row joined with the patient it belongs to.
type RecentEntry struct {
	Entry
	PatientName string `db:"patient_name" json:"patientName"`
	PatientCode string `db:"patient_code" json:"patientCode"`
}

// Test is one result line of a composed report, annotated with its
// status relative to the recorded reference range.
type Test struct {
	ID          uuid.UUID       `json:"id"`
	Category    string          `json:"category"`
	Subcategory string          `json:"subcategory"`
	TestName    string          `json:"testName"`
	Value       string          `json:"value"`
	NormalRange *string         `json:"normalRange"`
	Unit        *string         `json:"unit"`
	TestDate    time.Time       `json:"testDate"`
	Notes       *string         `json:"notes"`
	Status      refrange.Status `json:"status"`
}

// Document is a full patient report: identifying fields plus every
// recorded result, grouped by the repository's category ordering.
type Document struct {
	PatientName   string `json:"patientName"`
	PatientCode   string `json:"patientCode"`
	PatientAge    int    `json:"patientAge"`
	PatientGender string `json:"patientGender"`
	ContactNumber string `json:"contactNumber"`
	RefBy         string `json:"refBy"`
	Tests         []Test `json:"tests"`
}
