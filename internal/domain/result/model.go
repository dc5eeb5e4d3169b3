package result

import (
	"time"

	"github.com/google/uuid"
)

// TestResult is one recorded measurement for a patient. Value is kept
// as text because results can be qualitative ("Negative", "Trace") as
// well as numeric.
type TestResult struct {
	ID          uuid.UUID `db:"id" json:"id"`
	PatientID   uuid.UUID `db:"patient_id" json:"patientId"`
	Category    string    `db:"category" json:"category"`
	Subcategory string    `db:"subcategory" json:"subcategory"`
	TestName    string    `db:"test_name" json:"testName"`
	Value       string    `db:"value" json:"value"`
	NormalRange *string   `db:"normal_range" json:"normalRange"`
	Unit        *string   `db:"unit" json:"unit"`
	TestDate    time.Time `db:"test_date" json:"testDate"`
	Notes       *string   `db:"notes" json:"notes"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}

// ListedResult is a result joined with the identifying patient fields,
// the shape the results overview lists.
type ListedResult struct {
	TestResult
	PatientName string `db:"patient_name" json:"patientName"`
	PatientCode string `db:"patient_code" json:"patientCode"`
}

// BatchTest is one entry of a batch submission.
type BatchTest struct {
	TestName    string  `json:"testName"`
	Value       string  `json:"value"`
	NormalRange *string `json:"normalRange"`
	Unit        *string `json:"unit"`
}

// BatchInput is a batch of results recorded for one patient in one
// sitting. The whole batch is stored atomically.
type BatchInput struct {
	PatientID   uuid.UUID   `json:"patientId"`
	Category    string      `json:"category"`
	Subcategory string      `json:"subcategory"`
	TestDate    *time.Time  `json:"testDate"`
	Notes       *string     `json:"notes"`
	Tests       []BatchTest `json:"tests"`
}
