package catalog

import (
	"time"

	"github.com/google/uuid"
)

// Entry maps to the test_catalog table: a definable, orderable test
// type, distinct from a recorded result. The reference range is
// free text authored by lab staff.
type Entry struct {
	ID             uuid.UUID `db:"id" json:"id"`
	Name           string    `db:"name" json:"name"`
	Category       string    `db:"category" json:"category"`
	Subcategory    string    `db:"subcategory" json:"subcategory"`
	Price          *float64  `db:"price" json:"price"`
	ReferenceRange *string   `db:"reference_range" json:"referenceRange"`
	Unit           *string   `db:"unit" json:"unit"`
	CreatedAt      time.Time `db:"created_at" json:"createdAt"`
}

// GroupedTest is the per-test shape inside the grouped category view.
type GroupedTest struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	ReferenceRange *string   `json:"referenceRange"`
	Unit           *string   `json:"unit"`
	Price          *float64  `json:"price"`
}

// SubcategoryGroup collects the tests of one subcategory.
type SubcategoryGroup struct {
	Subcategory string        `json:"subcategory"`
	Tests       []GroupedTest `json:"tests"`
}

// CategoryGroup is the top level of the grouped view: category ->
// subcategories -> tests. It is a pure reshaping of the flat catalog,
// never stored.
type CategoryGroup struct {
	Category      string             `json:"category"`
	Subcategories []SubcategoryGroup `json:"subcategories"`
}
