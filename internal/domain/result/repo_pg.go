package result

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/metacore/lims/internal/platform/db"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

func (r *repoPG) conn(ctx context.Context) db.Querier {
	if q := db.QuerierFromContext(ctx); q != nil {
		return q
	}
	return r.pool
}

const cols = `id, patient_id, category, subcategory, test_name, value, normal_range, unit, test_date, notes, created_at`

func scan(row pgx.Row) (*TestResult, error) {
	var t TestResult
	err := row.Scan(&t.ID, &t.PatientID, &t.Category, &t.Subcategory, &t.TestName,
		&t.Value, &t.NormalRange, &t.Unit, &t.TestDate, &t.Notes, &t.CreatedAt)
	return &t, err
}

func (r *repoPG) ListJoined(ctx context.Context) ([]*ListedResult, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT t.id, t.patient_id, t.category, t.subcategory, t.test_name,
		       t.value, t.normal_range, t.unit, t.test_date, t.notes, t.created_at,
		       p.full_name, p.patient_code
		FROM tests t
		JOIN patients p ON p.id = t.patient_id
		ORDER BY t.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []*ListedResult{}
	for rows.Next() {
		var l ListedResult
		if err := rows.Scan(&l.ID, &l.PatientID, &l.Category, &l.Subcategory, &l.TestName,
			&l.Value, &l.NormalRange, &l.Unit, &l.TestDate, &l.Notes, &l.CreatedAt,
			&l.PatientName, &l.PatientCode); err != nil {
			return nil, err
		}
		items = append(items, &l)
	}
	return items, rows.Err()
}

func (r *repoPG) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*TestResult, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT `+cols+` FROM tests
		WHERE patient_id = $1
		ORDER BY category, subcategory, created_at DESC`, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []*TestResult{}
	for rows.Next() {
		t, err := scan(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, t)
	}
	return items, rows.Err()
}

func (r *repoPG) Create(ctx context.Context, t *TestResult) error {
	t.ID = uuid.New()
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO tests (id, patient_id, category, subcategory, test_name, value, normal_range, unit, test_date, notes)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		RETURNING created_at`,
		t.ID, t.PatientID, t.Category, t.Subcategory, t.TestName, t.Value,
		t.NormalRange, t.Unit, t.TestDate, t.Notes).Scan(&t.CreatedAt)
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.conn(ctx).Exec(ctx, `DELETE FROM tests WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
