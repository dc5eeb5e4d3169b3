package report

import (
	"context"

	"github.com/google/uuid"
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

func (r *repoPG) Create(ctx context.Context, e *Entry) error {
	e.ID = uuid.New()
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO reports (id, patient_id)
		VALUES ($1, $2)
		RETURNING created_at`,
		e.ID, e.PatientID).Scan(&e.CreatedAt)
}

func (r *repoPG) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM reports`).Scan(&n)
	return n, err
}

func (r *repoPG) Recent(ctx context.Context, limit int) ([]*RecentEntry, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT r.id, r.patient_id, r.created_at, p.full_name, p.patient_code
		FROM reports r
		JOIN patients p ON p.id = r.patient_id
		ORDER BY r.created_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []*RecentEntry{}
	for rows.Next() {
		var e RecentEntry
		if err := rows.Scan(&e.ID, &e.PatientID, &e.CreatedAt, &e.PatientName, &e.PatientCode); err != nil {
			return nil, err
		}
		items = append(items, &e)
	}
	return items, rows.Err()
}
