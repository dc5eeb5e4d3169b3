package catalog

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

const cols = `id, name, category, subcategory, price, reference_range, unit, created_at`

func scan(row pgx.Row) (*Entry, error) {
	var e Entry
	err := row.Scan(&e.ID, &e.Name, &e.Category, &e.Subcategory, &e.Price,
		&e.ReferenceRange, &e.Unit, &e.CreatedAt)
	return &e, err
}

func (r *repoPG) list(ctx context.Context, order string) ([]*Entry, error) {
	rows, err := r.conn(ctx).Query(ctx, `SELECT `+cols+` FROM test_catalog ORDER BY `+order)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []*Entry{}
	for rows.Next() {
		e, err := scan(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	return items, rows.Err()
}

func (r *repoPG) List(ctx context.Context) ([]*Entry, error) {
	return r.list(ctx, `created_at DESC`)
}

func (r *repoPG) ListGrouped(ctx context.Context) ([]*Entry, error) {
	return r.list(ctx, `category, subcategory, created_at`)
}

func (r *repoPG) Create(ctx context.Context, e *Entry) error {
	e.ID = uuid.New()
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO test_catalog (id, name, category, subcategory, price, reference_range, unit)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING created_at`,
		e.ID, e.Name, e.Category, e.Subcategory, e.Price, e.ReferenceRange, e.Unit).Scan(&e.CreatedAt)
}

func (r *repoPG) Update(ctx context.Context, e *Entry) error {
	tag, err := r.conn(ctx).Exec(ctx, `
		UPDATE test_catalog
		SET name=$2, category=$3, subcategory=$4, price=$5, reference_range=$6, unit=$7
		WHERE id = $1`,
		e.ID, e.Name, e.Category, e.Subcategory, e.Price, e.ReferenceRange, e.Unit)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.conn(ctx).Exec(ctx, `DELETE FROM test_catalog WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *repoPG) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.conn(ctx).QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM test_catalog WHERE name = $1)`, name).Scan(&exists)
	return exists, err
}
