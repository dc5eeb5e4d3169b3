package labinfo

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

const cols = `id, name, address, phone, email, website, tagline, updated_at`

func (r *repoPG) Get(ctx context.Context) (*LabInfo, error) {
	var info LabInfo
	err := r.conn(ctx).QueryRow(ctx, `SELECT `+cols+` FROM lab_info LIMIT 1`).Scan(
		&info.ID, &info.Name, &info.Address, &info.Phone, &info.Email,
		&info.Website, &info.Tagline, &info.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &info, nil
}

func (r *repoPG) Exists(ctx context.Context) (bool, error) {
	var exists bool
	err := r.conn(ctx).QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM lab_info)`).Scan(&exists)
	return exists, err
}

func (r *repoPG) Create(ctx context.Context, info *LabInfo) error {
	info.ID = uuid.New()
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO lab_info (id, name, address, phone, email, website, tagline)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING updated_at`,
		info.ID, info.Name, info.Address, info.Phone, info.Email,
		info.Website, info.Tagline).Scan(&info.UpdatedAt)
}

func (r *repoPG) Update(ctx context.Context, info *LabInfo) error {
	// single-row table: the update targets whatever row exists
	tag, err := r.conn(ctx).Exec(ctx, `
		UPDATE lab_info
		SET name=$1, address=$2, phone=$3, email=$4, website=$5, tagline=$6, updated_at=NOW()`,
		info.Name, info.Address, info.Phone, info.Email, info.Website, info.Tagline)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
