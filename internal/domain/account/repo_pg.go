package account

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

const cols = `id, email, password_hash, full_name, phone, role, created_at`

func scan(row pgx.Row) (*Account, error) {
	var a Account
	err := row.Scan(&a.ID, &a.Email, &a.PasswordHash, &a.FullName, &a.Phone, &a.Role, &a.CreatedAt)
	return &a, err
}

func (r *repoPG) GetByEmail(ctx context.Context, email string) (*Account, error) {
	return scan(r.conn(ctx).QueryRow(ctx, `SELECT `+cols+` FROM users WHERE email = $1`, email))
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Account, error) {
	return scan(r.conn(ctx).QueryRow(ctx, `SELECT `+cols+` FROM users WHERE id = $1`, id))
}

func (r *repoPG) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&n)
	return n, err
}

func (r *repoPG) Create(ctx context.Context, a *Account) error {
	a.ID = uuid.New()
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO users (id, email, password_hash, full_name, phone, role)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING created_at`,
		a.ID, a.Email, a.PasswordHash, a.FullName, a.Phone, a.Role).Scan(&a.CreatedAt)
}

func (r *repoPG) exec(ctx context.Context, sql string, args ...interface{}) error {
	tag, err := r.conn(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *repoPG) UpdateProfile(ctx context.Context, id uuid.UUID, fullName, phone, role string) error {
	return r.exec(ctx, `
		UPDATE users
		SET full_name=$2, phone=$3, role = COALESCE(NULLIF($4, ''), role)
		WHERE id = $1`, id, fullName, phone, role)
}

func (r *repoPG) UpdateEmail(ctx context.Context, id uuid.UUID, email string) error {
	return r.exec(ctx, `UPDATE users SET email=$2 WHERE id = $1`, id, email)
}

func (r *repoPG) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	return r.exec(ctx, `UPDATE users SET password_hash=$2 WHERE id = $1`, id, passwordHash)
}

func (r *repoPG) ExistsByEmail(ctx context.Context, email string, excludeID uuid.UUID) (bool, error) {
	var exists bool
	err := r.conn(ctx).QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE email = $1 AND id <> $2)`,
		email, excludeID).Scan(&exists)
	return exists, err
}
