package account

import (
	"time"

	"github.com/google/uuid"
)

// Account is a staff login. The deployment runs with a single admin
// role; the column exists so further roles can be added without a
// schema change.
type Account struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	FullName     string    `db:"full_name" json:"fullName"`
	Phone        string    `db:"phone" json:"phone"`
	Role         string    `db:"role" json:"role"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}

// RoleAdmin is the only role issued today.
const RoleAdmin = "admin"

// LoginResult is the login response payload.
type LoginResult struct {
	Token string `json:"token"`
	Email string `json:"email"`
}
