package account

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/metacore/lims/internal/platform/apperr"
	"github.com/metacore/lims/internal/platform/auth"
	"github.com/metacore/lims/internal/platform/db"
)

type Service struct {
	repo   Repository
	signer *auth.Signer
	pool   *pgxpool.Pool
	log    zerolog.Logger
}

// NewService builds the account service. A nil pool skips transaction
// wrapping, which mock-backed tests rely on.
func NewService(repo Repository, signer *auth.Signer, pool *pgxpool.Pool, log zerolog.Logger) *Service {
	return &Service{repo: repo, signer: signer, pool: pool, log: log}
}

func (s *Service) inTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.pool == nil {
		return fn(ctx)
	}
	return db.WithTx(ctx, s.pool, fn)
}

// normalizeEmail folds an address to the canonical stored form. Every
// write and lookup goes through this so a mixed-case configured or
// submitted address still matches.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Bootstrap creates the initial admin account when the users table is
// empty. Reruns are no-ops, so it is safe to call on every startup.
func (s *Service) Bootstrap(ctx context.Context, email, password string) error {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	a := &Account{Email: normalizeEmail(email), PasswordHash: hash, FullName: "Administrator", Role: RoleAdmin}
	if err := s.repo.Create(ctx, a); err != nil {
		return err
	}
	s.log.Info().Str("email", email).Msg("bootstrapped admin account")
	return nil
}

func (s *Service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	switch {
	case email == "":
		return nil, apperr.MissingField("email")
	case password == "":
		return nil, apperr.MissingField("password")
	}

	a, err := s.repo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.Auth("Invalid email address")
		}
		return nil, err
	}
	if !auth.CheckPassword(a.PasswordHash, password) {
		return nil, apperr.Auth("Invalid password")
	}

	token, err := s.signer.Issue(a.ID, a.Email)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, Email: a.Email}, nil
}

func (s *Service) Profile(ctx context.Context, id uuid.UUID) (*Account, error) {
	a, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("Account not found")
	}
	return a, err
}

// UpdateProfile writes the editable profile fields and returns the
// refreshed account. An empty role keeps the current one.
func (s *Service) UpdateProfile(ctx context.Context, id uuid.UUID, fullName, phone, role string) (*Account, error) {
	if fullName == "" {
		return nil, apperr.MissingField("fullName")
	}
	if err := s.repo.UpdateProfile(ctx, id, fullName, phone, role); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Account not found")
		}
		return nil, err
	}
	return s.Profile(ctx, id)
}

// verify loads the account and checks the supplied current password,
// the gate in front of every credential change.
func (s *Service) verify(ctx context.Context, id uuid.UUID, currentPassword string) (*Account, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Account not found")
		}
		return nil, err
	}
	if !auth.CheckPassword(a.PasswordHash, currentPassword) {
		return nil, apperr.Auth("Current password is incorrect")
	}
	return a, nil
}

func (s *Service) ChangeEmail(ctx context.Context, id uuid.UUID, currentPassword, newEmail string) error {
	switch {
	case newEmail == "":
		return apperr.MissingField("newEmail")
	case currentPassword == "":
		return apperr.MissingField("currentPassword")
	}
	newEmail = normalizeEmail(newEmail)
	if !strings.Contains(newEmail, "@") {
		return apperr.Validation("Invalid email address")
	}

	if _, err := s.verify(ctx, id, currentPassword); err != nil {
		return err
	}
	taken, err := s.repo.ExistsByEmail(ctx, newEmail, id)
	if err != nil {
		return err
	}
	if taken {
		return apperr.Conflict("Email already in use")
	}
	return s.repo.UpdateEmail(ctx, id, newEmail)
}

func (s *Service) ChangePassword(ctx context.Context, id uuid.UUID, currentPassword, newPassword string) error {
	switch {
	case newPassword == "":
		return apperr.MissingField("newPassword")
	case currentPassword == "":
		return apperr.MissingField("currentPassword")
	}

	if _, err := s.verify(ctx, id, currentPassword); err != nil {
		return err
	}
	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.repo.UpdatePassword(ctx, id, hash)
}

// UpdateCredentials replaces both email and password in one call, the
// admin recovery path. The current password is still required.
func (s *Service) UpdateCredentials(ctx context.Context, id uuid.UUID, currentPassword, email, password string) error {
	switch {
	case email == "":
		return apperr.MissingField("email")
	case password == "":
		return apperr.MissingField("password")
	case currentPassword == "":
		return apperr.MissingField("currentPassword")
	}
	email = normalizeEmail(email)

	if _, err := s.verify(ctx, id, currentPassword); err != nil {
		return err
	}
	taken, err := s.repo.ExistsByEmail(ctx, email, id)
	if err != nil {
		return err
	}
	if taken {
		return apperr.Conflict("Email already in use")
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	return s.inTx(ctx, func(ctx context.Context) error {
		if err := s.repo.UpdateEmail(ctx, id, email); err != nil {
			return err
		}
		return s.repo.UpdatePassword(ctx, id, hash)
	})
}
