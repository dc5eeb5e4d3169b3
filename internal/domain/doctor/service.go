package doctor

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/metacore/lims/internal/platform/apperr"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]*Doctor, error) {
	return s.repo.List(ctx)
}

func (s *Service) Create(ctx context.Context, d *Doctor) error {
	if d.Name == "" {
		return apperr.MissingField("name")
	}
	return s.repo.Create(ctx, d)
}

func (s *Service) Update(ctx context.Context, d *Doctor) error {
	if d.Name == "" {
		return apperr.MissingField("name")
	}
	if err := s.repo.Update(ctx, d); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperr.NotFound("Doctor not found")
		}
		return err
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperr.NotFound("Doctor not found")
		}
		return err
	}
	return nil
}
