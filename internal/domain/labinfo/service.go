package labinfo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/metacore/lims/internal/platform/apperr"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Get returns the lab info, or nil when none has been created yet.
// The handler renders nil as a JSON null so clients can distinguish
// "not set up" from an error.
func (s *Service) Get(ctx context.Context) (*LabInfo, error) {
	info, err := s.repo.Get(ctx)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return info, err
}

func validate(info *LabInfo) error {
	switch {
	case info.Name == "":
		return apperr.MissingField("name")
	case info.Address == "":
		return apperr.MissingField("address")
	case info.Phone == "":
		return apperr.MissingField("phone")
	case info.Email == "":
		return apperr.MissingField("email")
	}
	return nil
}

func (s *Service) Create(ctx context.Context, info *LabInfo) error {
	if err := validate(info); err != nil {
		return err
	}
	exists, err := s.repo.Exists(ctx)
	if err != nil {
		return err
	}
	if exists {
		return apperr.Conflict("Lab info already exists. Use PUT to update.")
	}
	return s.repo.Create(ctx, info)
}

func (s *Service) Update(ctx context.Context, info *LabInfo) error {
	if err := validate(info); err != nil {
		return err
	}
	if err := s.repo.Update(ctx, info); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperr.NotFound("No lab info found to update. Use POST to create.")
		}
		return err
	}
	return nil
}
