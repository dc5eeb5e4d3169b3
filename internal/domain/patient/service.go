package patient

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/metacore/lims/internal/platform/apperr"
	"github.com/metacore/lims/internal/platform/db"
)

// CodePrefix and CodeDigits define the human-facing patient code
// format, e.g. PAT000042.
const (
	CodePrefix = "PAT"
	CodeDigits = 6
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]*Patient, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Patient, error) {
	p, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("Patient not found")
	}
	return p, err
}

func (s *Service) Create(ctx context.Context, p *Patient) error {
	switch {
	case p.FullName == "":
		return apperr.MissingField("fullName")
	case p.Age <= 0:
		return apperr.MissingField("age")
	case p.Gender == "":
		return apperr.MissingField("gender")
	case p.ContactNumber == "":
		return apperr.MissingField("contactNumber")
	case p.Email == "":
		return apperr.MissingField("email")
	case p.PatientCode == "":
		return apperr.MissingField("patientCode")
	case p.Address == "":
		return apperr.MissingField("address")
	}

	if err := s.repo.Create(ctx, p); err != nil {
		if db.IsUniqueViolation(err) {
			return apperr.Conflict("Patient code already exists")
		}
		return err
	}
	return nil
}

func (s *Service) Update(ctx context.Context, p *Patient) error {
	switch {
	case p.FullName == "":
		return apperr.MissingField("fullName")
	case p.Age <= 0:
		return apperr.MissingField("age")
	case p.Gender == "":
		return apperr.MissingField("gender")
	case p.ContactNumber == "":
		return apperr.MissingField("contactNumber")
	case p.Email == "":
		return apperr.MissingField("email")
	case p.Address == "":
		return apperr.MissingField("address")
	}

	if err := s.repo.Update(ctx, p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperr.NotFound("Patient not found")
		}
		return err
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperr.NotFound("Patient not found")
		}
		return err
	}
	return nil
}

// NextCode derives the next patient code from the most recently
// created patient: numeric suffix plus one, zero-padded. The first
// code ever issued is PAT000001.
func (s *Service) NextCode(ctx context.Context) (string, error) {
	next := 1
	latest, err := s.repo.LatestCode(ctx)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		// first patient
	case err != nil:
		return "", err
	default:
		n, err := strconv.Atoi(strings.TrimPrefix(latest, CodePrefix))
		if err != nil {
			return "", fmt.Errorf("malformed patient code %q: %w", latest, err)
		}
		next = n + 1
	}
	return fmt.Sprintf("%s%0*d", CodePrefix, CodeDigits, next), nil
}
