package result

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/metacore/lims/internal/platform/apperr"
	"github.com/metacore/lims/internal/platform/db"
)

// PatientChecker is the slice of the patient repository the result
// service needs: existence checks before accepting a batch.
type PatientChecker interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type Service struct {
	repo     Repository
	patients PatientChecker
	pool     *pgxpool.Pool
}

// NewService builds the result service. A nil pool skips transaction
// wrapping, which mock-backed tests rely on.
func NewService(repo Repository, patients PatientChecker, pool *pgxpool.Pool) *Service {
	return &Service{repo: repo, patients: patients, pool: pool}
}

func (s *Service) inTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.pool == nil {
		return fn(ctx)
	}
	return db.WithTx(ctx, s.pool, fn)
}

func (s *Service) List(ctx context.Context) ([]*ListedResult, error) {
	return s.repo.ListJoined(ctx)
}

func (s *Service) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*TestResult, error) {
	return s.repo.ListByPatient(ctx, patientID)
}

// CreateBatch stores every test of the batch or none of them.
func (s *Service) CreateBatch(ctx context.Context, in *BatchInput) error {
	switch {
	case in.PatientID == uuid.Nil:
		return apperr.MissingField("patientId")
	case in.Category == "":
		return apperr.MissingField("category")
	case in.Subcategory == "":
		return apperr.MissingField("subcategory")
	case len(in.Tests) == 0:
		return apperr.MissingField("tests")
	}
	for _, t := range in.Tests {
		if t.TestName == "" {
			return apperr.MissingField("testName")
		}
		if t.Value == "" {
			return apperr.MissingField("value")
		}
	}

	exists, err := s.patients.Exists(ctx, in.PatientID)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.NotFound("Patient not found")
	}

	testDate := time.Now()
	if in.TestDate != nil {
		testDate = *in.TestDate
	}

	return s.inTx(ctx, func(ctx context.Context) error {
		for _, t := range in.Tests {
			r := &TestResult{
				PatientID:   in.PatientID,
				Category:    in.Category,
				Subcategory: in.Subcategory,
				TestName:    t.TestName,
				Value:       t.Value,
				NormalRange: t.NormalRange,
				Unit:        t.Unit,
				TestDate:    testDate,
				Notes:       in.Notes,
			}
			if err := s.repo.Create(ctx, r); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperr.NotFound("Test result not found")
		}
		return err
	}
	return nil
}
