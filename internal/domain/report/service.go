package report

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/metacore/lims/internal/domain/patient"
	"github.com/metacore/lims/internal/domain/result"
	"github.com/metacore/lims/internal/platform/apperr"
	"github.com/metacore/lims/pkg/refrange"
)

// RecentLimit caps the dashboard's recent reports list.
const RecentLimit = 10

// PatientSource is the slice of the patient repository report
// composition needs.
type PatientSource interface {
	GetByID(ctx context.Context, id uuid.UUID) (*patient.Patient, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// ResultSource is the slice of the result repository report
// composition needs.
type ResultSource interface {
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*result.TestResult, error)
}

type Service struct {
	repo     Repository
	patients PatientSource
	results  ResultSource
}

func NewService(repo Repository, patients PatientSource, results ResultSource) *Service {
	return &Service{repo: repo, patients: patients, results: results}
}

// Generate composes the full report document for a patient from their
// stored results. Each line is annotated with a status; values that do
// not parse as numbers read as Normal.
func (s *Service) Generate(ctx context.Context, patientID uuid.UUID) (*Document, error) {
	p, err := s.patients.GetByID(ctx, patientID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Patient not found")
		}
		return nil, err
	}

	results, err := s.results.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}

	doc := &Document{
		PatientName:   p.FullName,
		PatientCode:   p.PatientCode,
		PatientAge:    p.Age,
		PatientGender: p.Gender,
		ContactNumber: p.ContactNumber,
		RefBy:         p.RefBy,
		Tests:         make([]Test, 0, len(results)),
	}
	for _, r := range results {
		doc.Tests = append(doc.Tests, Test{
			ID:          r.ID,
			Category:    r.Category,
			Subcategory: r.Subcategory,
			TestName:    r.TestName,
			Value:       r.Value,
			NormalRange: r.NormalRange,
			Unit:        r.Unit,
			TestDate:    r.TestDate,
			Notes:       r.Notes,
			Status:      classify(r.Value, r.NormalRange),
		})
	}
	return doc, nil
}

func classify(value string, normalRange *string) refrange.Status {
	if normalRange == nil {
		return refrange.Normal
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return refrange.Normal
	}
	return refrange.Classify(v, *normalRange)
}

// Track records that a report was generated for a patient.
func (s *Service) Track(ctx context.Context, patientID uuid.UUID) error {
	if patientID == uuid.Nil {
		return apperr.MissingField("patientId")
	}
	exists, err := s.patients.Exists(ctx, patientID)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.NotFound("Patient not found")
	}
	return s.repo.Create(ctx, &Entry{PatientID: patientID})
}

func (s *Service) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

func (s *Service) Recent(ctx context.Context) ([]*RecentEntry, error) {
	return s.repo.Recent(ctx, RecentLimit)
}
