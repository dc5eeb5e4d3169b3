package catalog

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

func (s *Service) List(ctx context.Context) ([]*Entry, error) {
	return s.repo.List(ctx)
}

func validate(e *Entry) error {
	switch {
	case e.Name == "":
		return apperr.MissingField("name")
	case e.Category == "":
		return apperr.MissingField("category")
	case e.Subcategory == "":
		return apperr.MissingField("subcategory")
	}
	return nil
}

func (s *Service) Create(ctx context.Context, e *Entry) error {
	if err := validate(e); err != nil {
		return err
	}
	return s.repo.Create(ctx, e)
}

func (s *Service) Update(ctx context.Context, e *Entry) error {
	if err := validate(e); err != nil {
		return err
	}
	if err := s.repo.Update(ctx, e); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperr.NotFound("Test not found")
		}
		return err
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperr.NotFound("Test not found")
		}
		return err
	}
	return nil
}

// Grouped reshapes the flat catalog into category -> subcategory ->
// tests, preserving the ordered-scan group order.
func (s *Service) Grouped(ctx context.Context) ([]*CategoryGroup, error) {
	entries, err := s.repo.ListGrouped(ctx)
	if err != nil {
		return nil, err
	}

	groups := []*CategoryGroup{}
	byCategory := map[string]*CategoryGroup{}
	for _, e := range entries {
		cg, ok := byCategory[e.Category]
		if !ok {
			cg = &CategoryGroup{Category: e.Category}
			byCategory[e.Category] = cg
			groups = append(groups, cg)
		}

		test := GroupedTest{
			ID:             e.ID,
			Name:           e.Name,
			ReferenceRange: e.ReferenceRange,
			Unit:           e.Unit,
			Price:          e.Price,
		}

		n := len(cg.Subcategories)
		if n > 0 && cg.Subcategories[n-1].Subcategory == e.Subcategory {
			cg.Subcategories[n-1].Tests = append(cg.Subcategories[n-1].Tests, test)
			continue
		}
		cg.Subcategories = append(cg.Subcategories, SubcategoryGroup{
			Subcategory: e.Subcategory,
			Tests:       []GroupedTest{test},
		})
	}
	return groups, nil
}

// Seed inserts the stock test menu, skipping entries whose name is
// already present so reruns are idempotent.
func (s *Service) Seed(ctx context.Context) (int, error) {
	count := 0
	for _, e := range SeedEntries() {
		exists, err := s.repo.ExistsByName(ctx, e.Name)
		if err != nil {
			return count, err
		}
		if exists {
			continue
		}
		entry := e
		if err := s.repo.Create(ctx, &entry); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}
