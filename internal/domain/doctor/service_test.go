package doctor

import (
	"context"
	"sort"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/metacore/lims/internal/platform/apperr"
)

// -- Mock Repository --

type mockRepo struct {
	doctors map[uuid.UUID]*Doctor
}

func newMockRepo() *mockRepo {
	return &mockRepo{doctors: make(map[uuid.UUID]*Doctor)}
}

func (m *mockRepo) List(_ context.Context) ([]*Doctor, error) {
	items := make([]*Doctor, 0, len(m.doctors))
	for _, d := range m.doctors {
		items = append(items, d)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items, nil
}

func (m *mockRepo) Create(_ context.Context, d *Doctor) error {
	d.ID = uuid.New()
	m.doctors[d.ID] = d
	return nil
}

func (m *mockRepo) Update(_ context.Context, d *Doctor) error {
	if _, ok := m.doctors[d.ID]; !ok {
		return pgx.ErrNoRows
	}
	m.doctors[d.ID] = d
	return nil
}

func (m *mockRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.doctors[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(m.doctors, id)
	return nil
}

// -- Tests --

func TestService_Create_NameRequired(t *testing.T) {
	svc := NewService(newMockRepo())
	err := svc.Create(context.Background(), &Doctor{})
	if apperr.KindOf(err) != apperr.KindValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	if err.Error() != "Missing required field: name" {
		t.Errorf("unexpected message: %s", err.Error())
	}
}

func TestService_List_ByName(t *testing.T) {
	svc := NewService(newMockRepo())
	ctx := context.Background()

	for _, name := range []string{"Dr. Rao", "Dr. Anand", "Dr. Mehta"} {
		if err := svc.Create(ctx, &Doctor{Name: name}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	list, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 3 || list[0].Name != "Dr. Anand" || list[2].Name != "Dr. Rao" {
		t.Errorf("expected name order, got %+v", list)
	}
}

func TestService_Update_NotFound(t *testing.T) {
	svc := NewService(newMockRepo())
	err := svc.Update(context.Background(), &Doctor{ID: uuid.New(), Name: "Dr. Rao"})
	if apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("expected not-found, got %v", err)
	}
}

func TestService_Delete_NotFound(t *testing.T) {
	svc := NewService(newMockRepo())
	err := svc.Delete(context.Background(), uuid.New())
	if apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("expected not-found, got %v", err)
	}
}
