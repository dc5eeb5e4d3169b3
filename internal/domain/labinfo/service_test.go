package labinfo

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/metacore/lims/internal/platform/apperr"
)

// -- Mock Repository --

type mockRepo struct {
	info *LabInfo
}

func (m *mockRepo) Get(_ context.Context) (*LabInfo, error) {
	if m.info == nil {
		return nil, pgx.ErrNoRows
	}
	return m.info, nil
}

func (m *mockRepo) Exists(_ context.Context) (bool, error) {
	return m.info != nil, nil
}

func (m *mockRepo) Create(_ context.Context, info *LabInfo) error {
	info.ID = uuid.New()
	info.UpdatedAt = time.Now()
	m.info = info
	return nil
}

func (m *mockRepo) Update(_ context.Context, info *LabInfo) error {
	if m.info == nil {
		return pgx.ErrNoRows
	}
	info.ID = m.info.ID
	info.UpdatedAt = time.Now()
	m.info = info
	return nil
}

func validInfo() *LabInfo {
	return &LabInfo{
		Name:    "Metacore Diagnostics",
		Address: "45 MG Road",
		Phone:   "080-12345678",
		Email:   "lab@metacore.com",
	}
}

// -- Tests --

func TestService_Get_BeforeSetup(t *testing.T) {
	svc := NewService(&mockRepo{})
	info, err := svc.Get(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info != nil {
		t.Errorf("expected nil before setup, got %+v", info)
	}
}

func TestService_Create_ThenGet(t *testing.T) {
	svc := NewService(&mockRepo{})
	ctx := context.Background()

	if err := svc.Create(ctx, validInfo()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	info, err := svc.Get(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info == nil || info.Name != "Metacore Diagnostics" {
		t.Errorf("round-trip mismatch: %+v", info)
	}
}

func TestService_Create_SecondConflicts(t *testing.T) {
	svc := NewService(&mockRepo{})
	ctx := context.Background()

	if err := svc.Create(ctx, validInfo()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := svc.Create(ctx, validInfo())
	if apperr.KindOf(err) != apperr.KindConflict {
		t.Fatalf("expected conflict, got %v", err)
	}
	if err.Error() != "Lab info already exists. Use PUT to update." {
		t.Errorf("unexpected message: %s", err.Error())
	}
}

func TestService_Update_BeforeCreate(t *testing.T) {
	svc := NewService(&mockRepo{})
	err := svc.Update(context.Background(), validInfo())
	if apperr.KindOf(err) != apperr.KindNotFound {
		t.Fatalf("expected not-found, got %v", err)
	}
	if err.Error() != "No lab info found to update. Use POST to create." {
		t.Errorf("unexpected message: %s", err.Error())
	}
}

func TestService_Create_RequiredFields(t *testing.T) {
	svc := NewService(&mockRepo{})
	info := validInfo()
	info.Phone = ""
	err := svc.Create(context.Background(), info)
	if apperr.KindOf(err) != apperr.KindValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	if err.Error() != "Missing required field: phone" {
		t.Errorf("unexpected message: %s", err.Error())
	}
}
