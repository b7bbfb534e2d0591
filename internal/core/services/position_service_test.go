package services

import (
	"context"
	"errors"
	"testing"

	"hrdesk/internal/adapters/persistence/models"
	"hrdesk/internal/core/domain"

	"gorm.io/gorm"
)

// stubPositionRepo is an in-memory PositionRepository. DeleteGuarded
// honors the repository contract: not-found and dependent-count failures
// leave the stored position untouched.
type stubPositionRepo struct {
	positions  map[uint]*models.Position
	dependents map[uint]int64
	nextID     uint
}

func newStubPositionRepo() *stubPositionRepo {
	return &stubPositionRepo{
		positions:  make(map[uint]*models.Position),
		dependents: make(map[uint]int64),
		nextID:     1,
	}
}

func clonePosition(p *models.Position) *models.Position {
	if p == nil {
		return nil
	}
	clone := *p
	return &clone
}

func (r *stubPositionRepo) Create(_ context.Context, position *models.Position) error {
	if position.ID == 0 {
		position.ID = r.nextID
		r.nextID++
	}
	r.positions[position.ID] = clonePosition(position)
	return nil
}

func (r *stubPositionRepo) GetByID(_ context.Context, id uint) (*models.Position, error) {
	position, ok := r.positions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return clonePosition(position), nil
}

func (r *stubPositionRepo) GetByName(_ context.Context, name string) (*models.Position, error) {
	for _, position := range r.positions {
		if position.Name == name {
			return clonePosition(position), nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubPositionRepo) Update(_ context.Context, position *models.Position) error {
	if _, ok := r.positions[position.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.positions[position.ID] = clonePosition(position)
	return nil
}

func (r *stubPositionRepo) List(_ context.Context, offset, limit int) ([]*models.Position, int64, error) {
	all := make([]*models.Position, 0, len(r.positions))
	for _, position := range r.positions {
		all = append(all, clonePosition(position))
	}
	total := int64(len(all))
	if offset > len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (r *stubPositionRepo) DeleteGuarded(_ context.Context, id uint) error {
	if _, ok := r.positions[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	if r.dependents[id] > 0 {
		return domain.ErrPositionHasUsers
	}
	delete(r.positions, id)
	return nil
}

func seedPosition(t *testing.T, repo *stubPositionRepo, name string, active bool) *models.Position {
	t.Helper()
	position := &models.Position{Name: name, Active: active}
	if err := repo.Create(context.Background(), position); err != nil {
		t.Fatalf("seed position: %v", err)
	}
	return position
}

func TestDeletePositionWithoutDependents(t *testing.T) {
	repo := newStubPositionRepo()
	position := seedPosition(t, repo, "Intern", true)
	svc := NewPositionService(repo)

	if err := svc.DeletePosition(context.Background(), position.ID); err != nil {
		t.Fatalf("DeletePosition returned error: %v", err)
	}

	if _, err := svc.GetPositionByID(context.Background(), position.ID); !errors.Is(err, domain.ErrPositionNotFound) {
		t.Errorf("position still retrievable after delete: %v", err)
	}
}

func TestDeletePositionWithDependentsIsRefused(t *testing.T) {
	repo := newStubPositionRepo()
	position := seedPosition(t, repo, "Supervisor", true)
	repo.dependents[position.ID] = 3
	svc := NewPositionService(repo)

	err := svc.DeletePosition(context.Background(), position.ID)
	if !errors.Is(err, domain.ErrPositionHasUsers) {
		t.Fatalf("got %v, want ErrPositionHasUsers", err)
	}

	// The refused delete must leave the position fully intact.
	got, err := svc.GetPositionByID(context.Background(), position.ID)
	if err != nil {
		t.Fatalf("position vanished after refused delete: %v", err)
	}
	if got.Name != "Supervisor" || !got.Active {
		t.Errorf("position mutated by refused delete: %+v", got)
	}
}

func TestDeletePositionNotFound(t *testing.T) {
	svc := NewPositionService(newStubPositionRepo())

	if err := svc.DeletePosition(context.Background(), 404); !errors.Is(err, domain.ErrPositionNotFound) {
		t.Errorf("got %v, want ErrPositionNotFound", err)
	}
}

func TestCreatePositionDefaultsToActive(t *testing.T) {
	repo := newStubPositionRepo()
	svc := NewPositionService(repo)

	position, err := svc.CreatePosition(context.Background(), &CreatePositionInput{Name: "Analyst"})
	if err != nil {
		t.Fatalf("CreatePosition returned error: %v", err)
	}
	if !position.Active {
		t.Error("new positions default to active")
	}
}

func TestCreatePositionDuplicateName(t *testing.T) {
	repo := newStubPositionRepo()
	seedPosition(t, repo, "Analyst", true)
	svc := NewPositionService(repo)

	if _, err := svc.CreatePosition(context.Background(), &CreatePositionInput{Name: "Analyst"}); !errors.Is(err, domain.ErrPositionNameTaken) {
		t.Errorf("got %v, want ErrPositionNameTaken", err)
	}
}

func TestUpdatePositionRenameConflict(t *testing.T) {
	repo := newStubPositionRepo()
	seedPosition(t, repo, "Analyst", true)
	target := seedPosition(t, repo, "Clerk", true)
	svc := NewPositionService(repo)

	name := "Analyst"
	if _, err := svc.UpdatePosition(context.Background(), target.ID, &UpdatePositionInput{Name: &name}); !errors.Is(err, domain.ErrPositionNameTaken) {
		t.Errorf("got %v, want ErrPositionNameTaken", err)
	}
}

func TestUpdatePositionTogglesActive(t *testing.T) {
	repo := newStubPositionRepo()
	position := seedPosition(t, repo, "Clerk", true)
	svc := NewPositionService(repo)

	inactive := false
	updated, err := svc.UpdatePosition(context.Background(), position.ID, &UpdatePositionInput{Active: &inactive})
	if err != nil {
		t.Fatalf("UpdatePosition returned error: %v", err)
	}
	if updated.Active {
		t.Error("active flag was not cleared")
	}
}
