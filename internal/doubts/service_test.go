package doubts

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/acarrillodev/wishtrack-backend/pkg/db/models"
	"github.com/acarrillodev/wishtrack-backend/pkg/enums"
	pkgerrors "github.com/acarrillodev/wishtrack-backend/pkg/errors"
)

type stubDoubtRepo struct {
	items []models.Doubt
}

func (s *stubDoubtRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]models.Doubt, error) {
	var out []models.Doubt
	for _, d := range s.items {
		if d.UserID == userID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (s *stubDoubtRepo) FindByID(_ context.Context, userID, id uuid.UUID) (*models.Doubt, error) {
	for i := range s.items {
		if s.items[i].UserID == userID && s.items[i].ID == id {
			return &s.items[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubDoubtRepo) Create(_ context.Context, doubt *models.Doubt) (*models.Doubt, error) {
	doubt.ID = uuid.New()
	next := 1
	for _, d := range s.items {
		if d.UserID == doubt.UserID && d.Position >= next {
			next = d.Position + 1
		}
	}
	doubt.Position = next
	s.items = append(s.items, *doubt)
	return doubt, nil
}

func (s *stubDoubtRepo) Update(_ context.Context, userID, id uuid.UUID, updates map[string]any) (*models.Doubt, error) {
	for i := range s.items {
		d := &s.items[i]
		if d.UserID != userID || d.ID != id {
			continue
		}
		if name, ok := updates["name"].(string); ok {
			d.Name = name
		}
		return d, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubDoubtRepo) Resolve(_ context.Context, userID, id uuid.UUID, decision enums.DoubtDecision, at time.Time) (*models.Doubt, error) {
	for i := range s.items {
		d := &s.items[i]
		if d.UserID != userID || d.ID != id || d.Decision != nil {
			continue
		}
		d.Decision = &decision
		d.ResolvedAt = &at
		return d, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubDoubtRepo) Delete(_ context.Context, userID, id uuid.UUID) error {
	for i := range s.items {
		if s.items[i].UserID == userID && s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func buildDoubtService(t *testing.T, repo *stubDoubtRepo) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{DoubtRepo: repo})
	if err != nil {
		t.Fatalf("build service: %v", err)
	}
	return svc
}

func TestCreateDoubtSequences(t *testing.T) {
	userID := uuid.New()
	repo := &stubDoubtRepo{}
	svc := buildDoubtService(t, repo)

	first, err := svc.CreateDoubt(context.Background(), userID, CreateDoubtRequest{Name: "New phone"})
	if err != nil {
		t.Fatalf("create first: %v", err)
	}
	second, err := svc.CreateDoubt(context.Background(), userID, CreateDoubtRequest{Name: "Standing desk"})
	if err != nil {
		t.Fatalf("create second: %v", err)
	}
	if first.Order != 1 || second.Order != 2 {
		t.Fatalf("expected sequential orders, got %d then %d", first.Order, second.Order)
	}
}

func TestResolveDoubtSetsDecisionOnce(t *testing.T) {
	userID := uuid.New()
	doubtID := uuid.New()
	repo := &stubDoubtRepo{items: []models.Doubt{{ID: doubtID, Name: "New phone", Position: 1, UserID: userID}}}
	svc := buildDoubtService(t, repo)

	resolved, err := svc.ResolveDoubt(context.Background(), userID, doubtID, ResolveDoubtRequest{Decision: enums.DoubtDecisionBought})
	if err != nil {
		t.Fatalf("resolve doubt: %v", err)
	}
	if resolved.Decision == nil || *resolved.Decision != enums.DoubtDecisionBought {
		t.Fatalf("expected bought decision, got %v", resolved.Decision)
	}
	if resolved.ResolvedAt == nil {
		t.Fatalf("expected resolved timestamp")
	}

	_, err = svc.ResolveDoubt(context.Background(), userID, doubtID, ResolveDoubtRequest{Decision: enums.DoubtDecisionDismissed})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict on second resolve, got %v", err)
	}
}

func TestResolveDoubtInvalidDecision(t *testing.T) {
	svc := buildDoubtService(t, &stubDoubtRepo{})

	_, err := svc.ResolveDoubt(context.Background(), uuid.New(), uuid.New(), ResolveDoubtRequest{Decision: enums.DoubtDecision("maybe")})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUpdateDoubtScopesToOwner(t *testing.T) {
	owner := uuid.New()
	doubtID := uuid.New()
	repo := &stubDoubtRepo{items: []models.Doubt{{ID: doubtID, Name: "New phone", Position: 1, UserID: owner}}}
	svc := buildDoubtService(t, repo)

	name := "Newer phone"
	_, err := svc.UpdateDoubt(context.Background(), uuid.New(), doubtID, UpdateDoubtRequest{Name: &name})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found for foreign user, got %v", err)
	}

	updated, err := svc.UpdateDoubt(context.Background(), owner, doubtID, UpdateDoubtRequest{Name: &name})
	if err != nil {
		t.Fatalf("update doubt: %v", err)
	}
	if updated.Name != "Newer phone" {
		t.Fatalf("expected renamed doubt, got %q", updated.Name)
	}
}
