package groups

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/acarrillodev/wishtrack-backend/pkg/db/models"
	"github.com/acarrillodev/wishtrack-backend/pkg/enums"
	pkgerrors "github.com/acarrillodev/wishtrack-backend/pkg/errors"
)

type stubGroupRepo struct {
	items     []models.Group
	createErr error
}

func (s *stubGroupRepo) ListByUser(_ context.Context, userID uuid.UUID, groupType *enums.GroupType) ([]models.Group, error) {
	var out []models.Group
	for _, g := range s.items {
		if g.UserID != userID {
			continue
		}
		if groupType != nil && g.Type != *groupType {
			continue
		}
		out = append(out, g)
	}
	return out, nil
}

func (s *stubGroupRepo) Create(_ context.Context, userID uuid.UUID, name string, groupType enums.GroupType) (*models.Group, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	next := 1
	for _, g := range s.items {
		if g.UserID == userID && g.Type == groupType && g.Position >= next {
			next = g.Position + 1
		}
	}
	group := models.Group{
		ID:       uuid.New(),
		Name:     name,
		Type:     groupType,
		Position: next,
		UserID:   userID,
	}
	s.items = append(s.items, group)
	return &group, nil
}

func (s *stubGroupRepo) UpdateName(_ context.Context, userID, id uuid.UUID, name string) (*models.Group, error) {
	for i := range s.items {
		if s.items[i].UserID == userID && s.items[i].ID == id {
			s.items[i].Name = name
			return &s.items[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubGroupRepo) Delete(_ context.Context, userID, id uuid.UUID) error {
	for i := range s.items {
		if s.items[i].UserID == userID && s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func buildGroupService(t *testing.T, repo *stubGroupRepo) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{GroupRepo: repo})
	if err != nil {
		t.Fatalf("build service: %v", err)
	}
	return svc
}

func TestCreateGroupAppendsToTypePartition(t *testing.T) {
	userID := uuid.New()
	repo := &stubGroupRepo{}
	svc := buildGroupService(t, repo)

	first, err := svc.CreateGroup(context.Background(), userID, CreateGroupRequest{Name: "Tech", Type: enums.GroupTypeWish})
	if err != nil {
		t.Fatalf("create first: %v", err)
	}
	second, err := svc.CreateGroup(context.Background(), userID, CreateGroupRequest{Name: "Books", Type: enums.GroupTypeWish})
	if err != nil {
		t.Fatalf("create second: %v", err)
	}
	gift, err := svc.CreateGroup(context.Background(), userID, CreateGroupRequest{Name: "Family", Type: enums.GroupTypeGift})
	if err != nil {
		t.Fatalf("create gift group: %v", err)
	}

	if first.Order != 1 || second.Order != 2 {
		t.Fatalf("expected sequential orders, got %d then %d", first.Order, second.Order)
	}
	if gift.Order != 1 {
		t.Fatalf("gift partition should restart at 1, got %d", gift.Order)
	}
}

func TestCreateGroupRejectsInvalidType(t *testing.T) {
	svc := buildGroupService(t, &stubGroupRepo{})

	_, err := svc.CreateGroup(context.Background(), uuid.New(), CreateGroupRequest{Name: "Tech", Type: enums.GroupType("other")})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestListGroupsFiltersByType(t *testing.T) {
	userID := uuid.New()
	repo := &stubGroupRepo{items: []models.Group{
		{ID: uuid.New(), Name: "Tech", Type: enums.GroupTypeWish, Position: 1, UserID: userID},
		{ID: uuid.New(), Name: "Family", Type: enums.GroupTypeGift, Position: 1, UserID: userID},
	}}
	svc := buildGroupService(t, repo)

	wishType := enums.GroupTypeWish
	out, err := svc.ListGroups(context.Background(), userID, &wishType)
	if err != nil {
		t.Fatalf("list groups: %v", err)
	}
	if len(out) != 1 || out[0].Name != "Tech" {
		t.Fatalf("expected only wish groups, got %+v", out)
	}
}

func TestUpdateGroupUnknownID(t *testing.T) {
	svc := buildGroupService(t, &stubGroupRepo{})

	_, err := svc.UpdateGroup(context.Background(), uuid.New(), uuid.New(), UpdateGroupRequest{Name: "Renamed"})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestDeleteGroupRemovesOwnGroupOnly(t *testing.T) {
	owner := uuid.New()
	other := uuid.New()
	groupID := uuid.New()
	repo := &stubGroupRepo{items: []models.Group{
		{ID: groupID, Name: "Tech", Type: enums.GroupTypeWish, Position: 1, UserID: owner},
	}}
	svc := buildGroupService(t, repo)

	err := svc.DeleteGroup(context.Background(), other, groupID)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found for foreign user, got %v", err)
	}

	if err := svc.DeleteGroup(context.Background(), owner, groupID); err != nil {
		t.Fatalf("delete own group: %v", err)
	}
	if len(repo.items) != 0 {
		t.Fatalf("expected group removed")
	}
}
