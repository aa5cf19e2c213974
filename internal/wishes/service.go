package wishes

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/acarrillodev/wishtrack-backend/internal/groups"
	"github.com/acarrillodev/wishtrack-backend/pkg/db/models"
	"github.com/acarrillodev/wishtrack-backend/pkg/enums"
	pkgerrors "github.com/acarrillodev/wishtrack-backend/pkg/errors"
)

// Service exposes business rules for wish management.
type Service interface {
	GetWishes(ctx context.Context, userID uuid.UUID) (*WishesPageDTO, error)
	CreateWish(ctx context.Context, userID uuid.UUID, req CreateWishRequest) (*WishDTO, error)
	UpdateWish(ctx context.Context, userID, wishID uuid.UUID, req UpdateWishRequest) (*WishDTO, error)
	DeleteWish(ctx context.Context, userID, wishID uuid.UUID) error
}

type wishRepository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Wish, error)
	Create(ctx context.Context, wish *models.Wish) (*models.Wish, error)
	Update(ctx context.Context, userID, id uuid.UUID, updates map[string]any, move *MoveTarget) (*models.Wish, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type groupRepository interface {
	ListByUser(ctx context.Context, userID uuid.UUID, groupType *enums.GroupType) ([]models.Group, error)
	FindByID(ctx context.Context, userID, id uuid.UUID) (*models.Group, error)
}

// ServiceParams bundles the dependencies required to build a wishes service.
type ServiceParams struct {
	WishRepo  wishRepository
	GroupRepo groupRepository
}

type service struct {
	wishes wishRepository
	groups groupRepository
}

// NewService constructs a wishes service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.WishRepo == nil {
		return nil, fmt.Errorf("wish repository is required")
	}
	if params.GroupRepo == nil {
		return nil, fmt.Errorf("group repository is required")
	}
	return &service{
		wishes: params.WishRepo,
		groups: params.GroupRepo,
	}, nil
}

// GetWishes returns the caller's wishes in display order together with
// their wish groups.
func (s *service) GetWishes(ctx context.Context, userID uuid.UUID) (*WishesPageDTO, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}

	items, err := s.wishes.ListByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list wishes")
	}

	groupType := enums.GroupTypeWish
	userGroups, err := s.groups.ListByUser(ctx, userID, &groupType)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list groups")
	}

	return &WishesPageDTO{
		Wishes: FromModels(items),
		Groups: groups.FromModels(userGroups),
	}, nil
}

// CreateWish appends a new wish to the requested partition and returns it
// with its group joined.
func (s *service) CreateWish(ctx context.Context, userID uuid.UUID, req CreateWishRequest) (*WishDTO, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	if err := s.ensureOwnGroup(ctx, userID, req.GroupID); err != nil {
		return nil, err
	}

	wish := &models.Wish{
		Name:    strings.TrimSpace(req.Name),
		Price:   req.Price,
		Notes:   req.Notes,
		Link:    req.Link,
		UserID:  userID,
		GroupID: req.GroupID,
	}

	created, err := s.wishes.Create(ctx, wish)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create wish")
	}
	return FromModel(created), nil
}

// UpdateWish applies partial changes; moving between groups re-sequences the
// wish at the tail of the destination.
func (s *service) UpdateWish(ctx context.Context, userID, wishID uuid.UUID, req UpdateWishRequest) (*WishDTO, error) {
	if userID == uuid.Nil || wishID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id and wish id are required")
	}

	updates := map[string]any{}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "name cannot be empty")
		}
		updates["name"] = name
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}
	if req.Link != nil {
		updates["link"] = *req.Link
	}

	var move *MoveTarget
	if req.GroupID.Set {
		if err := s.ensureOwnGroup(ctx, userID, req.GroupID.Value); err != nil {
			return nil, err
		}
		move = &MoveTarget{GroupID: req.GroupID.Value}
	}

	wish, err := s.wishes.Update(ctx, userID, wishID, updates, move)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "wish not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update wish")
	}
	return FromModel(wish), nil
}

// DeleteWish removes the wish if the caller owns it.
func (s *service) DeleteWish(ctx context.Context, userID, wishID uuid.UUID) error {
	if userID == uuid.Nil || wishID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "user id and wish id are required")
	}
	if err := s.wishes.Delete(ctx, userID, wishID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "wish not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete wish")
	}
	return nil
}

func (s *service) ensureOwnGroup(ctx context.Context, userID uuid.UUID, groupID *uuid.UUID) error {
	if groupID == nil {
		return nil
	}
	group, err := s.groups.FindByID(ctx, userID, *groupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "group not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load group")
	}
	if group.Type != enums.GroupTypeWish {
		return pkgerrors.New(pkgerrors.CodeValidation, "group does not accept wishes")
	}
	return nil
}
