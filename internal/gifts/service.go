package gifts

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

// Service exposes business rules for gift management.
type Service interface {
	GetGifts(ctx context.Context, userID uuid.UUID) (*GiftsPageDTO, error)
	CreateGift(ctx context.Context, userID uuid.UUID, req CreateGiftRequest) (*GiftDTO, error)
	UpdateGift(ctx context.Context, userID, giftID uuid.UUID, req UpdateGiftRequest) (*GiftDTO, error)
	DeleteGift(ctx context.Context, userID, giftID uuid.UUID) error
}

type giftRepository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Gift, error)
	Create(ctx context.Context, gift *models.Gift) (*models.Gift, error)
	Update(ctx context.Context, userID, id uuid.UUID, updates map[string]any, move *MoveTarget) (*models.Gift, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type groupRepository interface {
	ListByUser(ctx context.Context, userID uuid.UUID, groupType *enums.GroupType) ([]models.Group, error)
	FindByID(ctx context.Context, userID, id uuid.UUID) (*models.Group, error)
}

// ServiceParams bundles the dependencies required to build a gifts service.
type ServiceParams struct {
	GiftRepo  giftRepository
	GroupRepo groupRepository
}

type service struct {
	gifts  giftRepository
	groups groupRepository
}

// NewService constructs a gifts service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.GiftRepo == nil {
		return nil, fmt.Errorf("gift repository is required")
	}
	if params.GroupRepo == nil {
		return nil, fmt.Errorf("group repository is required")
	}
	return &service{
		gifts:  params.GiftRepo,
		groups: params.GroupRepo,
	}, nil
}

// GetGifts returns the caller's gifts in display order together with their
// gift groups.
func (s *service) GetGifts(ctx context.Context, userID uuid.UUID) (*GiftsPageDTO, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}

	items, err := s.gifts.ListByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list gifts")
	}

	groupType := enums.GroupTypeGift
	userGroups, err := s.groups.ListByUser(ctx, userID, &groupType)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list groups")
	}

	return &GiftsPageDTO{
		Gifts:  FromModels(items),
		Groups: groups.FromModels(userGroups),
	}, nil
}

// CreateGift appends a new gift to the requested partition.
func (s *service) CreateGift(ctx context.Context, userID uuid.UUID, req CreateGiftRequest) (*GiftDTO, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	if err := s.ensureOwnGroup(ctx, userID, req.GroupID); err != nil {
		return nil, err
	}

	gift := &models.Gift{
		Name:      strings.TrimSpace(req.Name),
		Recipient: req.Recipient,
		Price:     req.Price,
		Notes:     req.Notes,
		Link:      req.Link,
		UserID:    userID,
		GroupID:   req.GroupID,
	}

	created, err := s.gifts.Create(ctx, gift)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create gift")
	}
	return FromModel(created), nil
}

// UpdateGift applies partial changes; moving between groups re-sequences the
// gift at the tail of the destination.
func (s *service) UpdateGift(ctx context.Context, userID, giftID uuid.UUID, req UpdateGiftRequest) (*GiftDTO, error) {
	if userID == uuid.Nil || giftID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id and gift id are required")
	}

	updates := map[string]any{}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "name cannot be empty")
		}
		updates["name"] = name
	}
	if req.Recipient != nil {
		updates["recipient"] = *req.Recipient
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

	gift, err := s.gifts.Update(ctx, userID, giftID, updates, move)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "gift not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update gift")
	}
	return FromModel(gift), nil
}

// DeleteGift removes the gift if the caller owns it.
func (s *service) DeleteGift(ctx context.Context, userID, giftID uuid.UUID) error {
	if userID == uuid.Nil || giftID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "user id and gift id are required")
	}
	if err := s.gifts.Delete(ctx, userID, giftID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "gift not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete gift")
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
	if group.Type != enums.GroupTypeGift {
		return pkgerrors.New(pkgerrors.CodeValidation, "group does not accept gifts")
	}
	return nil
}
