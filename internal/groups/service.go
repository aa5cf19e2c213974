package groups

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/acarrillodev/wishtrack-backend/pkg/db"
	"github.com/acarrillodev/wishtrack-backend/pkg/db/models"
	"github.com/acarrillodev/wishtrack-backend/pkg/enums"
	pkgerrors "github.com/acarrillodev/wishtrack-backend/pkg/errors"
)

const groupsUniqueConstraint = "groups_name_user_type_key"

// Service exposes business rules for group management.
type Service interface {
	ListGroups(ctx context.Context, userID uuid.UUID, groupType *enums.GroupType) ([]GroupDTO, error)
	CreateGroup(ctx context.Context, userID uuid.UUID, req CreateGroupRequest) (*GroupDTO, error)
	UpdateGroup(ctx context.Context, userID, groupID uuid.UUID, req UpdateGroupRequest) (*GroupDTO, error)
	DeleteGroup(ctx context.Context, userID, groupID uuid.UUID) error
}

type groupRepository interface {
	ListByUser(ctx context.Context, userID uuid.UUID, groupType *enums.GroupType) ([]models.Group, error)
	Create(ctx context.Context, userID uuid.UUID, name string, groupType enums.GroupType) (*models.Group, error)
	UpdateName(ctx context.Context, userID, id uuid.UUID, name string) (*models.Group, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// ServiceParams bundles the dependencies required to build a groups service.
type ServiceParams struct {
	GroupRepo groupRepository
}

type service struct {
	groups groupRepository
}

// NewService constructs a groups service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.GroupRepo == nil {
		return nil, fmt.Errorf("group repository is required")
	}
	return &service{groups: params.GroupRepo}, nil
}

// ListGroups returns the user's groups in display order.
func (s *service) ListGroups(ctx context.Context, userID uuid.UUID, groupType *enums.GroupType) ([]GroupDTO, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	items, err := s.groups.ListByUser(ctx, userID, groupType)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list groups")
	}
	return FromModels(items), nil
}

// CreateGroup appends a new group to its type partition.
func (s *service) CreateGroup(ctx context.Context, userID uuid.UUID, req CreateGroupRequest) (*GroupDTO, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	if !req.Type.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid group type")
	}

	group, err := s.groups.Create(ctx, userID, strings.TrimSpace(req.Name), req.Type)
	if err != nil {
		if db.IsUniqueViolation(err, groupsUniqueConstraint) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeConflict, err, "group name already in use")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create group")
	}
	return FromModel(group), nil
}

// UpdateGroup renames an existing group.
func (s *service) UpdateGroup(ctx context.Context, userID, groupID uuid.UUID, req UpdateGroupRequest) (*GroupDTO, error) {
	if userID == uuid.Nil || groupID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id and group id are required")
	}

	group, err := s.groups.UpdateName(ctx, userID, groupID, strings.TrimSpace(req.Name))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "group not found")
		}
		if db.IsUniqueViolation(err, groupsUniqueConstraint) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeConflict, err, "group name already in use")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update group")
	}
	return FromModel(group), nil
}

// DeleteGroup drops the group; contained items survive ungrouped.
func (s *service) DeleteGroup(ctx context.Context, userID, groupID uuid.UUID) error {
	if userID == uuid.Nil || groupID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "user id and group id are required")
	}
	if err := s.groups.Delete(ctx, userID, groupID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "group not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete group")
	}
	return nil
}
