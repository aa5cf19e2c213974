package tags

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/acarrillodev/wishtrack-backend/pkg/db"
	"github.com/acarrillodev/wishtrack-backend/pkg/db/models"
	pkgerrors "github.com/acarrillodev/wishtrack-backend/pkg/errors"
)

const tagsUniqueConstraint = "tags_name_user_key"

// Service exposes business rules for tag management.
type Service interface {
	ListTags(ctx context.Context, userID uuid.UUID) ([]TagDTO, error)
	CreateTag(ctx context.Context, userID uuid.UUID, req CreateTagRequest) (*TagDTO, error)
	UpdateTag(ctx context.Context, userID, tagID uuid.UUID, req UpdateTagRequest) (*TagDTO, error)
	DeleteTag(ctx context.Context, userID, tagID uuid.UUID) error
}

type tagRepository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Tag, error)
	Create(ctx context.Context, userID uuid.UUID, name string) (*models.Tag, error)
	UpdateName(ctx context.Context, userID, id uuid.UUID, name string) (*models.Tag, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// ServiceParams bundles the dependencies required to build a tags service.
type ServiceParams struct {
	TagRepo tagRepository
}

type service struct {
	tags tagRepository
}

// NewService constructs a tags service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.TagRepo == nil {
		return nil, fmt.Errorf("tag repository is required")
	}
	return &service{tags: params.TagRepo}, nil
}

// ListTags returns the user's tags alphabetically.
func (s *service) ListTags(ctx context.Context, userID uuid.UUID) ([]TagDTO, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	items, err := s.tags.ListByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list tags")
	}
	return FromModels(items), nil
}

// CreateTag adds a new tag; names are unique per user.
func (s *service) CreateTag(ctx context.Context, userID uuid.UUID, req CreateTagRequest) (*TagDTO, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	tag, err := s.tags.Create(ctx, userID, strings.TrimSpace(req.Name))
	if err != nil {
		if db.IsUniqueViolation(err, tagsUniqueConstraint) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeConflict, err, "tag name already in use")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create tag")
	}
	return FromModel(tag), nil
}

// UpdateTag renames an existing tag.
func (s *service) UpdateTag(ctx context.Context, userID, tagID uuid.UUID, req UpdateTagRequest) (*TagDTO, error) {
	if userID == uuid.Nil || tagID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id and tag id are required")
	}
	tag, err := s.tags.UpdateName(ctx, userID, tagID, strings.TrimSpace(req.Name))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "tag not found")
		}
		if db.IsUniqueViolation(err, tagsUniqueConstraint) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeConflict, err, "tag name already in use")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update tag")
	}
	return FromModel(tag), nil
}

// DeleteTag removes the tag and detaches it from all records.
func (s *service) DeleteTag(ctx context.Context, userID, tagID uuid.UUID) error {
	if userID == uuid.Nil || tagID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "user id and tag id are required")
	}
	if err := s.tags.Delete(ctx, userID, tagID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "tag not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete tag")
	}
	return nil
}
