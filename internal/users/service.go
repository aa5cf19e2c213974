package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/acarrillodev/wishtrack-backend/pkg/db/models"
	pkgerrors "github.com/acarrillodev/wishtrack-backend/pkg/errors"
)

// Service exposes profile operations for the authenticated user.
type Service interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*UserDTO, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req UpdateProfileRequest) (*UserDTO, error)
}

type userRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, updates map[string]any) (*models.User, error)
}

// ServiceParams bundles the dependencies required to build a users service.
type ServiceParams struct {
	UserRepo userRepository
}

type service struct {
	users userRepository
}

// NewService constructs a profile service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.UserRepo == nil {
		return nil, fmt.Errorf("user repository is required")
	}
	return &service{users: params.UserRepo}, nil
}

// GetProfile returns the profile of the given user.
func (s *service) GetProfile(ctx context.Context, userID uuid.UUID) (*UserDTO, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "user not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load user")
	}
	return FromModel(user), nil
}

// UpdateProfile applies the requested field changes and returns the updated profile.
func (s *service) UpdateProfile(ctx context.Context, userID uuid.UUID, req UpdateProfileRequest) (*UserDTO, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}

	updates := map[string]any{}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "name cannot be empty")
		}
		updates["name"] = name
	}
	if req.Bio != nil {
		updates["bio"] = *req.Bio
	}
	if req.PhotoURL != nil {
		updates["photo_url"] = *req.PhotoURL
	}

	user, err := s.users.UpdateProfile(ctx, userID, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "user not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update user")
	}
	return FromModel(user), nil
}
