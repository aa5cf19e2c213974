package users

import (
	"time"

	"github.com/google/uuid"

	"github.com/acarrillodev/wishtrack-backend/pkg/db/models"
)

// UserDTO is the transport shape that omits sensitive credentials.
type UserDTO struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	Name        string     `json:"name"`
	Bio         *string    `json:"bio,omitempty"`
	PhotoURL    *string    `json:"photo_url,omitempty"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// CreateUserDTO holds the data required by the repo to persist a new user.
type CreateUserDTO struct {
	Email        string
	PasswordHash string
	Name         string
}

// UpdateProfileRequest carries the optional profile fields a user may change.
type UpdateProfileRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=120"`
	Bio      *string `json:"bio" validate:"omitempty,max=500"`
	PhotoURL *string `json:"photo_url" validate:"omitempty,url"`
}

func FromModel(u *models.User) *UserDTO {
	if u == nil {
		return nil
	}

	return &UserDTO{
		ID:          u.ID,
		Email:       u.Email,
		Name:        u.Name,
		Bio:         u.Bio,
		PhotoURL:    u.PhotoURL,
		LastLoginAt: u.LastLoginAt,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

func (c CreateUserDTO) ToModel() *models.User {
	return &models.User{
		Email:        c.Email,
		PasswordHash: c.PasswordHash,
		Name:         c.Name,
	}
}
