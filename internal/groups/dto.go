package groups

import (
	"time"

	"github.com/google/uuid"

	"github.com/acarrillodev/wishtrack-backend/pkg/db/models"
	"github.com/acarrillodev/wishtrack-backend/pkg/enums"
)

// GroupDTO is the transport shape for a category group.
type GroupDTO struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Type      enums.GroupType `json:"type"`
	Order     int             `json:"order"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// CreateGroupRequest captures the payload for creating a group.
type CreateGroupRequest struct {
	Name string          `json:"name" validate:"required,min=1,max=120"`
	Type enums.GroupType `json:"type" validate:"required,oneof=wish gift"`
}

// UpdateGroupRequest carries the mutable group fields.
type UpdateGroupRequest struct {
	Name string `json:"name" validate:"required,min=1,max=120"`
}

func FromModel(g *models.Group) *GroupDTO {
	if g == nil {
		return nil
	}
	return &GroupDTO{
		ID:        g.ID,
		Name:      g.Name,
		Type:      g.Type,
		Order:     g.Position,
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
	}
}

// FromModels maps a slice of persisted groups, always returning a non-nil slice.
func FromModels(items []models.Group) []GroupDTO {
	dtos := make([]GroupDTO, 0, len(items))
	for i := range items {
		dtos = append(dtos, *FromModel(&items[i]))
	}
	return dtos
}
