package wishes

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/acarrillodev/wishtrack-backend/internal/groups"
	"github.com/acarrillodev/wishtrack-backend/pkg/db/models"
	"github.com/acarrillodev/wishtrack-backend/pkg/types"
)

// WishDTO is the transport shape for a wish, including its joined group.
type WishDTO struct {
	ID        uuid.UUID        `json:"id"`
	Name      string           `json:"name"`
	Price     *decimal.Decimal `json:"price,omitempty"`
	Notes     *string          `json:"notes,omitempty"`
	Link      *string          `json:"link,omitempty"`
	Order     int              `json:"order"`
	GroupID   *uuid.UUID       `json:"group_id,omitempty"`
	Group     *groups.GroupDTO `json:"group,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// WishesPageDTO bundles the ordered wishes with the user's wish groups.
type WishesPageDTO struct {
	Wishes []WishDTO         `json:"wishes"`
	Groups []groups.GroupDTO `json:"groups"`
}

// CreateWishRequest captures the payload for creating a wish.
type CreateWishRequest struct {
	Name    string           `json:"name" validate:"required,min=1,max=200"`
	Price   *decimal.Decimal `json:"price" validate:"omitempty"`
	Notes   *string          `json:"notes" validate:"omitempty,max=2000"`
	Link    *string          `json:"link" validate:"omitempty,url"`
	GroupID *uuid.UUID       `json:"group_id"`
}

// UpdateWishRequest carries partial wish updates. GroupID distinguishes an
// omitted field from an explicit null so a wish can be moved out of a group.
type UpdateWishRequest struct {
	Name    *string            `json:"name" validate:"omitempty,min=1,max=200"`
	Price   *decimal.Decimal   `json:"price" validate:"omitempty"`
	Notes   *string            `json:"notes" validate:"omitempty,max=2000"`
	Link    *string            `json:"link" validate:"omitempty,url"`
	GroupID types.OptionalUUID `json:"group_id"`
}

func FromModel(w *models.Wish) *WishDTO {
	if w == nil {
		return nil
	}
	return &WishDTO{
		ID:        w.ID,
		Name:      w.Name,
		Price:     w.Price,
		Notes:     w.Notes,
		Link:      w.Link,
		Order:     w.Position,
		GroupID:   w.GroupID,
		Group:     groups.FromModel(w.Group),
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}

// FromModels maps a slice of persisted wishes, always returning a non-nil slice.
func FromModels(items []models.Wish) []WishDTO {
	dtos := make([]WishDTO, 0, len(items))
	for i := range items {
		dtos = append(dtos, *FromModel(&items[i]))
	}
	return dtos
}
