package gifts

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/acarrillodev/wishtrack-backend/internal/groups"
	"github.com/acarrillodev/wishtrack-backend/pkg/db/models"
	"github.com/acarrillodev/wishtrack-backend/pkg/types"
)

// GiftDTO is the transport shape for a gift, including its joined group.
type GiftDTO struct {
	ID        uuid.UUID        `json:"id"`
	Name      string           `json:"name"`
	Recipient *string          `json:"recipient,omitempty"`
	Price     *decimal.Decimal `json:"price,omitempty"`
	Notes     *string          `json:"notes,omitempty"`
	Link      *string          `json:"link,omitempty"`
	Order     int              `json:"order"`
	GroupID   *uuid.UUID       `json:"group_id,omitempty"`
	Group     *groups.GroupDTO `json:"group,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// GiftsPageDTO bundles the ordered gifts with the user's gift groups.
type GiftsPageDTO struct {
	Gifts  []GiftDTO         `json:"gifts"`
	Groups []groups.GroupDTO `json:"groups"`
}

// CreateGiftRequest captures the payload for creating a gift.
type CreateGiftRequest struct {
	Name      string           `json:"name" validate:"required,min=1,max=200"`
	Recipient *string          `json:"recipient" validate:"omitempty,max=200"`
	Price     *decimal.Decimal `json:"price" validate:"omitempty"`
	Notes     *string          `json:"notes" validate:"omitempty,max=2000"`
	Link      *string          `json:"link" validate:"omitempty,url"`
	GroupID   *uuid.UUID       `json:"group_id"`
}

// UpdateGiftRequest carries partial gift updates.
type UpdateGiftRequest struct {
	Name      *string            `json:"name" validate:"omitempty,min=1,max=200"`
	Recipient *string            `json:"recipient" validate:"omitempty,max=200"`
	Price     *decimal.Decimal   `json:"price" validate:"omitempty"`
	Notes     *string            `json:"notes" validate:"omitempty,max=2000"`
	Link      *string            `json:"link" validate:"omitempty,url"`
	GroupID   types.OptionalUUID `json:"group_id"`
}

func FromModel(g *models.Gift) *GiftDTO {
	if g == nil {
		return nil
	}
	return &GiftDTO{
		ID:        g.ID,
		Name:      g.Name,
		Recipient: g.Recipient,
		Price:     g.Price,
		Notes:     g.Notes,
		Link:      g.Link,
		Order:     g.Position,
		GroupID:   g.GroupID,
		Group:     groups.FromModel(g.Group),
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
	}
}

// FromModels maps a slice of persisted gifts, always returning a non-nil slice.
func FromModels(items []models.Gift) []GiftDTO {
	dtos := make([]GiftDTO, 0, len(items))
	for i := range items {
		dtos = append(dtos, *FromModel(&items[i]))
	}
	return dtos
}
