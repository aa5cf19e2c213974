package doubts

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/acarrillodev/wishtrack-backend/pkg/db/models"
	"github.com/acarrillodev/wishtrack-backend/pkg/enums"
)

// DoubtDTO is the transport shape for a pending purchase decision.
type DoubtDTO struct {
	ID         uuid.UUID            `json:"id"`
	Name       string               `json:"name"`
	Price      *decimal.Decimal     `json:"price,omitempty"`
	Notes      *string              `json:"notes,omitempty"`
	Link       *string              `json:"link,omitempty"`
	Order      int                  `json:"order"`
	Decision   *enums.DoubtDecision `json:"decision,omitempty"`
	ResolvedAt *time.Time           `json:"resolved_at,omitempty"`
	CreatedAt  time.Time            `json:"created_at"`
	UpdatedAt  time.Time            `json:"updated_at"`
}

// CreateDoubtRequest captures the payload for parking an undecided purchase.
type CreateDoubtRequest struct {
	Name  string           `json:"name" validate:"required,min=1,max=200"`
	Price *decimal.Decimal `json:"price" validate:"omitempty"`
	Notes *string          `json:"notes" validate:"omitempty,max=2000"`
	Link  *string          `json:"link" validate:"omitempty,url"`
}

// UpdateDoubtRequest carries partial doubt updates.
type UpdateDoubtRequest struct {
	Name  *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Price *decimal.Decimal `json:"price" validate:"omitempty"`
	Notes *string          `json:"notes" validate:"omitempty,max=2000"`
	Link  *string          `json:"link" validate:"omitempty,url"`
}

// ResolveDoubtRequest records the final verdict on a doubt.
type ResolveDoubtRequest struct {
	Decision enums.DoubtDecision `json:"decision" validate:"required,oneof=bought dismissed"`
}

func FromModel(d *models.Doubt) *DoubtDTO {
	if d == nil {
		return nil
	}
	return &DoubtDTO{
		ID:         d.ID,
		Name:       d.Name,
		Price:      d.Price,
		Notes:      d.Notes,
		Link:       d.Link,
		Order:      d.Position,
		Decision:   d.Decision,
		ResolvedAt: d.ResolvedAt,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

// FromModels maps a slice of persisted doubts, always returning a non-nil slice.
func FromModels(items []models.Doubt) []DoubtDTO {
	dtos := make([]DoubtDTO, 0, len(items))
	for i := range items {
		dtos = append(dtos, *FromModel(&items[i]))
	}
	return dtos
}
