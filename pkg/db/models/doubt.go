package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/acarrillodev/wishtrack-backend/pkg/enums"
)

// Doubt is a pending purchase decision. Decision and ResolvedAt stay nil
// until the user resolves it.
type Doubt struct {
	ID         uuid.UUID            `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name       string               `gorm:"type:text;not null"`
	Price      *decimal.Decimal     `gorm:"type:numeric(12,2)"`
	Notes      *string              `gorm:"type:text"`
	Link       *string              `gorm:"type:text"`
	Position   int                  `gorm:"column:position;not null"`
	Decision   *enums.DoubtDecision `gorm:"type:doubt_decision"`
	ResolvedAt *time.Time           `gorm:"column:resolved_at"`
	UserID     uuid.UUID            `gorm:"type:uuid;not null;index:doubts_user_id_idx"`
	CreatedAt  time.Time            `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time            `gorm:"column:updated_at;autoUpdateTime"`
}
