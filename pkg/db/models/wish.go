package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Wish is a desired purchase owned by a user, optionally grouped.
// Position is the display sequence within (user, group); it is assigned
// by the creation flow, never by the client.
type Wish struct {
	ID        uuid.UUID        `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name      string           `gorm:"type:text;not null"`
	Price     *decimal.Decimal `gorm:"type:numeric(12,2)"`
	Notes     *string          `gorm:"type:text"`
	Link      *string          `gorm:"type:text"`
	Position  int              `gorm:"column:position;not null"`
	UserID    uuid.UUID        `gorm:"type:uuid;not null;index:wishes_user_id_idx"`
	GroupID   *uuid.UUID       `gorm:"type:uuid;index:wishes_group_id_idx"`
	Group     *Group           `gorm:"foreignKey:GroupID;constraint:OnDelete:SET NULL"`
	CreatedAt time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time        `gorm:"column:updated_at;autoUpdateTime"`
}
