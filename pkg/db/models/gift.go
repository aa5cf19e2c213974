package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Gift is an item intended for someone else, structurally parallel to Wish.
type Gift struct {
	ID        uuid.UUID        `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name      string           `gorm:"type:text;not null"`
	Recipient *string          `gorm:"type:text"`
	Price     *decimal.Decimal `gorm:"type:numeric(12,2)"`
	Notes     *string          `gorm:"type:text"`
	Link      *string          `gorm:"type:text"`
	Position  int              `gorm:"column:position;not null"`
	UserID    uuid.UUID        `gorm:"type:uuid;not null;index:gifts_user_id_idx"`
	GroupID   *uuid.UUID       `gorm:"type:uuid;index:gifts_group_id_idx"`
	Group     *Group           `gorm:"foreignKey:GroupID;constraint:OnDelete:SET NULL"`
	CreatedAt time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time        `gorm:"column:updated_at;autoUpdateTime"`
}
