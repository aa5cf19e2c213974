package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/acarrillodev/wishtrack-backend/pkg/enums"
)

// Record is a logged financial transaction (income or expense).
type Record struct {
	ID         uuid.UUID        `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name       string           `gorm:"type:text;not null"`
	Amount     decimal.Decimal  `gorm:"type:numeric(12,2);not null"`
	Type       enums.RecordType `gorm:"type:record_type;not null"`
	Notes      *string          `gorm:"type:text"`
	OccurredAt time.Time        `gorm:"column:occurred_at;not null"`
	UserID     uuid.UUID        `gorm:"type:uuid;not null;index:records_user_id_idx"`
	Tags       []Tag            `gorm:"many2many:record_tags;constraint:OnDelete:CASCADE"`
	CreatedAt  time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time        `gorm:"column:updated_at;autoUpdateTime"`
}
