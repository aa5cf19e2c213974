package models

import (
	"time"

	"github.com/google/uuid"
)

// Tag is a free-form label a user attaches to records.
type Tag struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name      string    `gorm:"type:text;not null;uniqueIndex:tags_name_user_key"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:tags_user_id_idx;uniqueIndex:tags_name_user_key"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}
