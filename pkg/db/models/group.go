package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/acarrillodev/wishtrack-backend/pkg/enums"
)

// Group is a user-defined category bucket for wishes or gifts.
// Position drives manual display ordering within (user, type).
type Group struct {
	ID        uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name      string          `gorm:"type:text;not null;uniqueIndex:groups_name_user_type_key"`
	Type      enums.GroupType `gorm:"type:group_type;not null;uniqueIndex:groups_name_user_type_key"`
	Position  int             `gorm:"column:position;not null"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;index:groups_user_id_idx;uniqueIndex:groups_name_user_type_key"`
	CreatedAt time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}
