package tags

import (
	"time"

	"github.com/google/uuid"

	"github.com/acarrillodev/wishtrack-backend/pkg/db/models"
)

// TagDTO is the transport shape for a record tag.
type TagDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateTagRequest captures the payload for creating a tag.
type CreateTagRequest struct {
	Name string `json:"name" validate:"required,min=1,max=60"`
}

// UpdateTagRequest carries the mutable tag fields.
type UpdateTagRequest struct {
	Name string `json:"name" validate:"required,min=1,max=60"`
}

func FromModel(t *models.Tag) *TagDTO {
	if t == nil {
		return nil
	}
	return &TagDTO{
		ID:        t.ID,
		Name:      t.Name,
		CreatedAt: t.CreatedAt,
	}
}

// FromModels maps a slice of persisted tags, always returning a non-nil slice.
func FromModels(items []models.Tag) []TagDTO {
	dtos := make([]TagDTO, 0, len(items))
	for i := range items {
		dtos = append(dtos, *FromModel(&items[i]))
	}
	return dtos
}
