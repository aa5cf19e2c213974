package records

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/acarrillodev/wishtrack-backend/internal/tags"
	"github.com/acarrillodev/wishtrack-backend/pkg/db/models"
	"github.com/acarrillodev/wishtrack-backend/pkg/enums"
)

// RecordDTO is the transport shape for a financial record with its tags.
type RecordDTO struct {
	ID         uuid.UUID        `json:"id"`
	Name       string           `json:"name"`
	Amount     decimal.Decimal  `json:"amount"`
	Type       enums.RecordType `json:"type"`
	Notes      *string          `json:"notes,omitempty"`
	OccurredAt time.Time        `json:"occurred_at"`
	Tags       []tags.TagDTO    `json:"tags"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

// RecordPagination describes the cursor state of a records page.
type RecordPagination struct {
	Total int    `json:"total"`
	Next  string `json:"next"`
	Prev  string `json:"prev"`
}

// RecordsPageDTO is a cursor-paginated slice of the user's ledger.
type RecordsPageDTO struct {
	Records    []RecordDTO      `json:"records"`
	Pagination RecordPagination `json:"pagination"`
}

// ListRecordsQuery carries the optional ledger filters.
type ListRecordsQuery struct {
	Type   *enums.RecordType
	TagID  *uuid.UUID
	From   *time.Time
	To     *time.Time
	Cursor string
	Limit  int
}

// CreateRecordRequest captures the payload for logging a record.
type CreateRecordRequest struct {
	Name       string           `json:"name" validate:"required,min=1,max=200"`
	Amount     decimal.Decimal  `json:"amount" validate:"required"`
	Type       enums.RecordType `json:"type" validate:"required,oneof=income expense"`
	Notes      *string          `json:"notes" validate:"omitempty,max=2000"`
	OccurredAt time.Time        `json:"occurred_at" validate:"required"`
	TagIDs     []uuid.UUID      `json:"tag_ids" validate:"omitempty,max=20"`
}

// UpdateRecordRequest carries partial record updates. A non-nil TagIDs
// replaces the full tag set.
type UpdateRecordRequest struct {
	Name       *string           `json:"name" validate:"omitempty,min=1,max=200"`
	Amount     *decimal.Decimal  `json:"amount" validate:"omitempty"`
	Type       *enums.RecordType `json:"type" validate:"omitempty,oneof=income expense"`
	Notes      *string           `json:"notes" validate:"omitempty,max=2000"`
	OccurredAt *time.Time        `json:"occurred_at" validate:"omitempty"`
	TagIDs     *[]uuid.UUID      `json:"tag_ids" validate:"omitempty"`
}

func FromModel(r *models.Record) *RecordDTO {
	if r == nil {
		return nil
	}
	return &RecordDTO{
		ID:         r.ID,
		Name:       r.Name,
		Amount:     r.Amount,
		Type:       r.Type,
		Notes:      r.Notes,
		OccurredAt: r.OccurredAt,
		Tags:       tags.FromModels(r.Tags),
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

// FromModels maps a slice of persisted records, always returning a non-nil slice.
func FromModels(items []models.Record) []RecordDTO {
	dtos := make([]RecordDTO, 0, len(items))
	for i := range items {
		dtos = append(dtos, *FromModel(&items[i]))
	}
	return dtos
}
