package records

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/acarrillodev/wishtrack-backend/pkg/db/models"
	"github.com/acarrillodev/wishtrack-backend/pkg/pagination"
)

// Repository encapsulates ledger persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a records repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns a cursor page of the user's records, newest first.
func (r *Repository) List(ctx context.Context, userID uuid.UUID, query ListRecordsQuery) (RecordsPageDTO, error) {
	normalizedLimit := pagination.NormalizeLimit(query.Limit)
	limitWithBuffer := pagination.LimitWithBuffer(query.Limit)
	cursorValue := strings.TrimSpace(query.Cursor)
	decodedCursor, err := pagination.ParseCursor(cursorValue)
	if err != nil {
		return RecordsPageDTO{}, err
	}

	dataQuery := r.filtered(ctx, userID, query).Preload("Tags")

	if decodedCursor != nil {
		dataQuery = dataQuery.Where(
			"(records.created_at < ?) OR (records.created_at = ? AND records.id < ?)",
			decodedCursor.CreatedAt, decodedCursor.CreatedAt, decodedCursor.ID,
		)
	}

	var rows []models.Record
	if err := dataQuery.
		Order("records.created_at DESC").
		Order("records.id DESC").
		Limit(limitWithBuffer).
		Find(&rows).Error; err != nil {
		return RecordsPageDTO{}, err
	}

	resultRows := rows
	nextCursor := ""
	if len(rows) > normalizedLimit {
		resultRows = rows[:normalizedLimit]
		last := resultRows[len(resultRows)-1]
		nextCursor = pagination.EncodeCursor(pagination.Cursor{
			CreatedAt: last.CreatedAt,
			ID:        last.ID,
		})
	}

	var total int64
	if err := r.filtered(ctx, userID, query).Count(&total).Error; err != nil {
		return RecordsPageDTO{}, err
	}

	prevCursor := ""
	if cursorValue != "" {
		prevCursor = cursorValue
	}

	return RecordsPageDTO{
		Records: FromModels(resultRows),
		Pagination: RecordPagination{
			Total: int(total),
			Next:  nextCursor,
			Prev:  prevCursor,
		},
	}, nil
}

// FindByID loads a record scoped to its owner, with tags joined.
func (r *Repository) FindByID(ctx context.Context, userID, id uuid.UUID) (*models.Record, error) {
	var record models.Record
	if err := r.db.WithContext(ctx).
		Preload("Tags").
		Where("user_id = ? AND id = ?", userID, id).
		First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// Create inserts the record together with its tag associations.
func (r *Repository) Create(ctx context.Context, record *models.Record) (*models.Record, error) {
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return nil, err
	}
	return r.FindByID(ctx, record.UserID, record.ID)
}

// Update applies the column map and, when tagSet is non-nil, replaces the
// record's tag associations.
func (r *Repository) Update(ctx context.Context, userID, id uuid.UUID, updates map[string]any, tagSet []models.Tag) (*models.Record, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current models.Record
		if err := tx.Where("user_id = ? AND id = ?", userID, id).First(&current).Error; err != nil {
			return err
		}

		if len(updates) > 0 {
			if err := tx.Model(&models.Record{}).
				Where("user_id = ? AND id = ?", userID, id).
				Updates(updates).Error; err != nil {
				return err
			}
		}

		if tagSet != nil {
			if err := tx.Model(&current).Association("Tags").Replace(tagSet); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.FindByID(ctx, userID, id)
}

// Delete removes the record; join rows cascade away with it.
func (r *Repository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		Delete(&models.Record{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *Repository) filtered(ctx context.Context, userID uuid.UUID, query ListRecordsQuery) *gorm.DB {
	q := r.db.WithContext(ctx).
		Model(&models.Record{}).
		Where("records.user_id = ?", userID)

	if query.Type != nil {
		q = q.Where("records.type = ?", *query.Type)
	}
	if query.From != nil {
		q = q.Where("records.occurred_at >= ?", *query.From)
	}
	if query.To != nil {
		q = q.Where("records.occurred_at < ?", *query.To)
	}
	if query.TagID != nil {
		q = q.Joins("JOIN record_tags rt ON rt.record_id = records.id").
			Where("rt.tag_id = ?", *query.TagID)
	}
	return q
}
