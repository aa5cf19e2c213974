package doubts

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/acarrillodev/wishtrack-backend/internal/repo"
	"github.com/acarrillodev/wishtrack-backend/pkg/db/models"
	"github.com/acarrillodev/wishtrack-backend/pkg/enums"
)

// Repository encapsulates doubt persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a doubts repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListByUser returns the user's doubts ordered by position. Resolved doubts
// stay in the list with their decision attached.
func (r *Repository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Doubt, error) {
	var items []models.Doubt
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("position ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// FindByID loads a doubt scoped to its owner.
func (r *Repository) FindByID(ctx context.Context, userID, id uuid.UUID) (*models.Doubt, error) {
	var doubt models.Doubt
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		First(&doubt).Error; err != nil {
		return nil, err
	}
	return &doubt, nil
}

// Create inserts the doubt at the tail of the user's list.
func (r *Repository) Create(ctx context.Context, doubt *models.Doubt) (*models.Doubt, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		scope := fmt.Sprintf("doubts:%s", doubt.UserID)
		if err := repo.AcquirePositionLock(tx, scope); err != nil {
			return err
		}

		next, err := repo.NextPosition(tx.Model(&models.Doubt{}).
			Where("user_id = ?", doubt.UserID))
		if err != nil {
			return err
		}
		doubt.Position = next

		return tx.Create(doubt).Error
	})
	if err != nil {
		return nil, err
	}
	return doubt, nil
}

// Update applies the column map and returns the refreshed model.
func (r *Repository) Update(ctx context.Context, userID, id uuid.UUID, updates map[string]any) (*models.Doubt, error) {
	if len(updates) > 0 {
		result := r.db.WithContext(ctx).
			Model(&models.Doubt{}).
			Where("user_id = ? AND id = ?", userID, id).
			Updates(updates)
		if result.Error != nil {
			return nil, result.Error
		}
		if result.RowsAffected == 0 {
			return nil, gorm.ErrRecordNotFound
		}
	}
	return r.FindByID(ctx, userID, id)
}

// Resolve stamps the decision on an unresolved doubt.
func (r *Repository) Resolve(ctx context.Context, userID, id uuid.UUID, decision enums.DoubtDecision, at time.Time) (*models.Doubt, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Doubt{}).
		Where("user_id = ? AND id = ? AND decision IS NULL", userID, id).
		Updates(map[string]any{
			"decision":    decision,
			"resolved_at": at,
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.FindByID(ctx, userID, id)
}

// Delete removes the doubt if it belongs to the user.
func (r *Repository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		Delete(&models.Doubt{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
