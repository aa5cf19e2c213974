package tags

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/acarrillodev/wishtrack-backend/pkg/db/models"
)

// Repository encapsulates tag persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a tags repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListByUser returns the user's tags sorted by name.
func (r *Repository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Tag, error) {
	var items []models.Tag
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// FindByIDs loads the subset of the given tag IDs owned by the user.
func (r *Repository) FindByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]models.Tag, error) {
	if len(ids) == 0 {
		return []models.Tag{}, nil
	}
	var items []models.Tag
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND id IN ?", userID, ids).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Create inserts a new tag for the user.
func (r *Repository) Create(ctx context.Context, userID uuid.UUID, name string) (*models.Tag, error) {
	tag := &models.Tag{
		Name:   name,
		UserID: userID,
	}
	if err := r.db.WithContext(ctx).Create(tag).Error; err != nil {
		return nil, err
	}
	return tag, nil
}

// UpdateName renames the tag and returns the refreshed model.
func (r *Repository) UpdateName(ctx context.Context, userID, id uuid.UUID, name string) (*models.Tag, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Tag{}).
		Where("user_id = ? AND id = ?", userID, id).
		Update("name", name)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	var tag models.Tag
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		First(&tag).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

// Delete removes the tag; join rows cascade away with it.
func (r *Repository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		Delete(&models.Tag{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
