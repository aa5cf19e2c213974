package groups

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/acarrillodev/wishtrack-backend/internal/repo"
	"github.com/acarrillodev/wishtrack-backend/pkg/db/models"
	"github.com/acarrillodev/wishtrack-backend/pkg/enums"
)

// Repository encapsulates group persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a groups repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListByUser returns the user's groups ordered by position, optionally
// filtered by type.
func (r *Repository) ListByUser(ctx context.Context, userID uuid.UUID, groupType *enums.GroupType) ([]models.Group, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID)
	if groupType != nil {
		query = query.Where("type = ?", *groupType)
	}

	var items []models.Group
	if err := query.Order("position ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// FindByID loads a group scoped to its owner.
func (r *Repository) FindByID(ctx context.Context, userID, id uuid.UUID) (*models.Group, error) {
	var group models.Group
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		First(&group).Error; err != nil {
		return nil, err
	}
	return &group, nil
}

// Create inserts the group at the tail of its (user, type) partition. The
// position lock keeps concurrent inserts from racing on max(position)+1.
func (r *Repository) Create(ctx context.Context, userID uuid.UUID, name string, groupType enums.GroupType) (*models.Group, error) {
	group := &models.Group{
		Name:   name,
		Type:   groupType,
		UserID: userID,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		scope := fmt.Sprintf("groups:%s:%s", userID, groupType)
		if err := repo.AcquirePositionLock(tx, scope); err != nil {
			return err
		}

		next, err := repo.NextPosition(tx.Model(&models.Group{}).
			Where("user_id = ? AND type = ?", userID, groupType))
		if err != nil {
			return err
		}
		group.Position = next

		return tx.Create(group).Error
	})
	if err != nil {
		return nil, err
	}
	return group, nil
}

// UpdateName renames the group and returns the refreshed model.
func (r *Repository) UpdateName(ctx context.Context, userID, id uuid.UUID, name string) (*models.Group, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Group{}).
		Where("user_id = ? AND id = ?", userID, id).
		Update("name", name)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.FindByID(ctx, userID, id)
}

// Delete removes the group. Item rows keep existing with their group FK
// set to NULL by the schema.
func (r *Repository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		Delete(&models.Group{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
