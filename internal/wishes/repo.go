package wishes

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/acarrillodev/wishtrack-backend/internal/repo"
	"github.com/acarrillodev/wishtrack-backend/pkg/db/models"
)

const positionTable = "wishes"

// MoveTarget describes a requested group change. A nil GroupID moves the
// wish to the ungrouped partition.
type MoveTarget struct {
	GroupID *uuid.UUID
}

// Repository encapsulates wish persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a wishes repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListByUser returns the user's wishes with their groups joined, ordered by
// stored position.
func (r *Repository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Wish, error) {
	var items []models.Wish
	if err := r.db.WithContext(ctx).
		Preload("Group").
		Where("user_id = ?", userID).
		Order("position ASC").
		Order("created_at ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// FindByID loads a wish scoped to its owner, with the group joined.
func (r *Repository) FindByID(ctx context.Context, userID, id uuid.UUID) (*models.Wish, error) {
	var wish models.Wish
	if err := r.db.WithContext(ctx).
		Preload("Group").
		Where("user_id = ? AND id = ?", userID, id).
		First(&wish).Error; err != nil {
		return nil, err
	}
	return &wish, nil
}

// Create inserts the wish at the tail of its (user, group) partition. The
// advisory lock serializes concurrent creates so max(position)+1 cannot race.
func (r *Repository) Create(ctx context.Context, wish *models.Wish) (*models.Wish, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		scope := repo.PositionScope(positionTable, wish.UserID, wish.GroupID)
		if err := repo.AcquirePositionLock(tx, scope); err != nil {
			return err
		}

		next, err := repo.NextPosition(partitionQuery(tx, wish.UserID, wish.GroupID))
		if err != nil {
			return err
		}
		wish.Position = next

		return tx.Create(wish).Error
	})
	if err != nil {
		return nil, err
	}
	return r.FindByID(ctx, wish.UserID, wish.ID)
}

// Update applies the column map and, when move is set, re-homes the wish at
// the tail of the destination partition.
func (r *Repository) Update(ctx context.Context, userID, id uuid.UUID, updates map[string]any, move *MoveTarget) (*models.Wish, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current models.Wish
		if err := tx.Where("user_id = ? AND id = ?", userID, id).First(&current).Error; err != nil {
			return err
		}

		if move != nil && !sameGroup(current.GroupID, move.GroupID) {
			scope := repo.PositionScope(positionTable, userID, move.GroupID)
			if err := repo.AcquirePositionLock(tx, scope); err != nil {
				return err
			}
			next, err := repo.NextPosition(partitionQuery(tx, userID, move.GroupID))
			if err != nil {
				return err
			}
			updates["group_id"] = move.GroupID
			updates["position"] = next
		}

		if len(updates) == 0 {
			return nil
		}
		return tx.Model(&models.Wish{}).
			Where("user_id = ? AND id = ?", userID, id).
			Updates(updates).Error
	})
	if err != nil {
		return nil, err
	}
	return r.FindByID(ctx, userID, id)
}

// Delete removes the wish if it belongs to the user.
func (r *Repository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		Delete(&models.Wish{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func partitionQuery(tx *gorm.DB, userID uuid.UUID, groupID *uuid.UUID) *gorm.DB {
	query := tx.Model(&models.Wish{}).Where("user_id = ?", userID)
	if groupID == nil {
		return query.Where("group_id IS NULL")
	}
	return query.Where("group_id = ?", *groupID)
}

func sameGroup(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
