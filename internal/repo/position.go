package repo

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AcquirePositionLock serializes position assignment for the given scope until
// the surrounding transaction ends. Non-postgres dialects rely on the
// transaction alone.
func AcquirePositionLock(tx *gorm.DB, scope string) error {
	if tx.Dialector.Name() != "postgres" {
		return nil
	}
	return tx.Exec("SELECT pg_advisory_xact_lock(hashtext(?))", scope).Error
}

// PositionScope builds the advisory lock key for a (table, user, group)
// partition. A nil group maps to the ungrouped partition.
func PositionScope(table string, userID uuid.UUID, groupID *uuid.UUID) string {
	if groupID == nil {
		return fmt.Sprintf("%s:%s:ungrouped", table, userID)
	}
	return fmt.Sprintf("%s:%s:%s", table, userID, groupID)
}

// NextPosition returns max(position)+1 within the scoped query. The query must
// already be filtered to the partition and the caller must hold the matching
// position lock.
func NextPosition(query *gorm.DB) (int, error) {
	var next int
	if err := query.
		Select("COALESCE(MAX(position), 0) + 1").
		Scan(&next).Error; err != nil {
		return 0, err
	}
	if next < 1 {
		next = 1
	}
	return next, nil
}
