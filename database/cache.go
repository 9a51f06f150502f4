package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mediavault/enums"
	"mediavault/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Get returns the live cache entry for a message, or nil on a miss.
// rows past their expiry are filtered out here, not deleted: expiry
// alone satisfies the cache contract.
func (d *Database) Get(
	ctx context.Context,
	class enums.MediaClass,
	messageID string,
) (*models.MediaCacheEntry, error) {
	var entry models.MediaCacheEntry
	err := d.db.
		WithContext(ctx).
		Where("media_class = ? AND message_id = ? AND expires_at > ?",
			class, messageID, time.Now()).
		First(&entry).
		Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cache entry: %w", err)
	}
	return &entry, nil
}

// Put upserts by (class, message id): a later write for the same
// message replaces the payload and restarts the TTL.
func (d *Database) Put(
	ctx context.Context,
	entry *models.MediaCacheEntry,
) error {
	err := d.db.
		WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "media_class"},
				{Name: "message_id"},
			},
			DoUpdates: clause.AssignmentColumns([]string{
				"payload", "format", "source_url", "created_at", "expires_at",
			}),
		}).
		Create(entry).
		Error
	if err != nil {
		return fmt.Errorf("failed to store cache entry: %w", err)
	}
	return nil
}

// PruneExpired deletes rows past their expiry. housekeeping only:
// Get already treats them as misses.
func (d *Database) PruneExpired(ctx context.Context) (int64, error) {
	result := d.db.
		WithContext(ctx).
		Where("expires_at <= ?", time.Now()).
		Delete(&models.MediaCacheEntry{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to prune cache entries: %w", result.Error)
	}
	return result.RowsAffected, nil
}
