package models

import (
	"context"
	"fmt"
	"time"

	"github.com/bsm/redislock"
	"github.com/shynebeauty/shyne_backend/config"
)

const migrationLockKey = "lock:migrate"

// AllModels lists every table of the schema.
func AllModels() []interface{} {
	return []interface{}{
		&Customer{}, &Product{}, &Ingredient{}, &Batch{},
		&ProductBatch{}, &Order{}, &OrderItem{}, &BatchIngredient{},
		&OrderStatusEvent{}, &Shipment{},
	}
}

// MigrateTable creates missing tables, columns, indexes and foreign keys.
// Existing tables are left in place, so it is safe on every start.
func MigrateTable(ctx context.Context) error {
	if locker := config.GetRedisLock(); locker != nil {
		lockCtx, cancel := context.WithTimeout(ctx, 2*time.Minute)
		defer cancel()
		lock, err := locker.Obtain(lockCtx, migrationLockKey, 2*time.Minute, &redislock.Options{
			RetryStrategy: redislock.LinearBackoff(500 * time.Millisecond),
		})
		if err != nil {
			return fmt.Errorf("obtain migration lock: %w", err)
		}
		defer func() {
			if releaseErr := lock.Release(context.Background()); releaseErr != nil {
				config.LogError(config.GetLogger(), "migration.go", "MigrateTable", "release migration lock", nil, releaseErr)
			}
		}()
	}

	db := config.GetDB()
	if db == nil {
		return fmt.Errorf("database not initialized")
	}
	return db.WithContext(ctx).AutoMigrate(AllModels()...)
}
