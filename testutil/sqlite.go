// Package testutil opens throwaway databases for package tests.
package testutil

import (
	"context"
	"fmt"
	"regexp"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shynebeauty/shyne_backend/config"
	"github.com/shynebeauty/shyne_backend/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var (
	dbSeq       atomic.Int64
	unsafeChars = regexp.MustCompile(`[^A-Za-z0-9_]`)
)

// OpenSQLite installs a fresh, migrated in-memory database as the global DB
// and restores the previous one when the test ends.
func OpenSQLite(t *testing.T) *gorm.DB {
	t.Helper()

	name := fmt.Sprintf("%s_%d", unsafeChars.ReplaceAllString(t.Name(), "_"), dbSeq.Add(1))
	db, err := config.OpenDatabase("sqlite://file:" + name + "?mode=memory&cache=shared")
	require.NoError(t, err)

	previous := config.GetDB()
	config.SetDB(db)
	t.Cleanup(func() {
		config.SetDB(previous)
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	require.NoError(t, models.MigrateTable(context.Background()))
	return db
}

// SetNow pins the clock gorm uses for autoCreateTime/autoUpdateTime.
func SetNow(db *gorm.DB, now time.Time) {
	db.Config.NowFunc = func() time.Time { return now.UTC() }
}

// Count returns the number of rows in table.
func Count(t *testing.T, db *gorm.DB, table string) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Table(table).Count(&n).Error)
	return n
}
