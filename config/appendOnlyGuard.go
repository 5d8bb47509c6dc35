package config

import (
	"context"
	"errors"

	"github.com/shynebeauty/shyne_backend/appctx"
	"gorm.io/gorm"
)

// AppendOnlyTables hold audit trails: rows are inserted and read, never edited.
var AppendOnlyTables = []string{"order_status_events"}

var ErrAppendOnly = errors.New("table is append-only")

// AppendOnlyGuardPlugin rejects updates and deletes against the configured tables.
//
// NOTE:
//   - Raw SQL (db.Exec) is not inspected.
//   - Deleting the owning row is allowed through the cascade flag in context,
//     see appctx.ContextKeyCascadeDelete.
type AppendOnlyGuardPlugin struct {
	tables map[string]struct{}
}

func NewAppendOnlyGuardPlugin(tables ...string) *AppendOnlyGuardPlugin {
	p := &AppendOnlyGuardPlugin{tables: make(map[string]struct{}, len(tables))}
	for _, t := range tables {
		p.tables[t] = struct{}{}
	}
	return p
}

func (p *AppendOnlyGuardPlugin) Name() string { return "append_only_guard" }

func (p *AppendOnlyGuardPlugin) Initialize(db *gorm.DB) error {
	if err := db.Callback().Update().Before("gorm:update").Register("append_only_guard:update", p.rejectUpdate); err != nil {
		return err
	}
	if err := db.Callback().Delete().Before("gorm:delete").Register("append_only_guard:delete", p.rejectDelete); err != nil {
		return err
	}
	return nil
}

func (p *AppendOnlyGuardPlugin) rejectUpdate(db *gorm.DB) {
	if p.guarded(db) {
		db.AddError(ErrAppendOnly)
	}
}

func (p *AppendOnlyGuardPlugin) rejectDelete(db *gorm.DB) {
	if !p.guarded(db) {
		return
	}
	if isCascadeDelete(db.Statement.Context) {
		return
	}
	db.AddError(ErrAppendOnly)
}

func (p *AppendOnlyGuardPlugin) guarded(db *gorm.DB) bool {
	if db == nil || db.Statement == nil {
		return false
	}
	_, ok := p.tables[db.Statement.Table]
	return ok
}

func isCascadeDelete(ctx context.Context) bool {
	if ctx == nil {
		return false
	}
	v, ok := appctx.GetBool(ctx, appctx.ContextKeyCascadeDelete)
	return ok && v
}
