package utils

import (
	"context"

	"github.com/shynebeauty/shyne_backend/appctx"
)

var (
	ContextKeyCorrelationId = appctx.ContextKeyCorrelationId
	ContextKeyCascadeDelete = appctx.ContextKeyCascadeDelete
)

func GetCorrelationIdFromContext(ctx context.Context) (string, bool) {
	return appctx.GetString(ctx, ContextKeyCorrelationId)
}

func SetCorrelationIdInContext(ctx context.Context, correlationId string) context.Context {
	return appctx.Set(ctx, ContextKeyCorrelationId, correlationId)
}

// SetCascadeDeleteInContext lets an owning row's delete transaction remove
// rows from append-only tables.
func SetCascadeDeleteInContext(ctx context.Context) context.Context {
	return appctx.Set(ctx, ContextKeyCascadeDelete, true)
}
