package appctx

import "context"

// ContextKey types every request-scoped value. config reads these keys and
// utils imports config, so they live here.
type ContextKey string

func (c ContextKey) String() string { return string(c) }

var (
	ContextKeyCorrelationId = ContextKey("CorrelationId")

	// ContextKeyCascadeDelete marks a statement issued by an owning row's delete
	// transaction. Append-only tables accept deletes only under this flag.
	ContextKeyCascadeDelete = ContextKey("CascadeDelete")
)

func GetString(ctx context.Context, key ContextKey) (string, bool) {
	v, ok := ctx.Value(key).(string)
	return v, ok
}

func GetBool(ctx context.Context, key ContextKey) (bool, bool) {
	v, ok := ctx.Value(key).(bool)
	return v, ok
}

func Set(ctx context.Context, key ContextKey, value any) context.Context {
	return context.WithValue(ctx, key, value)
}
