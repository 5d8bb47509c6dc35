package utils

import (
	"context"
	"errors"

	"github.com/shynebeauty/shyne_backend/config"
	"gorm.io/gorm"
)

// fetch a row by primary key, preloading the given associations
// (returns ErrorRecordNotFound when missing)
func FetchModel[T any](ctx context.Context, id int, associations ...string) (*T, error) {
	db := config.GetDB()
	dbCtx := db.WithContext(ctx)
	for _, field := range associations {
		dbCtx = dbCtx.Preload(field)
	}
	var result T
	err := dbCtx.First(&result, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrorRecordNotFound
		}
		return nil, err
	}
	return &result, nil
}

// fetch a row by a unique column
func FetchModelBy[T any](ctx context.Context, column string, value interface{}) (*T, error) {
	db := config.GetDB()
	var result T
	err := db.WithContext(ctx).Where(column+" = ?", value).First(&result).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrorRecordNotFound
		}
		return nil, err
	}
	return &result, nil
}

// fetch rows whose foreign key column equals id, ordered by primary key
func FetchModelsWhere[T any](ctx context.Context, column string, id int) ([]*T, error) {
	db := config.GetDB()
	var results []*T
	err := db.WithContext(ctx).Where(column+" = ?", id).Order("id").Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
