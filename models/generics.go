package models

import (
	"context"

	"github.com/shynebeauty/shyne_backend/utils"
)

// first find in redis, then in db, cache result
// (may return RecordNotFound error)
func GetResource[T any](ctx context.Context, id int) (*T, error) {
	// find in redis
	result, err := utils.RetrieveRedis[T](id)
	if err != nil {
		return nil, err
	}
	if result != nil {
		return result, nil
	}

	result, err = utils.FetchModel[T](ctx, id)
	if err != nil {
		return nil, err
	}

	if err := utils.StoreRedis[T](result, id); err != nil {
		return nil, err
	}
	return result, nil
}
