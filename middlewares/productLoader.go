package middlewares

import (
	"context"

	"github.com/graph-gophers/dataloader/v7"
	"github.com/shynebeauty/shyne_backend/models"
	"gorm.io/gorm"
)

type productReader struct {
	db *gorm.DB
}

func (r *productReader) getProducts(ctx context.Context, ids []int) []*dataloader.Result[*models.Product] {
	var results []models.Product
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&results).Error
	if err != nil {
		return handleError[*models.Product](len(ids), err)
	}

	return generateLoaderResults(results, ids)
}

func GetProduct(ctx context.Context, id int) (*models.Product, error) {
	loaders := For(ctx)
	return loaders.productLoader.Load(ctx, id)()
}

func LoadProducts(ctx context.Context, ids []int) dataloader.ThunkMany[*models.Product] {
	loaders := For(ctx)
	return loaders.productLoader.LoadMany(ctx, ids)
}

type productBatchReader struct {
	db *gorm.DB
}

func (r *productBatchReader) getProductBatches(ctx context.Context, ids []int) []*dataloader.Result[*models.ProductBatch] {
	var results []models.ProductBatch
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&results).Error
	if err != nil {
		return handleError[*models.ProductBatch](len(ids), err)
	}

	return generateLoaderResults(results, ids)
}

// GetProductBatch resolves the lot an order item was sold from.
func GetProductBatch(ctx context.Context, id int) (*models.ProductBatch, error) {
	loaders := For(ctx)
	return loaders.productBatchLoader.Load(ctx, id)()
}

func LoadProductBatches(ctx context.Context, ids []int) dataloader.ThunkMany[*models.ProductBatch] {
	loaders := For(ctx)
	return loaders.productBatchLoader.LoadMany(ctx, ids)
}
