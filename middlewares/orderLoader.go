package middlewares

import (
	"context"

	"github.com/graph-gophers/dataloader/v7"
	"github.com/shynebeauty/shyne_backend/models"
	"gorm.io/gorm"
)

type orderItemReader struct {
	db *gorm.DB
}

func (r *orderItemReader) GetOrderItems(ctx context.Context, orderIds []int) []*dataloader.Result[[]*models.OrderItem] {
	var results []models.OrderItem
	err := r.db.WithContext(ctx).Where("order_id IN ?", orderIds).Order("id").Find(&results).Error
	if err != nil {
		return handleError[[]*models.OrderItem](len(orderIds), err)
	}

	return generateLoaderArrayResults(results, orderIds)
}

func GetOrderItems(ctx context.Context, orderId int) ([]*models.OrderItem, error) {
	loaders := For(ctx)
	return loaders.orderItemLoader.Load(ctx, orderId)()
}

// LoadOrderItems queues the item lists of many orders in one batch.
func LoadOrderItems(ctx context.Context, orderIds []int) dataloader.ThunkMany[[]*models.OrderItem] {
	loaders := For(ctx)
	return loaders.orderItemLoader.LoadMany(ctx, orderIds)
}

type orderEventReader struct {
	db *gorm.DB
}

func (r *orderEventReader) GetOrderStatusEvents(ctx context.Context, orderIds []int) []*dataloader.Result[[]*models.OrderStatusEvent] {
	var results []models.OrderStatusEvent
	err := r.db.WithContext(ctx).Where("order_id IN ?", orderIds).Order("created_at").Order("id").Find(&results).Error
	if err != nil {
		return handleError[[]*models.OrderStatusEvent](len(orderIds), err)
	}

	return generateLoaderArrayResults(results, orderIds)
}

func GetOrderStatusEvents(ctx context.Context, orderId int) ([]*models.OrderStatusEvent, error) {
	loaders := For(ctx)
	return loaders.orderEventLoader.Load(ctx, orderId)()
}
