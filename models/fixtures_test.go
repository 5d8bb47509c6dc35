package models_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/shynebeauty/shyne_backend/models"
	"github.com/stretchr/testify/require"
)

func mustCustomer(t *testing.T, ctx context.Context, email string) *models.Customer {
	t.Helper()
	c, err := models.CreateCustomer(ctx, &models.NewCustomer{FirstName: "Test", LastName: "Customer", Email: email})
	require.NoError(t, err)
	return c
}

func mustProduct(t *testing.T, ctx context.Context, sku string, price string) *models.Product {
	t.Helper()
	p, err := models.CreateProduct(ctx, &models.NewProduct{Sku: sku, Name: "Product " + sku, Price: decimal.RequireFromString(price)})
	require.NoError(t, err)
	return p
}

func mustIngredient(t *testing.T, ctx context.Context, name string) *models.Ingredient {
	t.Helper()
	i, err := models.CreateIngredient(ctx, &models.NewIngredient{Name: name, StockQuantity: decimal.RequireFromString("1000.5")})
	require.NoError(t, err)
	return i
}

func mustBatch(t *testing.T, ctx context.Context, code string) *models.Batch {
	t.Helper()
	b, err := models.CreateBatch(ctx, &models.NewBatch{BatchCode: code})
	require.NoError(t, err)
	return b
}

func mustLot(t *testing.T, ctx context.Context, batchId, productId int, lot string) *models.ProductBatch {
	t.Helper()
	pb, err := models.CreateProductBatch(ctx, &models.NewProductBatch{BatchId: batchId, ProductId: productId, LotNumber: lot, UnitsProduced: 10, UnitsAvailable: 10})
	require.NoError(t, err)
	return pb
}

func mustOrder(t *testing.T, ctx context.Context, customerId int, number string) *models.Order {
	t.Helper()
	o, err := models.CreateOrder(ctx, &models.NewOrder{CustomerId: customerId, OrderNumber: number})
	require.NoError(t, err)
	return o
}

func mustOrderItem(t *testing.T, ctx context.Context, orderId, productId int, lotId *int, qty int, price string) *models.OrderItem {
	t.Helper()
	item, err := models.CreateOrderItem(ctx, &models.NewOrderItem{
		OrderId:        orderId,
		ProductId:      productId,
		ProductBatchId: lotId,
		Quantity:       qty,
		UnitPrice:      decimal.RequireFromString(price),
	})
	require.NoError(t, err)
	return item
}

func strPtr(s string) *string {
	return &s
}
