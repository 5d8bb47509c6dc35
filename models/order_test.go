package models_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/shynebeauty/shyne_backend/config"
	"github.com/shynebeauty/shyne_backend/models"
	"github.com/shynebeauty/shyne_backend/testutil"
	"github.com/shynebeauty/shyne_backend/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderDefaults(t *testing.T) {
	testutil.OpenSQLite(t)
	ctx := context.Background()

	c := mustCustomer(t, ctx, "a@x.com")
	o := mustOrder(t, ctx, c.ID, "SB-1")

	stored, err := models.GetOrderByNumber(ctx, "SB-1")
	require.NoError(t, err)
	assert.Equal(t, o.ID, stored.ID)
	assert.Equal(t, models.OrderStatusPlaced, stored.Status)
	assert.Equal(t, models.OrderPlatformDirect, stored.Platform)
	assert.True(t, stored.TotalAmount.IsZero())
}

func TestOrderTimestamps(t *testing.T) {
	db := testutil.OpenSQLite(t)
	ctx := context.Background()

	placed := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	testutil.SetNow(db, placed)
	c := mustCustomer(t, ctx, "a@x.com")
	o := mustOrder(t, ctx, c.ID, "SB-1")
	assert.True(t, o.PlacedAt.Equal(placed))
	assert.True(t, o.UpdatedAt.Equal(placed))

	later := placed.Add(3 * time.Hour)
	testutil.SetNow(db, later)
	status := "Shipped"
	updated, err := models.UpdateOrder(ctx, o.ID, &models.UpdateOrderInput{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, "Shipped", updated.Status)
	assert.True(t, updated.PlacedAt.Equal(placed), updated.PlacedAt.String())
	assert.True(t, updated.UpdatedAt.Equal(later), updated.UpdatedAt.String())
}

func TestUpdateOrderMissing(t *testing.T) {
	testutil.OpenSQLite(t)
	status := "Cancelled"
	_, err := models.UpdateOrder(context.Background(), 42, &models.UpdateOrderInput{Status: &status})
	assert.ErrorIs(t, err, utils.ErrorRecordNotFound)
}

func TestOrderUniqueAndForeignKeys(t *testing.T) {
	db := testutil.OpenSQLite(t)
	ctx := context.Background()

	c := mustCustomer(t, ctx, "a@x.com")
	p := mustProduct(t, ctx, "SKU1", "1.00")
	o := mustOrder(t, ctx, c.ID, "SB-1")

	_, err := models.CreateOrder(ctx, &models.NewOrder{CustomerId: c.ID, OrderNumber: "SB-1"})
	assert.True(t, utils.IsUniqueViolation(err))
	_, err = models.CreateOrder(ctx, &models.NewOrder{CustomerId: 999, OrderNumber: "SB-2"})
	assert.True(t, utils.IsForeignKeyViolation(err))
	assert.EqualValues(t, 1, testutil.Count(t, db, "orders"))

	missingLot := 999
	for _, in := range []*models.NewOrderItem{
		{OrderId: 999, ProductId: p.ID, Quantity: 1, UnitPrice: decimal.NewFromInt(1)},
		{OrderId: o.ID, ProductId: 999, Quantity: 1, UnitPrice: decimal.NewFromInt(1)},
		{OrderId: o.ID, ProductId: p.ID, ProductBatchId: &missingLot, Quantity: 1, UnitPrice: decimal.NewFromInt(1)},
	} {
		_, err := models.CreateOrderItem(ctx, in)
		assert.True(t, utils.IsForeignKeyViolation(err))
	}
	_, err = models.AddOrderStatusEvent(ctx, &models.NewOrderStatusEvent{OrderId: 999, EventStatus: "Placed"})
	assert.True(t, utils.IsForeignKeyViolation(err))
	_, err = models.CreateShipment(ctx, &models.NewShipment{OrderId: 999})
	assert.True(t, utils.IsForeignKeyViolation(err))

	assert.EqualValues(t, 0, testutil.Count(t, db, "order_items"))
	assert.EqualValues(t, 0, testutil.Count(t, db, "order_status_events"))
	assert.EqualValues(t, 0, testutil.Count(t, db, "shipments"))
}

func TestOrderItemLineTotalIsExact(t *testing.T) {
	testutil.OpenSQLite(t)
	ctx := context.Background()

	c := mustCustomer(t, ctx, "a@x.com")
	p := mustProduct(t, ctx, "SKU1", "9.99")
	o := mustOrder(t, ctx, c.ID, "SB-1")
	mustOrderItem(t, ctx, o.ID, p.ID, nil, 2, "9.99")

	items, err := models.GetOrderItems(ctx, o.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "19.98", items[0].LineTotal().StringFixed(2))
	assert.True(t, items[0].LineTotal().Equal(decimal.RequireFromString("19.98")))
	assert.Nil(t, items[0].ProductBatchID)
}

func TestOrderItemKeepsPriceSnapshot(t *testing.T) {
	testutil.OpenSQLite(t)
	ctx := context.Background()

	c := mustCustomer(t, ctx, "a@x.com")
	p := mustProduct(t, ctx, "SKU1", "9.99")
	o := mustOrder(t, ctx, c.ID, "SB-1")
	item := mustOrderItem(t, ctx, o.ID, p.ID, nil, 1, "9.99")

	_, err := models.UpdateProduct(ctx, p.ID, &models.NewProduct{Sku: "SKU1", Name: p.Name, Price: decimal.RequireFromString("12.50")})
	require.NoError(t, err)

	items, err := models.GetOrderItems(ctx, o.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, item.ID, items[0].ID)
	assert.Equal(t, "9.99", items[0].UnitPrice.StringFixed(2))
}

func TestOrderItemRejectsNonPositiveQuantity(t *testing.T) {
	db := testutil.OpenSQLite(t)
	ctx := context.Background()

	c := mustCustomer(t, ctx, "a@x.com")
	p := mustProduct(t, ctx, "SKU1", "1.00")
	o := mustOrder(t, ctx, c.ID, "SB-1")

	for _, qty := range []int{0, -3} {
		_, err := models.CreateOrderItem(ctx, &models.NewOrderItem{OrderId: o.ID, ProductId: p.ID, Quantity: qty, UnitPrice: decimal.NewFromInt(1)})
		var ve *utils.ValidationError
		assert.ErrorAs(t, err, &ve)
	}
	assert.EqualValues(t, 0, testutil.Count(t, db, "order_items"))
}

func TestShipmentUniqueness(t *testing.T) {
	db := testutil.OpenSQLite(t)
	ctx := context.Background()

	c := mustCustomer(t, ctx, "a@x.com")
	o1 := mustOrder(t, ctx, c.ID, "SB-1")
	o2 := mustOrder(t, ctx, c.ID, "SB-2")
	o3 := mustOrder(t, ctx, c.ID, "SB-3")

	s1, err := models.CreateShipment(ctx, &models.NewShipment{OrderId: o1.ID, TrackingNumber: strPtr("1Z999")})
	require.NoError(t, err)

	// one shipment per order
	_, err = models.CreateShipment(ctx, &models.NewShipment{OrderId: o1.ID, TrackingNumber: strPtr("1Z998")})
	assert.True(t, utils.IsUniqueViolation(err))
	// tracking numbers are unique across orders
	_, err = models.CreateShipment(ctx, &models.NewShipment{OrderId: o2.ID, TrackingNumber: strPtr("1Z999")})
	assert.True(t, utils.IsUniqueViolation(err))
	assert.EqualValues(t, 1, testutil.Count(t, db, "shipments"))

	// blank tracking numbers are stored as NULL and never collide
	_, err = models.CreateShipment(ctx, &models.NewShipment{OrderId: o2.ID, TrackingNumber: strPtr("  ")})
	require.NoError(t, err)
	_, err = models.CreateShipment(ctx, &models.NewShipment{OrderId: o3.ID})
	require.NoError(t, err)

	shipment, err := models.GetOrderShipment(ctx, o1.ID)
	require.NoError(t, err)
	assert.Equal(t, s1.ID, shipment.ID)
	byTracking, err := models.GetShipmentByTrackingNumber(ctx, "1Z999")
	require.NoError(t, err)
	assert.Equal(t, o1.ID, byTracking.OrderID)
}

func TestUpdateShipment(t *testing.T) {
	testutil.OpenSQLite(t)
	ctx := context.Background()

	c := mustCustomer(t, ctx, "a@x.com")
	o := mustOrder(t, ctx, c.ID, "SB-1")
	s, err := models.CreateShipment(ctx, &models.NewShipment{OrderId: o.ID})
	require.NoError(t, err)

	shipped := time.Date(2024, 5, 2, 8, 0, 0, 0, time.UTC)
	delivered := shipped.Add(-time.Hour)
	_, err = models.UpdateShipment(ctx, s.ID, &models.NewShipment{OrderId: o.ID, ShippedAt: &shipped, DeliveredAt: &delivered})
	var ve *utils.ValidationError
	require.ErrorAs(t, err, &ve)

	delivered = shipped.Add(48 * time.Hour)
	updated, err := models.UpdateShipment(ctx, s.ID, &models.NewShipment{
		OrderId:        o.ID,
		Carrier:        strPtr("UPS"),
		TrackingNumber: strPtr("1Z999"),
		TrackingURL:    strPtr("https://www.ups.com/track?tracknum=1Z999"),
		ShippedAt:      &shipped,
		DeliveredAt:    &delivered,
	})
	require.NoError(t, err)
	assert.Equal(t, "UPS", *updated.Carrier)
	assert.True(t, updated.DeliveredAt.Equal(delivered))

	_, err = models.DeleteShipment(ctx, s.ID)
	require.NoError(t, err)
	_, err = models.GetOrderShipment(ctx, o.ID)
	assert.ErrorIs(t, err, utils.ErrorRecordNotFound)
}

func TestOrderStatusEventsAreAppendOnly(t *testing.T) {
	db := testutil.OpenSQLite(t)
	ctx := context.Background()

	c := mustCustomer(t, ctx, "a@x.com")
	o := mustOrder(t, ctx, c.ID, "SB-1")
	first, err := models.AddOrderStatusEvent(ctx, &models.NewOrderStatusEvent{OrderId: o.ID, EventStatus: "Placed"})
	require.NoError(t, err)
	_, err = models.AddOrderStatusEvent(ctx, &models.NewOrderStatusEvent{OrderId: o.ID, EventStatus: "Shipped", Message: strPtr("left the studio")})
	require.NoError(t, err)

	err = db.Model(&models.OrderStatusEvent{}).Where("id = ?", first.ID).Update("event_status", "Cancelled").Error
	assert.ErrorIs(t, err, config.ErrAppendOnly)
	err = db.Delete(&models.OrderStatusEvent{}, first.ID).Error
	assert.ErrorIs(t, err, config.ErrAppendOnly)

	events, err := models.GetOrderStatusEvents(ctx, o.ID)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "Placed", events[0].EventStatus)
	assert.Equal(t, "Shipped", events[1].EventStatus)

	// adding events never touches the order's own status
	stored, err := models.GetOrder(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPlaced, stored.Status)
}

func TestDeleteOrderCascades(t *testing.T) {
	db := testutil.OpenSQLite(t)
	ctx := context.Background()

	c := mustCustomer(t, ctx, "a@x.com")
	p := mustProduct(t, ctx, "SKU1", "9.99")
	b := mustBatch(t, ctx, "B1")
	lot := mustLot(t, ctx, b.ID, p.ID, "LOT1")
	o := mustOrder(t, ctx, c.ID, "SB-1")
	keep := mustOrder(t, ctx, c.ID, "SB-2")

	mustOrderItem(t, ctx, o.ID, p.ID, &lot.ID, 2, "9.99")
	mustOrderItem(t, ctx, o.ID, p.ID, nil, 1, "9.99")
	mustOrderItem(t, ctx, keep.ID, p.ID, nil, 1, "9.99")
	for _, status := range []string{"Placed", "Packed", "Shipped"} {
		_, err := models.AddOrderStatusEvent(ctx, &models.NewOrderStatusEvent{OrderId: o.ID, EventStatus: status})
		require.NoError(t, err)
	}
	_, err := models.AddOrderStatusEvent(ctx, &models.NewOrderStatusEvent{OrderId: keep.ID, EventStatus: "Placed"})
	require.NoError(t, err)
	_, err = models.CreateShipment(ctx, &models.NewShipment{OrderId: o.ID, TrackingNumber: strPtr("1Z999")})
	require.NoError(t, err)

	result, err := models.DeleteOrder(ctx, o.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, result.OrderItems)
	assert.EqualValues(t, 3, result.StatusEvents)
	assert.EqualValues(t, 1, result.Shipments)

	assert.EqualValues(t, 1, testutil.Count(t, db, "orders"))
	assert.EqualValues(t, 1, testutil.Count(t, db, "order_items"))
	assert.EqualValues(t, 1, testutil.Count(t, db, "order_status_events"))
	assert.EqualValues(t, 0, testutil.Count(t, db, "shipments"))
	// referenced rows stay
	assert.EqualValues(t, 1, testutil.Count(t, db, "customers"))
	assert.EqualValues(t, 1, testutil.Count(t, db, "product_batches"))

	_, err = models.GetOrder(ctx, o.ID)
	assert.ErrorIs(t, err, utils.ErrorRecordNotFound)
}

func TestDeleteOrderItem(t *testing.T) {
	db := testutil.OpenSQLite(t)
	ctx := context.Background()

	c := mustCustomer(t, ctx, "a@x.com")
	p := mustProduct(t, ctx, "SKU1", "1.00")
	o := mustOrder(t, ctx, c.ID, "SB-1")
	item := mustOrderItem(t, ctx, o.ID, p.ID, nil, 1, "1.00")

	_, err := models.DeleteOrderItem(ctx, item.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, testutil.Count(t, db, "order_items"))
	assert.EqualValues(t, 1, testutil.Count(t, db, "orders"))
}
