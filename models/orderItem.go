package models

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/shynebeauty/shyne_backend/utils"
)

// OrderItem snapshots the unit price at sale time; later product price
// changes do not reach it. ProductBatchID traces the lot when known.
type OrderItem struct {
	ID             int             `gorm:"primaryKey" json:"id"`
	OrderID        int             `gorm:"not null;index" json:"order_id"`
	Order          *Order          `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"-"`
	ProductID      int             `gorm:"not null;index" json:"product_id"`
	Product        *Product        `gorm:"foreignKey:ProductID;constraint:OnDelete:RESTRICT" json:"-"`
	ProductBatchID *int            `gorm:"index" json:"product_batch_id"`
	ProductBatch   *ProductBatch   `gorm:"foreignKey:ProductBatchID;constraint:OnDelete:RESTRICT" json:"-"`
	Quantity       int             `gorm:"not null" json:"quantity"`
	UnitPrice      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"unit_price"`
}

type NewOrderItem struct {
	OrderId        int             `json:"order_id" binding:"required"`
	ProductId      int             `json:"product_id" binding:"required"`
	ProductBatchId *int            `json:"product_batch_id"`
	Quantity       int             `json:"quantity" binding:"required,gt=0"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
}

// LineTotal is quantity × unit price, exact.
func (item OrderItem) LineTotal() decimal.Decimal {
	return item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
}

func (input *NewOrderItem) validate() error {
	if err := utils.ValidateInput(input); err != nil {
		return err
	}
	return validateMoney("unit_price", input.UnitPrice)
}

func CreateOrderItem(ctx context.Context, input *NewOrderItem) (*OrderItem, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	item := OrderItem{
		OrderID:        input.OrderId,
		ProductID:      input.ProductId,
		ProductBatchID: input.ProductBatchId,
		Quantity:       input.Quantity,
		UnitPrice:      input.UnitPrice,
	}
	if err := createRecord(ctx, tableOrderItems, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func DeleteOrderItem(ctx context.Context, id int) (*OrderItem, error) {
	result, err := utils.FetchModel[OrderItem](ctx, id)
	if err != nil {
		return nil, err
	}
	if err := deleteRecord[OrderItem](ctx, tableOrderItems, id); err != nil {
		return nil, err
	}
	return result, nil
}
