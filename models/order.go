package models

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/shynebeauty/shyne_backend/config"
	"github.com/shynebeauty/shyne_backend/utils"
	"gorm.io/gorm"
)

// Order owns its items, status events and shipment; they are removed with it.
// PlacedAt is fixed at insert, UpdatedAt moves on every update.
type Order struct {
	ID          int             `gorm:"primaryKey" json:"id"`
	CustomerID  int             `gorm:"not null;index" json:"customer_id"`
	Customer    *Customer       `gorm:"foreignKey:CustomerID;constraint:OnDelete:RESTRICT" json:"-"`
	OrderNumber string          `gorm:"size:100;not null;uniqueIndex" json:"order_number"`
	Platform    string          `gorm:"size:120;not null;default:'Direct'" json:"platform"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"total_amount"`
	Status      string          `gorm:"size:50;not null;default:'Placed';index" json:"status"`
	PlacedAt    time.Time       `gorm:"autoCreateTime;not null" json:"placed_at"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime;not null" json:"updated_at"`
}

type NewOrder struct {
	CustomerId  int             `json:"customer_id" binding:"required"`
	OrderNumber string          `json:"order_number" binding:"required,max=100"`
	Platform    string          `json:"platform" binding:"omitempty,max=120"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Status      string          `json:"status" binding:"omitempty,max=50"`
}

// UpdateOrderInput leaves nil fields unchanged.
type UpdateOrderInput struct {
	Platform    *string          `json:"platform" binding:"omitempty,max=120"`
	TotalAmount *decimal.Decimal `json:"total_amount"`
	Status      *string          `json:"status" binding:"omitempty,max=50"`
}

// OrderDeleteResult reports how many owned rows went with the order.
type OrderDeleteResult struct {
	Order        *Order `json:"order"`
	OrderItems   int64  `json:"order_items"`
	StatusEvents int64  `json:"status_events"`
	Shipments    int64  `json:"shipments"`
}

func (input *NewOrder) validate() error {
	input.OrderNumber = strings.TrimSpace(input.OrderNumber)
	if err := utils.ValidateInput(input); err != nil {
		return err
	}
	return validateMoney("total_amount", input.TotalAmount)
}

func (input *UpdateOrderInput) validate() error {
	if err := utils.ValidateInput(input); err != nil {
		return err
	}
	if input.TotalAmount != nil {
		return validateMoney("total_amount", *input.TotalAmount)
	}
	return nil
}

// CreateOrder stores the order header; total_amount is taken as given.
func CreateOrder(ctx context.Context, input *NewOrder) (*Order, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	order := Order{
		CustomerID:  input.CustomerId,
		OrderNumber: input.OrderNumber,
		Platform:    input.Platform,
		TotalAmount: input.TotalAmount,
		Status:      input.Status,
	}
	if err := createRecord(ctx, tableOrders, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func UpdateOrder(ctx context.Context, id int, input *UpdateOrderInput) (*Order, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	columns := make(map[string]interface{})
	if input.Platform != nil {
		columns["platform"] = *input.Platform
	}
	if input.TotalAmount != nil {
		columns["total_amount"] = *input.TotalAmount
	}
	if input.Status != nil {
		columns["status"] = *input.Status
	}
	if len(columns) == 0 {
		return GetOrder(ctx, id)
	}
	if err := updateColumns[Order](ctx, tableOrders, id, columns); err != nil {
		return nil, err
	}
	return GetOrder(ctx, id)
}

// DeleteOrder removes the order with its items, status events and shipment
// in one transaction.
func DeleteOrder(ctx context.Context, id int) (*OrderDeleteResult, error) {
	order, err := utils.FetchModel[Order](ctx, id)
	if err != nil {
		return nil, err
	}

	result := &OrderDeleteResult{Order: order}
	db := config.GetDB()
	ctx = utils.SetCascadeDeleteInContext(ctx)
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		n, err := deleteWhere[OrderItem](tx, tableOrderItems, "order_id", id)
		if err != nil {
			return err
		}
		result.OrderItems = n

		n, err = deleteWhere[OrderStatusEvent](tx, tableOrderStatusEvents, "order_id", id)
		if err != nil {
			return err
		}
		result.StatusEvents = n

		n, err = deleteWhere[Shipment](tx, tableShipments, "order_id", id)
		if err != nil {
			return err
		}
		result.Shipments = n

		if err := tx.Delete(&Order{}, id).Error; err != nil {
			return utils.ClassifyDBError(tableOrders, err)
		}
		return nil
	})
	if err != nil {
		config.LogError(config.GetLogger(), "order.go", "DeleteOrder", "delete order transaction", id, err)
		return nil, err
	}
	return result, nil
}

func GetOrder(ctx context.Context, id int) (*Order, error) {
	return utils.FetchModel[Order](ctx, id)
}

func GetOrderByNumber(ctx context.Context, orderNumber string) (*Order, error) {
	return utils.FetchModelBy[Order](ctx, "order_number", strings.TrimSpace(orderNumber))
}

func GetOrderItems(ctx context.Context, orderId int) ([]*OrderItem, error) {
	return utils.FetchModelsWhere[OrderItem](ctx, "order_id", orderId)
}

// GetOrderShipment returns ErrorRecordNotFound when the order has not shipped.
func GetOrderShipment(ctx context.Context, orderId int) (*Shipment, error) {
	return utils.FetchModelBy[Shipment](ctx, "order_id", orderId)
}

func ListOrders(ctx context.Context) ([]*Order, error) {
	db := config.GetDB()
	var results []*Order
	if err := db.WithContext(ctx).Order("placed_at").Order("id").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
