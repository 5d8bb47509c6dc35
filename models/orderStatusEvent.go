package models

import (
	"context"
	"strings"
	"time"

	"github.com/shynebeauty/shyne_backend/config"
	"github.com/shynebeauty/shyne_backend/utils"
)

// OrderStatusEvent is the audit trail of an order's status changes.
// Rows are only ever appended (see config.AppendOnlyGuardPlugin).
type OrderStatusEvent struct {
	ID          int       `gorm:"primaryKey" json:"id"`
	OrderID     int       `gorm:"not null;index" json:"order_id"`
	Order       *Order    `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"-"`
	EventStatus string    `gorm:"size:60;not null;index" json:"event_status"`
	Message     *string   `gorm:"type:text" json:"message"`
	CreatedAt   time.Time `gorm:"autoCreateTime;not null" json:"created_at"`
}

type NewOrderStatusEvent struct {
	OrderId     int     `json:"order_id" binding:"required"`
	EventStatus string  `json:"event_status" binding:"required,max=60"`
	Message     *string `json:"message"`
}

// AddOrderStatusEvent appends to the trail. It does not change orders.status.
func AddOrderStatusEvent(ctx context.Context, input *NewOrderStatusEvent) (*OrderStatusEvent, error) {
	input.EventStatus = strings.TrimSpace(input.EventStatus)
	if err := utils.ValidateInput(input); err != nil {
		return nil, err
	}

	event := OrderStatusEvent{
		OrderID:     input.OrderId,
		EventStatus: input.EventStatus,
		Message:     input.Message,
	}
	if err := createRecord(ctx, tableOrderStatusEvents, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

// GetOrderStatusEvents returns the trail oldest first.
func GetOrderStatusEvents(ctx context.Context, orderId int) ([]*OrderStatusEvent, error) {
	db := config.GetDB()
	var results []*OrderStatusEvent
	err := db.WithContext(ctx).Where("order_id = ?", orderId).
		Order("created_at").Order("id").Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
