package models

import (
	"context"
	"strings"
	"time"

	"github.com/shynebeauty/shyne_backend/utils"
)

// Shipment is one-to-one with Order through the unique order_id.
type Shipment struct {
	ID             int        `gorm:"primaryKey" json:"id"`
	OrderID        int        `gorm:"not null;uniqueIndex" json:"order_id"`
	Order          *Order     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"-"`
	Carrier        *string    `gorm:"size:120" json:"carrier"`
	TrackingNumber *string    `gorm:"size:120;uniqueIndex" json:"tracking_number"`
	TrackingURL    *string    `gorm:"size:500" json:"tracking_url"`
	ShippedAt      *time.Time `json:"shipped_at"`
	DeliveredAt    *time.Time `json:"delivered_at"`
	CreatedAt      time.Time  `gorm:"autoCreateTime;not null" json:"created_at"`
}

type NewShipment struct {
	OrderId        int        `json:"order_id" binding:"required"`
	Carrier        *string    `json:"carrier" binding:"omitempty,max=120"`
	TrackingNumber *string    `json:"tracking_number" binding:"omitempty,max=120"`
	TrackingURL    *string    `json:"tracking_url" binding:"omitempty,url,max=500"`
	ShippedAt      *time.Time `json:"shipped_at"`
	DeliveredAt    *time.Time `json:"delivered_at"`
}

func (input *NewShipment) validate() error {
	// blank tracking numbers are stored as NULL so they never collide
	input.TrackingNumber = utils.NilIfEmpty(input.TrackingNumber)
	input.TrackingURL = utils.NilIfEmpty(input.TrackingURL)
	if err := utils.ValidateInput(input); err != nil {
		return err
	}
	if input.ShippedAt != nil && input.DeliveredAt != nil && input.DeliveredAt.Before(*input.ShippedAt) {
		return utils.NewValidationError("delivered_at", "gtefield=shipped_at")
	}
	return nil
}

func CreateShipment(ctx context.Context, input *NewShipment) (*Shipment, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	shipment := Shipment{
		OrderID:        input.OrderId,
		Carrier:        input.Carrier,
		TrackingNumber: input.TrackingNumber,
		TrackingURL:    input.TrackingURL,
		ShippedAt:      input.ShippedAt,
		DeliveredAt:    input.DeliveredAt,
	}
	if err := createRecord(ctx, tableShipments, &shipment); err != nil {
		return nil, err
	}
	return &shipment, nil
}

func UpdateShipment(ctx context.Context, id int, input *NewShipment) (*Shipment, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	if err := updateColumns[Shipment](ctx, tableShipments, id, map[string]interface{}{
		"order_id":        input.OrderId,
		"carrier":         input.Carrier,
		"tracking_number": input.TrackingNumber,
		"tracking_url":    input.TrackingURL,
		"shipped_at":      input.ShippedAt,
		"delivered_at":    input.DeliveredAt,
	}); err != nil {
		return nil, err
	}
	return GetShipment(ctx, id)
}

func DeleteShipment(ctx context.Context, id int) (*Shipment, error) {
	result, err := utils.FetchModel[Shipment](ctx, id)
	if err != nil {
		return nil, err
	}
	if err := deleteRecord[Shipment](ctx, tableShipments, id); err != nil {
		return nil, err
	}
	return result, nil
}

func GetShipment(ctx context.Context, id int) (*Shipment, error) {
	return utils.FetchModel[Shipment](ctx, id)
}

func GetShipmentByTrackingNumber(ctx context.Context, trackingNumber string) (*Shipment, error) {
	return utils.FetchModelBy[Shipment](ctx, "tracking_number", strings.TrimSpace(trackingNumber))
}
