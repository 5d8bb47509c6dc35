package models

import (
	"context"
	"strings"
	"time"

	"github.com/shynebeauty/shyne_backend/utils"
)

// ProductBatch is a lot: the units of one product yielded by one batch.
type ProductBatch struct {
	ID             int        `gorm:"primaryKey" json:"id"`
	BatchID        int        `gorm:"not null;index" json:"batch_id"`
	Batch          *Batch     `gorm:"foreignKey:BatchID;constraint:OnDelete:CASCADE" json:"-"`
	ProductID      int        `gorm:"not null;index" json:"product_id"`
	Product        *Product   `gorm:"foreignKey:ProductID;constraint:OnDelete:RESTRICT" json:"-"`
	LotNumber      string     `gorm:"size:120;not null;uniqueIndex" json:"lot_number"`
	UnitsProduced  int        `gorm:"not null;default:0" json:"units_produced"`
	UnitsAvailable int        `gorm:"not null;default:0" json:"units_available"`
	ExpiryDate     *time.Time `gorm:"type:date" json:"expiry_date"`
	CreatedAt      time.Time  `gorm:"autoCreateTime;not null" json:"created_at"`
}

type NewProductBatch struct {
	BatchId        int        `json:"batch_id" binding:"required"`
	ProductId      int        `json:"product_id" binding:"required"`
	LotNumber      string     `json:"lot_number" binding:"required,max=120"`
	UnitsProduced  int        `json:"units_produced" binding:"gte=0"`
	UnitsAvailable int        `json:"units_available" binding:"gte=0"`
	ExpiryDate     *time.Time `json:"expiry_date"`
}

func (input *NewProductBatch) validate() error {
	input.LotNumber = strings.TrimSpace(input.LotNumber)
	if err := utils.ValidateInput(input); err != nil {
		return err
	}
	if input.ExpiryDate != nil {
		d := truncateToDate(*input.ExpiryDate)
		input.ExpiryDate = &d
	}
	return nil
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func CreateProductBatch(ctx context.Context, input *NewProductBatch) (*ProductBatch, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	lot := ProductBatch{
		BatchID:        input.BatchId,
		ProductID:      input.ProductId,
		LotNumber:      input.LotNumber,
		UnitsProduced:  input.UnitsProduced,
		UnitsAvailable: input.UnitsAvailable,
		ExpiryDate:     input.ExpiryDate,
	}
	if err := createRecord(ctx, tableProductBatches, &lot); err != nil {
		return nil, err
	}
	return &lot, nil
}

func UpdateProductBatch(ctx context.Context, id int, input *NewProductBatch) (*ProductBatch, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	if err := updateColumns[ProductBatch](ctx, tableProductBatches, id, map[string]interface{}{
		"batch_id":        input.BatchId,
		"product_id":      input.ProductId,
		"lot_number":      input.LotNumber,
		"units_produced":  input.UnitsProduced,
		"units_available": input.UnitsAvailable,
		"expiry_date":     input.ExpiryDate,
	}); err != nil {
		return nil, err
	}
	return GetProductBatch(ctx, id)
}

func DeleteProductBatch(ctx context.Context, id int) (*ProductBatch, error) {
	result, err := utils.FetchModel[ProductBatch](ctx, id)
	if err != nil {
		return nil, err
	}
	if err := deleteRecord[ProductBatch](ctx, tableProductBatches, id); err != nil {
		return nil, err
	}
	return result, nil
}

func GetProductBatch(ctx context.Context, id int) (*ProductBatch, error) {
	return utils.FetchModel[ProductBatch](ctx, id)
}

func GetProductBatchByLot(ctx context.Context, lotNumber string) (*ProductBatch, error) {
	return utils.FetchModelBy[ProductBatch](ctx, "lot_number", strings.TrimSpace(lotNumber))
}

// GetLotOrderItems traces a lot to the order items it was sold on.
func GetLotOrderItems(ctx context.Context, productBatchId int) ([]*OrderItem, error) {
	return utils.FetchModelsWhere[OrderItem](ctx, "product_batch_id", productBatchId)
}
