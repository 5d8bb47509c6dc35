package models

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/shynebeauty/shyne_backend/utils"
)

type BatchIngredient struct {
	ID           int             `gorm:"primaryKey" json:"id"`
	BatchID      int             `gorm:"not null;index" json:"batch_id"`
	Batch        *Batch          `gorm:"foreignKey:BatchID;constraint:OnDelete:CASCADE" json:"-"`
	IngredientID int             `gorm:"not null;index" json:"ingredient_id"`
	Ingredient   *Ingredient     `gorm:"foreignKey:IngredientID;constraint:OnDelete:RESTRICT" json:"-"`
	QuantityUsed decimal.Decimal `gorm:"type:decimal(10,3);not null" json:"quantity_used"`
	Unit         string          `gorm:"size:30;not null;default:'g'" json:"unit"`
}

// NewBatchIngredient records consumption only; ingredient stock is not touched.
type NewBatchIngredient struct {
	BatchId      int             `json:"batch_id" binding:"required"`
	IngredientId int             `json:"ingredient_id" binding:"required"`
	QuantityUsed decimal.Decimal `json:"quantity_used"`
	Unit         string          `json:"unit" binding:"omitempty,max=30"`
}

func (input *NewBatchIngredient) validate() error {
	if err := utils.ValidateInput(input); err != nil {
		return err
	}
	return validateQuantity("quantity_used", input.QuantityUsed)
}

func CreateBatchIngredient(ctx context.Context, input *NewBatchIngredient) (*BatchIngredient, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	line := BatchIngredient{
		BatchID:      input.BatchId,
		IngredientID: input.IngredientId,
		QuantityUsed: input.QuantityUsed,
		Unit:         input.Unit,
	}
	if err := createRecord(ctx, tableBatchIngredients, &line); err != nil {
		return nil, err
	}
	return &line, nil
}

func DeleteBatchIngredient(ctx context.Context, id int) (*BatchIngredient, error) {
	result, err := utils.FetchModel[BatchIngredient](ctx, id)
	if err != nil {
		return nil, err
	}
	if err := deleteRecord[BatchIngredient](ctx, tableBatchIngredients, id); err != nil {
		return nil, err
	}
	return result, nil
}
