package models

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/shynebeauty/shyne_backend/utils"
)

type Ingredient struct {
	ID               int             `gorm:"primaryKey" json:"id"`
	Name             string          `gorm:"size:200;not null;uniqueIndex" json:"name"`
	StockQuantity    decimal.Decimal `gorm:"type:decimal(10,3);not null;default:0" json:"stock_quantity"`
	Unit             string          `gorm:"size:30;not null;default:'g'" json:"unit"`
	SupplierName     *string         `gorm:"size:200" json:"supplier_name"`
	SupplierContact  *string         `gorm:"size:255" json:"supplier_contact"`
	ReorderThreshold decimal.Decimal `gorm:"type:decimal(10,3);not null;default:0" json:"reorder_threshold"`
	CreatedAt        time.Time       `gorm:"autoCreateTime;not null" json:"created_at"`
}

type NewIngredient struct {
	Name             string          `json:"name" binding:"required,max=200"`
	StockQuantity    decimal.Decimal `json:"stock_quantity"`
	Unit             string          `json:"unit" binding:"omitempty,max=30"`
	SupplierName     *string         `json:"supplier_name" binding:"omitempty,max=200"`
	SupplierContact  *string         `json:"supplier_contact" binding:"omitempty,max=255"`
	ReorderThreshold decimal.Decimal `json:"reorder_threshold"`
}

func (input *NewIngredient) validate() error {
	input.Name = strings.TrimSpace(input.Name)
	if err := utils.ValidateInput(input); err != nil {
		return err
	}
	if err := validateQuantity("stock_quantity", input.StockQuantity); err != nil {
		return err
	}
	return validateQuantity("reorder_threshold", input.ReorderThreshold)
}

func CreateIngredient(ctx context.Context, input *NewIngredient) (*Ingredient, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	ingredient := Ingredient{
		Name:             input.Name,
		StockQuantity:    input.StockQuantity,
		Unit:             input.Unit,
		SupplierName:     input.SupplierName,
		SupplierContact:  input.SupplierContact,
		ReorderThreshold: input.ReorderThreshold,
	}
	if err := createRecord(ctx, tableIngredients, &ingredient); err != nil {
		return nil, err
	}
	return &ingredient, nil
}

func UpdateIngredient(ctx context.Context, id int, input *NewIngredient) (*Ingredient, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	unit := input.Unit
	if unit == "" {
		unit = UnitGram
	}
	if err := updateColumns[Ingredient](ctx, tableIngredients, id, map[string]interface{}{
		"name":              input.Name,
		"stock_quantity":    input.StockQuantity,
		"unit":              unit,
		"supplier_name":     input.SupplierName,
		"supplier_contact":  input.SupplierContact,
		"reorder_threshold": input.ReorderThreshold,
	}); err != nil {
		return nil, err
	}
	return GetIngredient(ctx, id)
}

func DeleteIngredient(ctx context.Context, id int) (*Ingredient, error) {
	result, err := utils.FetchModel[Ingredient](ctx, id)
	if err != nil {
		return nil, err
	}
	if err := deleteRecord[Ingredient](ctx, tableIngredients, id); err != nil {
		return nil, err
	}
	return result, nil
}

func GetIngredient(ctx context.Context, id int) (*Ingredient, error) {
	return utils.FetchModel[Ingredient](ctx, id)
}

// GetIngredientUsages lists the batch lines that consumed the ingredient.
func GetIngredientUsages(ctx context.Context, ingredientId int) ([]*BatchIngredient, error) {
	return utils.FetchModelsWhere[BatchIngredient](ctx, "ingredient_id", ingredientId)
}
