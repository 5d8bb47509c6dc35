package models

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/shynebeauty/shyne_backend/utils"
)

type Product struct {
	ID               int             `gorm:"primaryKey" json:"id"`
	Sku              string          `gorm:"size:80;not null;uniqueIndex" json:"sku"`
	Name             string          `gorm:"size:200;not null" json:"name"`
	Description      *string         `gorm:"type:text" json:"description"`
	Price            decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Active           *bool           `gorm:"not null;default:true" json:"active"`
	ReorderThreshold int             `gorm:"not null;default:0" json:"reorder_threshold"`
	CreatedAt        time.Time       `gorm:"autoCreateTime;not null" json:"created_at"`
}

type NewProduct struct {
	Sku              string          `json:"sku" binding:"required,max=80"`
	Name             string          `json:"name" binding:"required,max=200"`
	Description      *string         `json:"description"`
	Price            decimal.Decimal `json:"price"`
	Active           *bool           `json:"active"`
	ReorderThreshold int             `json:"reorder_threshold" binding:"gte=0"`
}

func (input *NewProduct) validate() error {
	input.Sku = strings.TrimSpace(input.Sku)
	if err := utils.ValidateInput(input); err != nil {
		return err
	}
	return validateMoney("price", input.Price)
}

func CreateProduct(ctx context.Context, input *NewProduct) (*Product, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	product := Product{
		Sku:              input.Sku,
		Name:             input.Name,
		Description:      input.Description,
		Price:            input.Price,
		Active:           input.Active,
		ReorderThreshold: input.ReorderThreshold,
	}
	if err := createRecord(ctx, tableProducts, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// UpdateProduct changes the catalogue price only; order items keep the unit
// price they were sold at.
func UpdateProduct(ctx context.Context, id int, input *NewProduct) (*Product, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	columns := map[string]interface{}{
		"sku":               input.Sku,
		"name":              input.Name,
		"description":       input.Description,
		"price":             input.Price,
		"reorder_threshold": input.ReorderThreshold,
	}
	if input.Active != nil {
		columns["active"] = *input.Active
	}
	if err := updateColumns[Product](ctx, tableProducts, id, columns); err != nil {
		return nil, err
	}
	if err := utils.RemoveRedisItem[Product](id); err != nil {
		return nil, err
	}
	return GetProduct(ctx, id)
}

func ToggleActiveProduct(ctx context.Context, id int, isActive bool) (*Product, error) {
	if err := updateColumns[Product](ctx, tableProducts, id, map[string]interface{}{
		"active": isActive,
	}); err != nil {
		return nil, err
	}
	if err := utils.RemoveRedisItem[Product](id); err != nil {
		return nil, err
	}
	return GetProduct(ctx, id)
}

func DeleteProduct(ctx context.Context, id int) (*Product, error) {
	result, err := utils.FetchModel[Product](ctx, id)
	if err != nil {
		return nil, err
	}
	if err := deleteRecord[Product](ctx, tableProducts, id); err != nil {
		return nil, err
	}
	if err := utils.RemoveRedisItem[Product](id); err != nil {
		return nil, err
	}
	return result, nil
}

func GetProduct(ctx context.Context, id int) (*Product, error) {
	return GetResource[Product](ctx, id)
}

func GetProductBySku(ctx context.Context, sku string) (*Product, error) {
	return utils.FetchModelBy[Product](ctx, "sku", strings.TrimSpace(sku))
}

func GetProductOrderItems(ctx context.Context, productId int) ([]*OrderItem, error) {
	return utils.FetchModelsWhere[OrderItem](ctx, "product_id", productId)
}

// GetProductLots lists the production lots of a product.
func GetProductLots(ctx context.Context, productId int) ([]*ProductBatch, error) {
	return utils.FetchModelsWhere[ProductBatch](ctx, "product_id", productId)
}
