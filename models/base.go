package models

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/shynebeauty/shyne_backend/config"
	"github.com/shynebeauty/shyne_backend/utils"
	"gorm.io/gorm"
)

// writes go through these helpers so every constraint violation reaches the
// caller as *utils.ConstraintError wrapping the driver error

func createRecord[T any](ctx context.Context, table string, obj *T) error {
	db := config.GetDB()
	return utils.ClassifyDBError(table, db.WithContext(ctx).Create(obj).Error)
}

// updateColumns updates the given columns of row id; a missing row is
// ErrorRecordNotFound
func updateColumns[T any](ctx context.Context, table string, id int, columns map[string]interface{}) error {
	db := config.GetDB()
	var model T
	result := db.WithContext(ctx).Model(&model).Where("id = ?", id).Updates(columns)
	if result.Error != nil {
		return utils.ClassifyDBError(table, result.Error)
	}
	if result.RowsAffected == 0 {
		// mysql reports changed rows, so an update to identical values is 0 too
		var n int64
		if err := db.WithContext(ctx).Model(&model).Where("id = ?", id).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return utils.ErrorRecordNotFound
		}
	}
	return nil
}

func deleteRecord[T any](ctx context.Context, table string, id int) error {
	db := config.GetDB()
	var model T
	result := db.WithContext(ctx).Delete(&model, id)
	if result.Error != nil {
		return utils.ClassifyDBError(table, result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.ErrorRecordNotFound
	}
	return nil
}

// deleteWhere removes dependents inside an owning row's delete transaction
func deleteWhere[T any](tx *gorm.DB, table string, column string, id int) (int64, error) {
	var model T
	result := tx.Where(column+" = ?", id).Delete(&model)
	if result.Error != nil {
		return 0, utils.ClassifyDBError(table, result.Error)
	}
	return result.RowsAffected, nil
}

func validateMoney(field string, d decimal.Decimal) error {
	if d.IsNegative() {
		return utils.NewValidationError(field, "gte=0")
	}
	return utils.ValidateDecimal(field, d, moneyPrecision, moneyScale)
}

func validateQuantity(field string, d decimal.Decimal) error {
	if d.IsNegative() {
		return utils.NewValidationError(field, "gte=0")
	}
	return utils.ValidateDecimal(field, d, quantityPrecision, quantityScale)
}
