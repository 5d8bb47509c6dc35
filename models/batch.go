package models

import (
	"context"
	"strings"
	"time"

	"github.com/shynebeauty/shyne_backend/config"
	"github.com/shynebeauty/shyne_backend/utils"
	"gorm.io/gorm"
)

// Batch is a production run. Its ingredient lines and product lots belong to
// it and are removed with it.
type Batch struct {
	ID        int        `gorm:"primaryKey" json:"id"`
	BatchCode string     `gorm:"size:80;not null;uniqueIndex" json:"batch_code"`
	Status    string     `gorm:"size:50;not null;default:'Open'" json:"status"`
	StartedAt time.Time  `gorm:"autoCreateTime;not null" json:"started_at"`
	EndedAt   *time.Time `json:"ended_at"`
	Notes     *string    `gorm:"type:text" json:"notes"`
}

type NewBatch struct {
	BatchCode string     `json:"batch_code" binding:"required,max=80"`
	Status    string     `json:"status" binding:"omitempty,max=50"`
	StartedAt *time.Time `json:"started_at"`
	EndedAt   *time.Time `json:"ended_at"`
	Notes     *string    `json:"notes"`
}

// BatchDeleteResult reports how many owned rows went with the batch.
type BatchDeleteResult struct {
	Batch            *Batch `json:"batch"`
	BatchIngredients int64  `json:"batch_ingredients"`
	ProductBatches   int64  `json:"product_batches"`
}

func (input *NewBatch) validate() error {
	input.BatchCode = strings.TrimSpace(input.BatchCode)
	if err := utils.ValidateInput(input); err != nil {
		return err
	}
	if input.StartedAt != nil && input.EndedAt != nil && input.EndedAt.Before(*input.StartedAt) {
		return utils.NewValidationError("ended_at", "gtefield=started_at")
	}
	return nil
}

func CreateBatch(ctx context.Context, input *NewBatch) (*Batch, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	batch := Batch{
		BatchCode: input.BatchCode,
		Status:    input.Status,
		EndedAt:   input.EndedAt,
		Notes:     input.Notes,
	}
	if input.StartedAt != nil {
		batch.StartedAt = input.StartedAt.UTC()
	}
	if err := createRecord(ctx, tableBatches, &batch); err != nil {
		return nil, err
	}
	return &batch, nil
}

func UpdateBatch(ctx context.Context, id int, input *NewBatch) (*Batch, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = BatchStatusOpen
	}
	columns := map[string]interface{}{
		"batch_code": input.BatchCode,
		"status":     status,
		"ended_at":   input.EndedAt,
		"notes":      input.Notes,
	}
	if input.StartedAt != nil {
		columns["started_at"] = input.StartedAt.UTC()
	}
	if err := updateColumns[Batch](ctx, tableBatches, id, columns); err != nil {
		return nil, err
	}
	return GetBatch(ctx, id)
}

// DeleteBatch removes the batch with its ingredient lines and product lots in
// one transaction. A lot that was sold (referenced by an order item) makes
// the whole delete fail.
func DeleteBatch(ctx context.Context, id int) (*BatchDeleteResult, error) {
	batch, err := utils.FetchModel[Batch](ctx, id)
	if err != nil {
		return nil, err
	}

	result := &BatchDeleteResult{Batch: batch}
	db := config.GetDB()
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		n, err := deleteWhere[BatchIngredient](tx, tableBatchIngredients, "batch_id", id)
		if err != nil {
			return err
		}
		result.BatchIngredients = n

		n, err = deleteWhere[ProductBatch](tx, tableProductBatches, "batch_id", id)
		if err != nil {
			return err
		}
		result.ProductBatches = n

		if err := tx.Delete(&Batch{}, id).Error; err != nil {
			return utils.ClassifyDBError(tableBatches, err)
		}
		return nil
	})
	if err != nil {
		config.LogError(config.GetLogger(), "batch.go", "DeleteBatch", "delete batch transaction", id, err)
		return nil, err
	}
	return result, nil
}

func GetBatch(ctx context.Context, id int) (*Batch, error) {
	return utils.FetchModel[Batch](ctx, id)
}

func GetBatchByCode(ctx context.Context, batchCode string) (*Batch, error) {
	return utils.FetchModelBy[Batch](ctx, "batch_code", strings.TrimSpace(batchCode))
}

func GetBatchIngredients(ctx context.Context, batchId int) ([]*BatchIngredient, error) {
	return utils.FetchModelsWhere[BatchIngredient](ctx, "batch_id", batchId)
}

// GetBatchLots lists the product lots the batch yielded.
func GetBatchLots(ctx context.Context, batchId int) ([]*ProductBatch, error) {
	return utils.FetchModelsWhere[ProductBatch](ctx, "batch_id", batchId)
}
