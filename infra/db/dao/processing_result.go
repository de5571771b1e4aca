package dao

import (
	"fmt"

	"github.com/abjp/driver-payroll/infra/db/model"
)

func (d *dao) CreateProcessingResult(payload *model.ProcessingResult) error {
	if err := d.db.Create(payload).Error; err != nil {
		return fmt.Errorf("failed to save processing result: %w", err)
	}
	return nil
}

func (d *dao) GetProcessingResultByBatchID(batchID string) (model.ProcessingResult, error) {
	var result model.ProcessingResult
	if err := d.db.Where("batch_id = ?", batchID).First(&result).Error; err != nil {
		return result, fmt.Errorf("processing result not found: %w", err)
	}
	return result, nil
}

func (d *dao) ListProcessingResults(limit int) ([]model.ProcessingResult, error) {
	var results []model.ProcessingResult
	if err := d.db.Order("create_time DESC").Limit(limit).Find(&results).Error; err != nil {
		return nil, fmt.Errorf("failed to list processing results: %w", err)
	}
	return results, nil
}

func (d *dao) DeleteProcessingResult(batchID string) error {
	if err := d.db.Where("batch_id = ?", batchID).Delete(&model.ProcessingResult{}).Error; err != nil {
		return fmt.Errorf("failed to delete processing result: %w", err)
	}
	return nil
}
