package dao

import (
	"fmt"

	"github.com/abjp/driver-payroll/infra/db/model"

	"github.com/jinzhu/gorm"
)

// GetFormConfig returns the singleton config row, creating it closed when the
// table is empty.
func (d *dao) GetFormConfig() (model.FormConfig, error) {
	var cfg model.FormConfig
	err := d.db.Where("id = ?", 1).First(&cfg).Error
	if gorm.IsRecordNotFoundError(err) {
		cfg = model.FormConfig{ID: 1}
		if err := d.db.Create(&cfg).Error; err != nil {
			return cfg, fmt.Errorf("failed to create form config: %w", err)
		}
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to load form config: %w", err)
	}
	return cfg, nil
}

func (d *dao) SaveFormConfig(cfg model.FormConfig) error {
	cfg.ID = 1
	if err := d.db.Save(&cfg).Error; err != nil {
		return fmt.Errorf("failed to save form config: %w", err)
	}
	return nil
}

func (d *dao) CreateFormLog(action, detail string, at int64) error {
	entry := model.FormLog{Action: action, Detail: detail, At: at}
	if err := d.db.Create(&entry).Error; err != nil {
		return fmt.Errorf("failed to save form log: %w", err)
	}
	return nil
}

func (d *dao) ListFormLogs(limit int) ([]model.FormLog, error) {
	var logs []model.FormLog
	if err := d.db.Order("data_hora DESC, id DESC").Limit(limit).Find(&logs).Error; err != nil {
		return nil, fmt.Errorf("failed to list form logs: %w", err)
	}
	return logs, nil
}
