package dao

import (
	"fmt"

	"github.com/abjp/driver-payroll/infra/db/model"

	"github.com/jinzhu/gorm"
)

// LastBackupDate returns the date (YYYY-MM-DD) of the most recent snapshot,
// or the empty string when none exists yet.
func (d *dao) LastBackupDate() (string, error) {
	var entry model.BackupLog
	err := d.db.Order("backup_date DESC").First(&entry).Error
	if gorm.IsRecordNotFoundError(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read backup log: %w", err)
	}
	return entry.BackupDate, nil
}

func (d *dao) CreateBackupLog(payload *model.BackupLog) error {
	if err := d.db.Create(payload).Error; err != nil {
		return fmt.Errorf("failed to save backup log: %w", err)
	}
	return nil
}

func (d *dao) CreateDriverBackup(payload *model.DriverBackup) error {
	if err := d.db.Create(payload).Error; err != nil {
		return fmt.Errorf("failed to save driver backup: %w", err)
	}
	return nil
}

func (d *dao) CreateAdvanceRequestBackup(payload *model.AdvanceRequestBackup) error {
	if err := d.db.Create(payload).Error; err != nil {
		return fmt.Errorf("failed to save advance request backup: %w", err)
	}
	return nil
}

func (d *dao) CreatePixKeyRecordBackup(payload *model.PixKeyRecordBackup) error {
	if err := d.db.Create(payload).Error; err != nil {
		return fmt.Errorf("failed to save pix record backup: %w", err)
	}
	return nil
}
