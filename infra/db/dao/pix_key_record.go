package dao

import (
	"fmt"

	"github.com/abjp/driver-payroll/consts"
	"github.com/abjp/driver-payroll/infra/db/model"

	"github.com/jinzhu/gorm"
)

func (d *dao) CreatePixKeyRecord(payload *model.PixKeyRecord) error {
	if err := d.db.Create(payload).Error; err != nil {
		return fmt.Errorf("failed to save pix record: %w", err)
	}
	return nil
}

func (d *dao) GetPixKeyRecordByID(id int64) (model.PixKeyRecord, error) {
	var record model.PixKeyRecord
	if err := d.db.First(&record, id).Error; err != nil {
		return record, fmt.Errorf("pix record not found: %w", err)
	}
	return record, nil
}

func (d *dao) ListPixKeyRecordsByStatus(status string) ([]model.PixKeyRecord, error) {
	var records []model.PixKeyRecord
	if err := d.db.
		Where("status = ?", status).
		Order("data_registro DESC").
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list pix records: %w", err)
	}
	return records, nil
}

func (d *dao) ListPixKeyRecords() ([]model.PixKeyRecord, error) {
	var records []model.PixKeyRecord
	if err := d.db.Order("data_registro DESC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list pix records: %w", err)
	}
	return records, nil
}

func (d *dao) UpdatePixKeyRecord(payload model.PixKeyRecord) error {
	if err := d.db.Save(&payload).Error; err != nil {
		return fmt.Errorf("failed to update pix record: %w", err)
	}
	return nil
}

// FindPixKeyOwner returns the newest record holding the given key, so the
// public form can reject keys already claimed by someone else.
func (d *dao) FindPixKeyOwner(key string) (model.PixKeyRecord, bool, error) {
	var record model.PixKeyRecord
	err := d.db.
		Where("chave_pix = ?", key).
		Order("data_registro DESC").
		First(&record).Error
	if gorm.IsRecordNotFoundError(err) {
		return record, false, nil
	}
	if err != nil {
		return record, false, fmt.Errorf("failed to look up pix key: %w", err)
	}
	return record, true, nil
}

// GetLatestPixForDriver returns the driver's newest key submission.
func (d *dao) GetLatestPixForDriver(driverID string) (model.PixKeyRecord, bool, error) {
	var record model.PixKeyRecord
	err := d.db.
		Where("id_da_pessoa_entregadora = ?", driverID).
		Order("data_registro DESC").
		First(&record).Error
	if gorm.IsRecordNotFoundError(err) {
		return record, false, nil
	}
	if err != nil {
		return record, false, fmt.Errorf("failed to load pix record: %w", err)
	}
	return record, true, nil
}

// ApprovePendingPixRecords links pending submissions to a driver by cpf or
// key, then approves anything already linked but still pending. Returns the
// number of rows touched.
func (d *dao) ApprovePendingPixRecords(driverID, cpf, key string) (int64, error) {
	var updated int64

	if cpf != "" {
		res := d.db.Model(&model.PixKeyRecord{}).
			Where("cpf = ? AND (id_da_pessoa_entregadora IS NULL OR id_da_pessoa_entregadora = '')", cpf).
			Updates(map[string]interface{}{
				"id_da_pessoa_entregadora": driverID,
				"status":                   consts.PixStatusApproved,
			})
		if res.Error != nil {
			return updated, fmt.Errorf("failed to link pix records by cpf: %w", res.Error)
		}
		updated += res.RowsAffected
	}

	if key != "" {
		res := d.db.Model(&model.PixKeyRecord{}).
			Where("chave_pix = ? AND (id_da_pessoa_entregadora IS NULL OR id_da_pessoa_entregadora = '')", key).
			Updates(map[string]interface{}{
				"id_da_pessoa_entregadora": driverID,
				"status":                   consts.PixStatusApproved,
			})
		if res.Error != nil {
			return updated, fmt.Errorf("failed to link pix records by key: %w", res.Error)
		}
		updated += res.RowsAffected
	}

	res := d.db.Model(&model.PixKeyRecord{}).
		Where("id_da_pessoa_entregadora = ? AND (status IS NULL OR status = '' OR status = ?)",
			driverID, consts.PixStatusPending).
		Update("status", consts.PixStatusApproved)
	if res.Error != nil {
		return updated, fmt.Errorf("failed to approve pending pix records: %w", res.Error)
	}
	updated += res.RowsAffected

	return updated, nil
}
