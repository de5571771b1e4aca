package dao

import (
	"fmt"

	"github.com/abjp/driver-payroll/consts"
	"github.com/abjp/driver-payroll/infra/db/model"

	"github.com/jinzhu/gorm"
)

func (d *dao) ListDrivers() ([]model.Driver, error) {
	var drivers []model.Driver
	if err := d.db.
		Order("status DESC").
		Order("recebedor ASC").
		Find(&drivers).Error; err != nil {
		return nil, fmt.Errorf("failed to list drivers: %w", err)
	}
	return drivers, nil
}

func (d *dao) GetDriverByID(driverID string) (model.Driver, error) {
	var driver model.Driver
	if err := d.db.Where("id_da_pessoa_entregadora = ?", driverID).First(&driver).Error; err != nil {
		return driver, fmt.Errorf("driver not found: %w", err)
	}
	return driver, nil
}

func (d *dao) CreateDriver(payload *model.Driver) error {
	if err := d.db.Create(payload).Error; err != nil {
		return fmt.Errorf("failed to create driver: %w", err)
	}
	return nil
}

func (d *dao) UpdateDriver(payload model.Driver) error {
	if err := d.db.Save(&payload).Error; err != nil {
		return fmt.Errorf("failed to update driver: %w", err)
	}
	return nil
}

func (d *dao) DeleteDriver(driverID string) error {
	if err := d.db.Where("id_da_pessoa_entregadora = ?", driverID).Delete(&model.Driver{}).Error; err != nil {
		return fmt.Errorf("failed to delete driver: %w", err)
	}
	return nil
}

func (d *dao) ListActiveDriverIDs() ([]string, error) {
	var drivers []model.Driver
	if err := d.db.
		Select("id_da_pessoa_entregadora").
		Where("status = ?", consts.DriverStatusActive).
		Find(&drivers).Error; err != nil {
		return nil, fmt.Errorf("failed to list active drivers: %w", err)
	}

	ids := make([]string, 0, len(drivers))
	for _, driver := range drivers {
		ids = append(ids, driver.DriverID)
	}
	return ids, nil
}

func (d *dao) FindDriverByCPF(cpf string) (model.Driver, bool, error) {
	var driver model.Driver
	err := d.db.Where("cpf = ?", cpf).First(&driver).Error
	if gorm.IsRecordNotFoundError(err) {
		return driver, false, nil
	}
	if err != nil {
		return driver, false, fmt.Errorf("failed to look up driver by cpf: %w", err)
	}
	return driver, true, nil
}
