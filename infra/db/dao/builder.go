package dao

import (
	"github.com/abjp/driver-payroll/infra/db/model"

	"github.com/jinzhu/gorm"
)

type DaoMethod interface {
	// Drivers
	ListDrivers() ([]model.Driver, error)
	GetDriverByID(driverID string) (model.Driver, error)
	CreateDriver(payload *model.Driver) error
	UpdateDriver(payload model.Driver) error
	DeleteDriver(driverID string) error
	ListActiveDriverIDs() ([]string, error)
	FindDriverByCPF(cpf string) (model.Driver, bool, error)

	// PIX key records
	CreatePixKeyRecord(payload *model.PixKeyRecord) error
	GetPixKeyRecordByID(id int64) (model.PixKeyRecord, error)
	ListPixKeyRecordsByStatus(status string) ([]model.PixKeyRecord, error)
	ListPixKeyRecords() ([]model.PixKeyRecord, error)
	UpdatePixKeyRecord(payload model.PixKeyRecord) error
	FindPixKeyOwner(key string) (model.PixKeyRecord, bool, error)
	GetLatestPixForDriver(driverID string) (model.PixKeyRecord, bool, error)
	ApprovePendingPixRecords(driverID, cpf, key string) (int64, error)

	// Advance requests
	CreateAdvanceRequest(payload *model.AdvanceRequest) error
	ListAdvanceRequests() ([]model.AdvanceRequest, error)

	// Form config and logs
	GetFormConfig() (model.FormConfig, error)
	SaveFormConfig(cfg model.FormConfig) error
	CreateFormLog(action, detail string, at int64) error
	ListFormLogs(limit int) ([]model.FormLog, error)

	// Processing results
	CreateProcessingResult(payload *model.ProcessingResult) error
	GetProcessingResultByBatchID(batchID string) (model.ProcessingResult, error)
	ListProcessingResults(limit int) ([]model.ProcessingResult, error)
	DeleteProcessingResult(batchID string) error

	// Backups
	LastBackupDate() (string, error)
	CreateBackupLog(payload *model.BackupLog) error
	CreateDriverBackup(payload *model.DriverBackup) error
	CreateAdvanceRequestBackup(payload *model.AdvanceRequestBackup) error
	CreatePixKeyRecordBackup(payload *model.PixKeyRecordBackup) error
}

type dao struct {
	db *gorm.DB
}

func NewDaoMethod(db *gorm.DB) DaoMethod {
	return &dao{db: db}
}
