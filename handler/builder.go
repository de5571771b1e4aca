package handler

import (
	"encoding/json"
	"net/http"

	advanceUsecase "github.com/abjp/driver-payroll/usecase/advance"
	backupUsecase "github.com/abjp/driver-payroll/usecase/backup"
	driverUsecase "github.com/abjp/driver-payroll/usecase/driver"
	pixUsecase "github.com/abjp/driver-payroll/usecase/pix"
	processingUsecase "github.com/abjp/driver-payroll/usecase/processing"
)

type PayrollHandler struct {
	Processing processingUsecase.ProcessingUsecase
	Drivers    driverUsecase.DriverUsecase
	Pix        pixUsecase.PixUsecase
	Advance    advanceUsecase.AdvanceUsecase
	Backup     backupUsecase.BackupUsecase
	UploadDir  string
}

func NewPayrollHandler(
	processing processingUsecase.ProcessingUsecase,
	drivers driverUsecase.DriverUsecase,
	pix pixUsecase.PixUsecase,
	advance advanceUsecase.AdvanceUsecase,
	backup backupUsecase.BackupUsecase,
	uploadDir string,
) *PayrollHandler {
	return &PayrollHandler{
		Processing: processing,
		Drivers:    drivers,
		Pix:        pix,
		Advance:    advance,
		Backup:     backup,
		UploadDir:  uploadDir,
	}
}

type APIResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func respondSuccess(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(APIResponse{
		Status: "success",
		Data:   data,
	})
}

func respondError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(APIResponse{
		Status:  "error",
		Message: message,
	})
}
