package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/labstack/gommon/log"

	"github.com/abjp/driver-payroll/consts"
	"github.com/abjp/driver-payroll/entity"
	"github.com/abjp/driver-payroll/usecase/processing"
)

func (h *PayrollHandler) ProcessBatch(w http.ResponseWriter, r *http.Request) {
	var req entity.ProcessBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validateProcessBatchRequest(req); err != nil {
		log.Errorf("[ProcessBatch] Invalid input: %s", err)
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	opts := entity.BatchOptions{
		DriverIDs:      req.DriverIDs,
		OnlyRegistered: req.OnlyRegistered,
	}
	if req.ReferenceDate != "" {
		parsed, err := time.Parse(consts.LayoutDate, req.ReferenceDate)
		if err != nil {
			respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid reference date: %s", req.ReferenceDate))
			return
		}
		refDate := time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC)
		opts.ReferenceDate = &refDate
	}

	record, result, err := h.Processing.RunBatch(req.Title, req.FilePaths, opts, req.Operator)
	switch {
	case errors.Is(err, processing.ErrBatchInFlight):
		respondError(w, http.StatusConflict, "A batch over these files is already running")
		return
	case errors.Is(err, processing.ErrNoRegisteredDrivers):
		respondError(w, http.StatusBadRequest, "No registered drivers to filter against")
		return
	case err != nil:
		log.Errorf("[ProcessBatch] failed: %s", err)
		respondError(w, http.StatusInternalServerError, "Failed to process batch")
		return
	}

	respondSuccess(w, map[string]interface{}{
		"batch_id": record.BatchID,
		"result":   result,
	})
}

func validateProcessBatchRequest(req entity.ProcessBatchRequest) error {
	if len(req.FilePaths) == 0 {
		return errors.New("at least one file path is required")
	}
	for _, path := range req.FilePaths {
		if strings.TrimSpace(path) == "" {
			return errors.New("empty path found in file paths")
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return fmt.Errorf("file does not exist: %s", path)
		}
	}
	if strings.TrimSpace(req.Operator) == "" {
		return errors.New("operator must be specified")
	}
	return nil
}
