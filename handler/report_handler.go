package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/labstack/gommon/log"

	"github.com/abjp/driver-payroll/entity"
	"github.com/abjp/driver-payroll/report"
)

// ExportReport streams the payroll workbook for one stored batch.
func (h *PayrollHandler) ExportReport(w http.ResponseWriter, r *http.Request) {
	batchID := r.URL.Query().Get("batch_id")
	if batchID == "" {
		respondError(w, http.StatusBadRequest, "batch_id is required")
		return
	}

	record, err := h.Processing.GetResult(batchID)
	if err != nil {
		log.Errorf("[ExportReport] %s: %s", batchID, err)
		respondError(w, http.StatusNotFound, "Result not found")
		return
	}

	var result entity.BatchResult
	if err := json.Unmarshal([]byte(record.Result), &result); err != nil {
		respondError(w, http.StatusInternalServerError, "Stored result is unreadable")
		return
	}

	workbook, err := report.BuildWorkbook(result)
	if err != nil {
		log.Errorf("[ExportReport] workbook for %s: %s", batchID, err)
		respondError(w, http.StatusInternalServerError, "Failed to build report")
		return
	}
	defer workbook.Close()

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="pagamento_%s.xlsx"`, batchID))
	if err := workbook.Write(w); err != nil {
		log.Errorf("[ExportReport] stream for %s: %s", batchID, err)
	}
}
