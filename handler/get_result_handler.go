package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/labstack/gommon/log"
)

func (h *PayrollHandler) GetResult(w http.ResponseWriter, r *http.Request) {
	batchID := r.URL.Query().Get("batch_id")
	if batchID == "" {
		respondError(w, http.StatusBadRequest, "batch_id is required")
		return
	}

	record, err := h.Processing.GetResult(batchID)
	if err != nil {
		log.Errorf("[GetResult] %s: %s", batchID, err)
		respondError(w, http.StatusNotFound, "Result not found")
		return
	}

	// Re-inflate the stored summary so clients get structure, not a string.
	var summary json.RawMessage
	if err := json.Unmarshal([]byte(record.Result), &summary); err != nil {
		respondError(w, http.StatusInternalServerError, "Stored result is unreadable")
		return
	}

	respondSuccess(w, map[string]interface{}{
		"batch_id":    record.BatchID,
		"title":       record.Title,
		"create_time": record.CreateTime,
		"create_by":   record.CreateBy,
		"summary":     summary,
	})
}

func (h *PayrollHandler) ListResults(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			respondError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	records, err := h.Processing.ListResults(limit)
	if err != nil {
		log.Errorf("[ListResults] %s", err)
		respondError(w, http.StatusInternalServerError, "Failed to list results")
		return
	}

	// The serialized summaries are large; the listing carries metadata only.
	for i := range records {
		records[i].Result = ""
	}
	respondSuccess(w, records)
}

func (h *PayrollHandler) DeleteResult(w http.ResponseWriter, r *http.Request) {
	batchID := r.URL.Query().Get("batch_id")
	if batchID == "" {
		respondError(w, http.StatusBadRequest, "batch_id is required")
		return
	}

	if err := h.Processing.DeleteResult(batchID); err != nil {
		log.Errorf("[DeleteResult] %s: %s", batchID, err)
		respondError(w, http.StatusInternalServerError, "Failed to delete result")
		return
	}
	respondSuccess(w, map[string]string{"batch_id": batchID})
}
