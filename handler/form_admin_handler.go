package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/labstack/gommon/log"

	"github.com/abjp/driver-payroll/entity"
)

type formOperatorRequest struct {
	Operator string `json:"operator"`
}

func (h *PayrollHandler) OpenAdvanceForm(w http.ResponseWriter, r *http.Request) {
	h.setFormState(w, r, h.Advance.OpenForm)
}

func (h *PayrollHandler) CloseAdvanceForm(w http.ResponseWriter, r *http.Request) {
	h.setFormState(w, r, h.Advance.CloseForm)
}

func (h *PayrollHandler) setFormState(w http.ResponseWriter, r *http.Request, set func(string) error) {
	var req formOperatorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Operator == "" {
		respondError(w, http.StatusBadRequest, "operator must be specified")
		return
	}

	if err := set(req.Operator); err != nil {
		log.Errorf("[FormAdmin] %s", err)
		respondError(w, http.StatusInternalServerError, "Failed to change form state")
		return
	}
	respondSuccess(w, map[string]string{"operator": req.Operator})
}

func (h *PayrollHandler) ScheduleAdvanceForm(w http.ResponseWriter, r *http.Request) {
	var req entity.FormScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.Advance.Schedule(req); err != nil {
		log.Errorf("[ScheduleForm] %s", err)
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondSuccess(w, req)
}

func (h *PayrollHandler) ConfigureAdvanceFormAuto(w http.ResponseWriter, r *http.Request) {
	var req entity.FormAutoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.Advance.ConfigureAuto(req); err != nil {
		log.Errorf("[ConfigureFormAuto] %s", err)
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondSuccess(w, req)
}

func (h *PayrollHandler) GetAdvanceFormConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.Advance.GetConfig()
	if err != nil {
		log.Errorf("[GetFormConfig] %s", err)
		respondError(w, http.StatusInternalServerError, "Failed to read form config")
		return
	}
	respondSuccess(w, cfg)
}

func (h *PayrollHandler) ListAdvanceFormLogs(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			respondError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	logs, err := h.Advance.ListLogs(limit)
	if err != nil {
		log.Errorf("[ListFormLogs] %s", err)
		respondError(w, http.StatusInternalServerError, "Failed to list form logs")
		return
	}
	respondSuccess(w, logs)
}
