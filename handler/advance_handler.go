package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/labstack/gommon/log"

	"github.com/abjp/driver-payroll/entity"
	advanceUsecase "github.com/abjp/driver-payroll/usecase/advance"
)

// AdvanceFormStatus tells the public frontend whether to render the form.
func (h *PayrollHandler) AdvanceFormStatus(w http.ResponseWriter, r *http.Request) {
	open, err := h.Advance.FormOpen()
	if err != nil {
		log.Errorf("[AdvanceFormStatus] %s", err)
		respondError(w, http.StatusInternalServerError, "Failed to read form status")
		return
	}
	respondSuccess(w, map[string]bool{"open": open})
}

func (h *PayrollHandler) SubmitAdvance(w http.ResponseWriter, r *http.Request) {
	var sub entity.AdvanceSubmission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	request, err := h.Advance.Submit(sub)
	switch {
	case errors.Is(err, advanceUsecase.ErrFormClosed):
		respondError(w, http.StatusForbidden, "The advance form is closed")
		return
	case errors.Is(err, advanceUsecase.ErrMissingFields),
		errors.Is(err, advanceUsecase.ErrInvalidAmount):
		respondError(w, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		log.Errorf("[SubmitAdvance] %s", err)
		respondError(w, http.StatusInternalServerError, "Failed to store advance request")
		return
	}
	respondSuccess(w, request)
}

func (h *PayrollHandler) ListAdvanceRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := h.Advance.ListRequests(r.URL.Query().Get("date"))
	if err != nil {
		log.Errorf("[ListAdvanceRequests] %s", err)
		respondError(w, http.StatusInternalServerError, "Failed to list advance requests")
		return
	}
	respondSuccess(w, requests)
}
