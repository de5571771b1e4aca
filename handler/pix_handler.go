package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/labstack/gommon/log"

	"github.com/abjp/driver-payroll/entity"
	"github.com/abjp/driver-payroll/infra/db/model"
	pixUsecase "github.com/abjp/driver-payroll/usecase/pix"
)

func (h *PayrollHandler) SubmitPix(w http.ResponseWriter, r *http.Request) {
	var sub entity.PixSubmission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	record, err := h.Pix.Submit(sub)
	switch {
	case errors.Is(err, pixUsecase.ErrMissingFields):
		respondError(w, http.StatusBadRequest, err.Error())
		return
	case errors.Is(err, pixUsecase.ErrKeyClaimed):
		respondError(w, http.StatusConflict, err.Error())
		return
	case err != nil:
		log.Errorf("[SubmitPix] %s", err)
		respondError(w, http.StatusInternalServerError, "Failed to store pix key")
		return
	}
	respondSuccess(w, record)
}

func (h *PayrollHandler) ListPendingPix(w http.ResponseWriter, r *http.Request) {
	records, err := h.Pix.ListPending()
	if err != nil {
		log.Errorf("[ListPendingPix] %s", err)
		respondError(w, http.StatusInternalServerError, "Failed to list pending pix keys")
		return
	}
	respondSuccess(w, records)
}

func (h *PayrollHandler) ApprovePix(w http.ResponseWriter, r *http.Request) {
	h.reviewPix(w, r, h.Pix.Approve)
}

func (h *PayrollHandler) RejectPix(w http.ResponseWriter, r *http.Request) {
	h.reviewPix(w, r, h.Pix.Reject)
}

func (h *PayrollHandler) reviewPix(w http.ResponseWriter, r *http.Request, review func(int64) (*model.PixKeyRecord, error)) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "id must be a valid integer")
		return
	}

	record, err := review(id)
	if err != nil {
		log.Errorf("[ReviewPix] %d: %s", id, err)
		respondError(w, http.StatusInternalServerError, "Failed to review pix key")
		return
	}
	respondSuccess(w, record)
}
