package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/labstack/gommon/log"

	"github.com/abjp/driver-payroll/entity"
	driverUsecase "github.com/abjp/driver-payroll/usecase/driver"
)

func (h *PayrollHandler) ListDrivers(w http.ResponseWriter, r *http.Request) {
	drivers, err := h.Drivers.ListDrivers()
	if err != nil {
		log.Errorf("[ListDrivers] %s", err)
		respondError(w, http.StatusInternalServerError, "Failed to list drivers")
		return
	}
	respondSuccess(w, drivers)
}

func (h *PayrollHandler) GetDriver(w http.ResponseWriter, r *http.Request) {
	driverID := mux.Vars(r)["id"]

	details, err := h.Drivers.GetDriverDetails(driverID)
	if err != nil {
		log.Errorf("[GetDriver] %s: %s", driverID, err)
		respondError(w, http.StatusNotFound, "Driver not found")
		return
	}
	respondSuccess(w, details)
}

func (h *PayrollHandler) CreateDriver(w http.ResponseWriter, r *http.Request) {
	var req entity.DriverRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := h.Drivers.CreateDriver(req)
	switch {
	case errors.Is(err, driverUsecase.ErrMissingFields):
		respondError(w, http.StatusBadRequest, err.Error())
		return
	case errors.Is(err, driverUsecase.ErrAlreadyExists):
		respondError(w, http.StatusConflict, err.Error())
		return
	case err != nil:
		log.Errorf("[CreateDriver] %s", err)
		respondError(w, http.StatusInternalServerError, "Failed to create driver")
		return
	}
	respondSuccess(w, created)
}

func (h *PayrollHandler) UpdateDriver(w http.ResponseWriter, r *http.Request) {
	driverID := mux.Vars(r)["id"]

	var req entity.DriverRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.Drivers.UpdateDriver(driverID, req)
	if err != nil {
		log.Errorf("[UpdateDriver] %s: %s", driverID, err)
		respondError(w, http.StatusInternalServerError, "Failed to update driver")
		return
	}
	respondSuccess(w, updated)
}

func (h *PayrollHandler) DeleteDriver(w http.ResponseWriter, r *http.Request) {
	driverID := mux.Vars(r)["id"]

	if err := h.Drivers.DeleteDriver(driverID); err != nil {
		log.Errorf("[DeleteDriver] %s: %s", driverID, err)
		respondError(w, http.StatusInternalServerError, "Failed to delete driver")
		return
	}
	respondSuccess(w, map[string]string{"id_da_pessoa_entregadora": driverID})
}
