package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"hospital-records/internal/delivery/dto"
	"hospital-records/internal/usecase"
	"hospital-records/pkg/response"
	"hospital-records/pkg/validator"

	"github.com/gorilla/mux"
)

type PatientHandler struct {
	patientUsecase usecase.PatientVisitUsecase
	validator      *validator.CustomValidator
}

func NewPatientHandler(patientUsecase usecase.PatientVisitUsecase, validator *validator.CustomValidator) *PatientHandler {
	return &PatientHandler{
		patientUsecase: patientUsecase,
		validator:      validator,
	}
}

func (h *PatientHandler) CreatePatient(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePatientVisitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	created, err := h.patientUsecase.CreateVisit(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Error adding patient")
		return
	}

	response.Success(w, http.StatusCreated, "Patient added", created)
}

func (h *PatientHandler) GetAllPatients(w http.ResponseWriter, r *http.Request) {
	patients, err := h.patientUsecase.GetAllVisits(r.Context())
	if err != nil {
		response.InternalServerError(w, "Error fetching patients")
		return
	}

	response.Success(w, http.StatusOK, "Patients retrieved successfully", patients)
}

func (h *PatientHandler) GetPatient(w http.ResponseWriter, r *http.Request) {
	patientID, ok := parsePatientID(w, r)
	if !ok {
		return
	}

	patient, err := h.patientUsecase.GetVisit(r.Context(), patientID)
	if err != nil {
		if errors.Is(err, usecase.ErrPatientVisitNotFound) {
			response.NotFound(w, "Patient not found")
			return
		}
		response.InternalServerError(w, "Error fetching patient")
		return
	}

	response.Success(w, http.StatusOK, "Patient retrieved successfully", patient)
}

func (h *PatientHandler) UpdatePatient(w http.ResponseWriter, r *http.Request) {
	patientID, ok := parsePatientID(w, r)
	if !ok {
		return
	}

	var req dto.UpdatePatientVisitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	err := h.patientUsecase.UpdateVisit(r.Context(), patientID, &req)
	if err != nil {
		if errors.Is(err, usecase.ErrPatientVisitNotFound) {
			response.NotFound(w, "Patient not found")
			return
		}
		response.InternalServerError(w, "Update Failed")
		return
	}

	response.Success(w, http.StatusOK, "Patient updated", nil)
}

func (h *PatientHandler) DeletePatient(w http.ResponseWriter, r *http.Request) {
	patientID, ok := parsePatientID(w, r)
	if !ok {
		return
	}

	if err := h.patientUsecase.DeleteVisit(r.Context(), patientID); err != nil {
		response.InternalServerError(w, "Delete Failed")
		return
	}

	response.Success(w, http.StatusOK, "Patient deleted", nil)
}

func parsePatientID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	patientID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || patientID <= 0 {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return 0, false
	}
	return patientID, true
}
