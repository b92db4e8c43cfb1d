package handler

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"hospital-records/internal/delivery/http/view"
	"hospital-records/internal/usecase"
	"hospital-records/pkg/response"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

const QRPathPrefix = "/appointment/qr/"

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	log                *logrus.Logger
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, log *logrus.Logger) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		log:                log,
	}
}

// ResolveAppointment serves the visit behind a QR token, as JSON when asked
// for (?format=json or an Accept header naming application/json) and as an
// HTML page otherwise.
func (h *AppointmentHandler) ResolveAppointment(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]
	if token == "" {
		token = r.URL.Query().Get("token")
	}
	asJSON := wantsJSON(r)

	appointment, err := h.appointmentUsecase.ResolveAppointment(r.Context(), token)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrMissingToken):
			writeAppointmentError(w, asJSON, http.StatusBadRequest, "Missing token", "missing_token")
		case errors.Is(err, usecase.ErrTokenExpired):
			writeAppointmentError(w, asJSON, http.StatusUnauthorized, "Token expired", "token_expired")
		case errors.Is(err, usecase.ErrInvalidToken):
			writeAppointmentError(w, asJSON, http.StatusBadRequest, "Invalid token", "invalid_token")
		case errors.Is(err, usecase.ErrMalformedPayload):
			writeAppointmentError(w, asJSON, http.StatusBadRequest, "Invalid token payload", "malformed_payload")
		case errors.Is(err, usecase.ErrAppointmentNotFound):
			writeAppointmentError(w, asJSON, http.StatusNotFound, "Appointment not found", "not_found")
		default:
			writeAppointmentError(w, asJSON, http.StatusInternalServerError, "Error fetching appointment", "internal_error")
		}
		return
	}

	if asJSON {
		response.Success(w, http.StatusOK, "Appointment retrieved successfully", appointment)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := view.RenderAppointment(w, appointment); err != nil {
		h.log.Errorf("Failed to render appointment page: %+v", err)
		writeAppointmentError(w, false, http.StatusInternalServerError, "Error rendering appointment", "internal_error")
	}
}

// RedirectToQR forwards the short /appointment/{token} form to the
// canonical QR path. The token is not inspected here.
func (h *AppointmentHandler) RedirectToQR(w http.ResponseWriter, r *http.Request) {
	target := QRPathPrefix + url.PathEscape(mux.Vars(r)["token"])
	if r.URL.RawQuery != "" {
		target += "?" + r.URL.RawQuery
	}
	http.Redirect(w, r, target, http.StatusFound)
}

func wantsJSON(r *http.Request) bool {
	switch r.URL.Query().Get("format") {
	case "json":
		return true
	case "html":
		return false
	}
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}

func writeAppointmentError(w http.ResponseWriter, asJSON bool, status int, message, code string) {
	if asJSON {
		response.ErrorWithCode(w, status, message, code)
		return
	}
	http.Error(w, message, status)
}
