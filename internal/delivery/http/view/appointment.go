// Package view renders the human-readable pages served to QR code holders.
package view

import (
	"bytes"
	"embed"
	"html/template"
	"io"

	"hospital-records/internal/delivery/dto"
)

//go:embed templates/*.html
var templateFS embed.FS

// html/template escapes every interpolated value for its context.
var appointmentTemplate = template.Must(template.ParseFS(templateFS, "templates/appointment.html"))

// RenderAppointment writes the appointment page. The page is rendered into
// a buffer first so a template failure never leaves a half-written body.
func RenderAppointment(w io.Writer, appointment *dto.AppointmentResponse) error {
	var buf bytes.Buffer
	if err := appointmentTemplate.Execute(&buf, appointment); err != nil {
		return err
	}
	_, err := buf.WriteTo(w)
	return err
}
