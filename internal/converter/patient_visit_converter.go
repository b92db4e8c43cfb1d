package converter

import (
	"time"

	"hospital-records/internal/delivery/dto"
	"hospital-records/internal/domain/entity"

	"gorm.io/datatypes"
)

const visitDateLayout = "2006-01-02"

// FormatVisitDate renders a DATE column as YYYY-MM-DD.
func FormatVisitDate(d datatypes.Date) string {
	t := time.Time(d)
	if t.IsZero() {
		return ""
	}
	return t.Format(visitDateLayout)
}

// CreateRequestToPatientVisit builds the row to insert. Doctor fields and
// store-assigned columns are filled in elsewhere.
func CreateRequestToPatientVisit(req *dto.CreatePatientVisitRequest) *entity.PatientVisit {
	visit := &entity.PatientVisit{
		PatientName:   req.PatientName,
		Gender:        req.Gender,
		Disease:       req.Disease,
		Priority:      optionalString(req.Priority),
		TimeSlot:      optionalString(req.TimeSlot),
		BloodPressure: optionalString(req.BP),
		HeartRate:     entity.DefaultHeartRate,
		Allergies:     entity.DefaultAllergies,
		Temperature:   req.Temp,
		WeightKg:      req.Weight,
		PhoneNumber:   req.Phone,
	}
	if req.Age != nil {
		visit.Age = *req.Age
	}
	return visit
}

func UpdateRequestToPatientVisitUpdate(req *dto.UpdatePatientVisitRequest) entity.PatientVisitUpdate {
	return entity.PatientVisitUpdate{
		PatientName:   req.PatientName,
		Gender:        req.Gender,
		Age:           req.Age,
		Disease:       req.Disease,
		Priority:      req.Priority,
		TimeSlot:      req.TimeSlot,
		BloodPressure: req.BloodPressure,
		Temperature:   req.Temperature,
		WeightKg:      req.WeightKg,
		PhoneNumber:   req.PhoneNumber,
	}
}

// PatientVisitToResponse converts a PatientVisit entity to PatientVisitResponse DTO
func PatientVisitToResponse(visit *entity.PatientVisit) *dto.PatientVisitResponse {
	if visit == nil {
		return nil
	}

	return &dto.PatientVisitResponse{
		PatientID:            visit.PatientID,
		PatientName:          visit.PatientName,
		Gender:               visit.Gender,
		Age:                  visit.Age,
		Disease:              visit.Disease,
		Priority:             visit.Priority,
		TimeSlot:             visit.TimeSlot,
		BloodPressure:        visit.BloodPressure,
		HeartRate:            visit.HeartRate,
		Allergies:            visit.Allergies,
		Temperature:          visit.Temperature,
		WeightKg:             visit.WeightKg,
		PhoneNumber:          visit.PhoneNumber,
		VisitDate:            FormatVisitDate(visit.VisitDate),
		DoctorName:           visit.DoctorName,
		DoctorSpecialization: visit.DoctorSpecialization,
	}
}

// PatientVisitsToResponses converts a slice of PatientVisit entities to slice of PatientVisitResponse DTOs
func PatientVisitsToResponses(visits []entity.PatientVisit) []dto.PatientVisitResponse {
	responses := make([]dto.PatientVisitResponse, len(visits))
	for i := range visits {
		responses[i] = *PatientVisitToResponse(&visits[i])
	}
	return responses
}

func PatientVisitToCreateResponse(visit *entity.PatientVisit, token string) *dto.CreatePatientVisitResponse {
	return &dto.CreatePatientVisitResponse{
		PatientID:            visit.PatientID,
		VisitDate:            FormatVisitDate(visit.VisitDate),
		QRToken:              token,
		DoctorName:           visit.DoctorName,
		DoctorSpecialization: visit.DoctorSpecialization,
	}
}

func PatientVisitToAppointment(visit *entity.PatientVisit) *dto.AppointmentResponse {
	return &dto.AppointmentResponse{
		PatientID:            visit.PatientID,
		PatientName:          visit.PatientName,
		Gender:               visit.Gender,
		Age:                  visit.Age,
		Disease:              visit.Disease,
		Priority:             derefString(visit.Priority),
		TimeSlot:             derefString(visit.TimeSlot),
		VisitDate:            FormatVisitDate(visit.VisitDate),
		PhoneNumber:          visit.PhoneNumber,
		DoctorName:           visit.DoctorName,
		DoctorSpecialization: visit.DoctorSpecialization,
	}
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
