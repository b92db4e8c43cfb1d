package dto

import (
	"github.com/shopspring/decimal"
)

// Request DTOs

// CreatePatientVisitRequest keeps the short field names the intake form posts.
type CreatePatientVisitRequest struct {
	PatientName string              `json:"patient_name" validate:"required,max=150"`
	Gender      string              `json:"gender" validate:"omitempty,max=20"`
	Age         *int                `json:"age" validate:"omitempty,gte=0,lte=150"`
	Disease     string              `json:"disease" validate:"omitempty,max=255"`
	Priority    string              `json:"priority" validate:"omitempty,max=50"`
	TimeSlot    string              `json:"time_slot" validate:"omitempty,max=50"`
	BP          string              `json:"bp" validate:"omitempty,max=20"`
	Temp        decimal.NullDecimal `json:"temp"`
	Weight      decimal.NullDecimal `json:"weight"`
	Phone       string              `json:"phone" validate:"omitempty,max=30"`
}

type UpdatePatientVisitRequest struct {
	PatientName   string              `json:"patient_name" validate:"required,max=150"`
	Gender        string              `json:"gender" validate:"omitempty,max=20"`
	Age           int                 `json:"age" validate:"gte=0,lte=150"`
	Disease       string              `json:"disease" validate:"omitempty,max=255"`
	Priority      *string             `json:"priority" validate:"omitempty,max=50"`
	TimeSlot      *string             `json:"time_slot" validate:"omitempty,max=50"`
	BloodPressure *string             `json:"blood_pressure" validate:"omitempty,max=20"`
	Temperature   decimal.NullDecimal `json:"temperature"`
	WeightKg      decimal.NullDecimal `json:"weight_kg"`
	PhoneNumber   string              `json:"phone_number" validate:"omitempty,max=30"`
}

// Response DTOs

type PatientVisitResponse struct {
	PatientID            int64               `json:"patient_id"`
	PatientName          string              `json:"patient_name"`
	Gender               string              `json:"gender"`
	Age                  int                 `json:"age"`
	Disease              string              `json:"disease"`
	Priority             *string             `json:"priority"`
	TimeSlot             *string             `json:"time_slot"`
	BloodPressure        *string             `json:"blood_pressure"`
	HeartRate            int                 `json:"heart_rate"`
	Allergies            string              `json:"allergies"`
	Temperature          decimal.NullDecimal `json:"temperature"`
	WeightKg             decimal.NullDecimal `json:"weight_kg"`
	PhoneNumber          string              `json:"phone_number"`
	VisitDate            string              `json:"visit_date"`
	DoctorName           string              `json:"doctor_name"`
	DoctorSpecialization string              `json:"doctor_specialization"`
}

type CreatePatientVisitResponse struct {
	PatientID            int64  `json:"patient_id"`
	VisitDate            string `json:"visit_date"`
	QRToken              string `json:"qr_token"`
	DoctorName           string `json:"doctor_name"`
	DoctorSpecialization string `json:"doctor_specialization"`
}

type PatientVisitListResponse struct {
	Patients []PatientVisitResponse `json:"patients"`
	Total    int                    `json:"total"`
}
