package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

const (
	// Vitals recorded at intake that the front desk does not measure.
	DefaultHeartRate = 72
	DefaultAllergies = "None"
)

// PatientVisit is one row per hospital visit.
type PatientVisit struct {
	PatientID            int64               `gorm:"column:patient_id;primaryKey;autoIncrement" json:"patient_id"`
	PatientName          string              `gorm:"column:patient_name;type:varchar(150);not null" json:"patient_name"`
	Gender               string              `gorm:"column:gender;type:varchar(20)" json:"gender"`
	Age                  int                 `gorm:"column:age;not null" json:"age"`
	Disease              string              `gorm:"column:disease;type:varchar(255)" json:"disease"`
	Priority             *string             `gorm:"column:priority;type:varchar(50)" json:"priority"`
	TimeSlot             *string             `gorm:"column:time_slot;type:varchar(50)" json:"time_slot"`
	BloodPressure        *string             `gorm:"column:blood_pressure;type:varchar(20)" json:"blood_pressure"`
	HeartRate            int                 `gorm:"column:heart_rate;not null" json:"heart_rate"`
	Allergies            string              `gorm:"column:allergies;type:varchar(255);not null" json:"allergies"`
	Temperature          decimal.NullDecimal `gorm:"column:temperature;type:numeric(5,2)" json:"temperature"`
	WeightKg             decimal.NullDecimal `gorm:"column:weight_kg;type:numeric(6,2)" json:"weight_kg"`
	PhoneNumber          string              `gorm:"column:phone_number;type:varchar(30)" json:"phone_number"`
	VisitDate            datatypes.Date      `gorm:"column:visit_date;type:date;not null;default:CURRENT_DATE" json:"visit_date"`
	DoctorName           string              `gorm:"column:doctor_name;type:varchar(100);not null" json:"doctor_name"`
	DoctorSpecialization string              `gorm:"column:doctor_specialization;type:varchar(100);not null" json:"doctor_specialization"`
}

func (PatientVisit) TableName() string {
	return "patients"
}

// AssignDoctor records the doctor chosen at intake. It is only called
// before the row is first inserted.
func (p *PatientVisit) AssignDoctor(doctor Doctor) {
	p.DoctorName = doctor.Name
	p.DoctorSpecialization = doctor.Specialization
}

// PatientVisitUpdate holds the columns an update may overwrite. The doctor
// columns have no field here: they are fixed when the visit is created.
type PatientVisitUpdate struct {
	PatientName   string
	Gender        string
	Age           int
	Disease       string
	Priority      *string
	TimeSlot      *string
	BloodPressure *string
	Temperature   decimal.NullDecimal
	WeightKg      decimal.NullDecimal
	PhoneNumber   string
}

// Columns maps the update onto column names, zero values included.
func (u PatientVisitUpdate) Columns() map[string]interface{} {
	return map[string]interface{}{
		"patient_name":   u.PatientName,
		"gender":         u.Gender,
		"age":            u.Age,
		"disease":        u.Disease,
		"priority":       u.Priority,
		"time_slot":      u.TimeSlot,
		"blood_pressure": u.BloodPressure,
		"temperature":    u.Temperature,
		"weight_kg":      u.WeightKg,
		"phone_number":   u.PhoneNumber,
	}
}
