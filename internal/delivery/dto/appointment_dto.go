package dto

// AppointmentResponse is what a QR token holder may see about one visit.
// Vitals other than the visit basics are not exposed.
type AppointmentResponse struct {
	PatientID            int64  `json:"patient_id"`
	PatientName          string `json:"patient_name"`
	Gender               string `json:"gender"`
	Age                  int    `json:"age"`
	Disease              string `json:"disease"`
	Priority             string `json:"priority"`
	TimeSlot             string `json:"time_slot"`
	VisitDate            string `json:"visit_date"`
	PhoneNumber          string `json:"phone_number"`
	DoctorName           string `json:"doctor_name"`
	DoctorSpecialization string `json:"doctor_specialization"`
}
