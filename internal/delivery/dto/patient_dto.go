package dto

import "home-visit-planner/internal/domain/entity"

// PatientRequest is one row of the /process and /patients request bodies.
type PatientRequest struct {
	PatientID entity.PatientID   `json:"patientid" validate:"required"`
	VisitDate string             `json:"visitDate" validate:"required"`
	Period    entity.VisitPeriod `json:"period"`
	Address   string             `json:"address"`
}

// EnrichedPatientResponse is one row of the /process response: the input
// fields plus the computed visit date, remaining days, and coordinates.
// Latitude and longitude are null when the address did not resolve.
type EnrichedPatientResponse struct {
	PatientID     entity.PatientID   `json:"patientid"`
	VisitDate     string             `json:"visitDate"`
	Period        entity.VisitPeriod `json:"period"`
	Address       string             `json:"address"`
	ResDate       string             `json:"resDate"`
	RemainingDays int                `json:"remaining_days"`
	Latitude      *float64           `json:"latitude"`
	Longitude     *float64           `json:"longitude"`
}

// PatientSummaryResponse is one row of the /patients response.
// Location holds [latitude, longitude]; both entries are null when the
// address did not resolve.
type PatientSummaryResponse struct {
	PatientID     entity.PatientID `json:"patientid"`
	RemainingDays int              `json:"remaining_days"`
	Location      []*float64       `json:"location"`
}
