package dto

import "home-visit-planner/internal/domain/entity"

// LocatedPatient is a patient entry in the /plan_route request and in the
// resulting route plan. Location is [latitude, longitude]; entries without a
// usable location cannot be evaluated by the proximity filter.
type LocatedPatient struct {
	PatientID     entity.PatientID `json:"patientid" validate:"required"`
	RemainingDays *int             `json:"remaining_days,omitempty"`
	Location      []*float64       `json:"location" validate:"omitempty,max=2"`
}

// PlanRouteRequest is the /plan_route request body.
type PlanRouteRequest struct {
	DoctorLocation []float64          `json:"doctor_location" validate:"required,len=2"`
	Patients       []LocatedPatient   `json:"patients" validate:"dive"`
	EmergencyCalls []entity.PatientID `json:"emergency_calls"`
}

// PlanRouteResponse is the /plan_route response body. RoutePlan entries are
// the selected input patients unchanged; RouteDistances[0] is the doctor to
// the first stop, RouteDistances[i] the leg between consecutive stops.
type PlanRouteResponse struct {
	RoutePlan      []LocatedPatient `json:"route_plan"`
	RouteDistances []float64        `json:"route_distances"`
	TotalPatients  int              `json:"total_patients"`
}
