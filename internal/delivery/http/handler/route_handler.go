package handler

import (
	"encoding/json"
	"net/http"

	"home-visit-planner/internal/converter"
	"home-visit-planner/internal/delivery/dto"
	"home-visit-planner/internal/domain/entity"
	"home-visit-planner/internal/usecase"
	"home-visit-planner/pkg/response"
	"home-visit-planner/pkg/validator"
)

// RouteHandler serves the routing pipeline endpoint.
type RouteHandler struct {
	planUsecase usecase.PlanRouteUsecase
	validator   *validator.CustomValidator
}

func NewRouteHandler(planUsecase usecase.PlanRouteUsecase, validator *validator.CustomValidator) *RouteHandler {
	return &RouteHandler{
		planUsecase: planUsecase,
		validator:   validator,
	}
}

// PlanRoute selects today's visit list for the doctor and computes the
// leg-by-leg travel distances along it.
func (h *RouteHandler) PlanRoute(w http.ResponseWriter, r *http.Request) {
	var req dto.PlanRouteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.BadRequest(w, h.validator.Message(err))
		return
	}

	doctor := entity.Coordinates{
		Lat: req.DoctorLocation[0],
		Lon: req.DoctorLocation[1],
	}

	patients := make([]entity.Patient, 0, len(req.Patients))
	for i := range req.Patients {
		patients = append(patients, converter.LocatedPatientToEntity(&req.Patients[i]))
	}

	result, err := h.planUsecase.PlanRoute(r.Context(), doctor, patients, req.EmergencyCalls)
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	// Route plan entries are the selected request entries, echoed unchanged.
	byID := make(map[string]dto.LocatedPatient, len(req.Patients))
	for _, p := range req.Patients {
		if _, ok := byID[p.PatientID.String()]; !ok {
			byID[p.PatientID.String()] = p
		}
	}

	plan := make([]dto.LocatedPatient, 0, len(result.Plan))
	for _, p := range result.Plan {
		plan = append(plan, byID[p.ID.String()])
	}

	response.JSON(w, http.StatusOK, dto.PlanRouteResponse{
		RoutePlan:      plan,
		RouteDistances: result.Distances,
		TotalPatients:  len(plan),
	})
}
