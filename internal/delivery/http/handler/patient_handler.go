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

// PatientHandler serves the enrichment pipeline endpoints.
type PatientHandler struct {
	enrichUsecase usecase.EnrichPatientsUsecase
	validator     *validator.CustomValidator
}

func NewPatientHandler(enrichUsecase usecase.EnrichPatientsUsecase, validator *validator.CustomValidator) *PatientHandler {
	return &PatientHandler{
		enrichUsecase: enrichUsecase,
		validator:     validator,
	}
}

// Process enriches patient rows with the resolved next-visit date, remaining
// days, and geocoded coordinates, echoing the input fields back.
func (h *PatientHandler) Process(w http.ResponseWriter, r *http.Request) {
	enriched, ok := h.enrich(w, r)
	if !ok {
		return
	}

	res := make([]*dto.EnrichedPatientResponse, 0, len(enriched))
	for i := range enriched {
		res = append(res, converter.PatientToEnrichedResponse(&enriched[i]))
	}

	response.JSON(w, http.StatusOK, res)
}

// List runs the same enrichment and returns the summary rows consumed by the
// routing pipeline: id, remaining days, and [lat, lon] location.
func (h *PatientHandler) List(w http.ResponseWriter, r *http.Request) {
	enriched, ok := h.enrich(w, r)
	if !ok {
		return
	}

	res := make([]*dto.PatientSummaryResponse, 0, len(enriched))
	for i := range enriched {
		res = append(res, converter.PatientToSummaryResponse(&enriched[i]))
	}

	response.JSON(w, http.StatusOK, res)
}

// enrich decodes, validates, and runs the enrichment pipeline. On failure it
// writes the 400 envelope and returns ok=false.
func (h *PatientHandler) enrich(w http.ResponseWriter, r *http.Request) ([]entity.Patient, bool) {
	var req []dto.PatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return nil, false
	}

	patients := make([]entity.Patient, 0, len(req))
	for i := range req {
		if err := h.validator.Validate(&req[i]); err != nil {
			response.BadRequest(w, h.validator.Message(err))
			return nil, false
		}

		patient, err := converter.PatientRequestToEntity(&req[i])
		if err != nil {
			response.BadRequest(w, err.Error())
			return nil, false
		}
		patients = append(patients, patient)
	}

	enriched, err := h.enrichUsecase.Enrich(r.Context(), patients)
	if err != nil {
		response.BadRequest(w, err.Error())
		return nil, false
	}

	return enriched, true
}
