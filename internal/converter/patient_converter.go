package converter

import (
	"fmt"
	"time"

	"home-visit-planner/internal/delivery/dto"
	"home-visit-planner/internal/domain/entity"
)

const dateLayout = "2006-01-02"

// PatientRequestToEntity converts one enrichment-request row to a Patient.
func PatientRequestToEntity(req *dto.PatientRequest) (entity.Patient, error) {
	visitDate, err := time.Parse(dateLayout, req.VisitDate)
	if err != nil {
		return entity.Patient{}, fmt.Errorf("invalid visitDate %q: expected YYYY-MM-DD", req.VisitDate)
	}

	return entity.Patient{
		ID:        req.PatientID,
		VisitDate: visitDate,
		Period:    req.Period,
		Address:   req.Address,
	}, nil
}

// PatientToEnrichedResponse converts an enriched Patient to the /process row.
func PatientToEnrichedResponse(p *entity.Patient) *dto.EnrichedPatientResponse {
	res := &dto.EnrichedPatientResponse{
		PatientID:     p.ID,
		VisitDate:     p.VisitDate.Format(dateLayout),
		Period:        p.Period,
		Address:       p.Address,
		ResDate:       p.ResolvedDate.Format(dateLayout),
		RemainingDays: p.RemainingDays,
	}

	if p.Location != nil {
		lat, lon := p.Location.Lat, p.Location.Lon
		res.Latitude = &lat
		res.Longitude = &lon
	}

	return res
}

// PatientToSummaryResponse converts an enriched Patient to the /patients row.
// An unresolved location yields [null, null], matching the enrichment wire
// contract.
func PatientToSummaryResponse(p *entity.Patient) *dto.PatientSummaryResponse {
	location := []*float64{nil, nil}
	if p.Location != nil {
		lat, lon := p.Location.Lat, p.Location.Lon
		location = []*float64{&lat, &lon}
	}

	return &dto.PatientSummaryResponse{
		PatientID:     p.ID,
		RemainingDays: p.RemainingDays,
		Location:      location,
	}
}

// LocatedPatientToEntity converts one /plan_route patient entry to a Patient.
// Entries without two non-null location values are left unlocated; the
// proximity filter excludes them instead of crashing on them.
func LocatedPatientToEntity(req *dto.LocatedPatient) entity.Patient {
	p := entity.Patient{ID: req.PatientID}

	if req.RemainingDays != nil {
		p.RemainingDays = *req.RemainingDays
	}

	if len(req.Location) == 2 && req.Location[0] != nil && req.Location[1] != nil {
		p.Location = &entity.Coordinates{
			Lat: *req.Location[0],
			Lon: *req.Location[1],
		}
	}

	return p
}
