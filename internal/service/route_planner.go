package service

import (
	"home-visit-planner/internal/domain/entity"
)

// FilterNearby returns the patients within radiusKm of the doctor's location,
// preserving input order. The 5 km default boundary is inclusive: a patient at
// exactly the radius is kept. Patients without a resolved location cannot be
// evaluated and are excluded.
func FilterNearby(doctor entity.Coordinates, patients []entity.Patient, radiusKm float64) []entity.Patient {
	nearby := make([]entity.Patient, 0, len(patients))
	for _, p := range patients {
		if p.Location == nil {
			continue
		}
		if doctor.DistanceKm(*p.Location) <= radiusKm {
			nearby = append(nearby, p)
		}
	}
	return nearby
}

// SelectRoute picks today's visit order from the proximity-filtered list.
//
// Emergencies always win: when there are at least `capacity` emergency
// patients, all of them are visited even beyond capacity (capacity is a soft
// floor in that branch, not a hard cap). Otherwise emergencies come first and
// the remaining slots are filled with leading regular patients. Relative input
// order is preserved within each tier, and entries are returned unchanged.
func SelectRoute(patients []entity.Patient, emergencyIDs map[string]struct{}, capacity int) []entity.Patient {
	emergencies := make([]entity.Patient, 0, len(patients))
	regulars := make([]entity.Patient, 0, len(patients))
	for _, p := range patients {
		if _, ok := emergencyIDs[p.ID.String()]; ok {
			emergencies = append(emergencies, p)
		} else {
			regulars = append(regulars, p)
		}
	}

	if len(emergencies) >= capacity {
		return emergencies
	}

	if len(emergencies) > 0 {
		slots := capacity - len(emergencies)
		if slots > len(regulars) {
			slots = len(regulars)
		}
		return append(emergencies, regulars[:slots]...)
	}

	if capacity > len(patients) {
		capacity = len(patients)
	}
	return patients[:capacity]
}

// RouteDistances returns the leg-by-leg travel distances along the plan:
// element 0 is doctor to first stop, element i is stop i-1 to stop i.
// An empty plan yields an empty sequence.
func RouteDistances(doctor entity.Coordinates, plan []entity.Patient) []float64 {
	distances := make([]float64, 0, len(plan))
	if len(plan) == 0 {
		return distances
	}

	current := doctor
	for _, p := range plan {
		distances = append(distances, current.DistanceKm(*p.Location))
		current = *p.Location
	}
	return distances
}
