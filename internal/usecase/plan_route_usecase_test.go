package usecase

import (
	"context"
	"testing"
	"time"

	"home-visit-planner/internal/domain/entity"
)

// fixedCapacity stands in for the date-seeded planner so tests control the
// daily target directly.
type fixedCapacity struct {
	n int
}

func (c fixedCapacity) PatientsForDay(day time.Time) int { return c.n }

const kmPerLatDegree = 111.19492664455873

var doctor = entity.Coordinates{Lat: 37.50, Lon: 127.02}

func locatedPatient(id string, northKm float64) entity.Patient {
	return entity.Patient{
		ID: entity.NewPatientID(id),
		Location: &entity.Coordinates{
			Lat: doctor.Lat + northKm/kmPerLatDegree,
			Lon: doctor.Lon,
		},
	}
}

func TestPlanRouteScenario(t *testing.T) {
	clock := fixedClock{day: time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)}
	uc := NewPlanRouteUsecase(testLogger(), fixedCapacity{n: 4}, clock, 5, nil)

	patients := []entity.Patient{
		locatedPatient("P1", 1),
		locatedPatient("P2", 2),
		locatedPatient("P3", 20),
	}
	emergencies := []entity.PatientID{entity.NewPatientID("P1")}

	result, err := uc.PlanRoute(context.Background(), doctor, patients, emergencies)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Plan) != 2 {
		t.Fatalf("plan has %d patients, want 2", len(result.Plan))
	}
	if result.Plan[0].ID.String() != "P1" || result.Plan[1].ID.String() != "P2" {
		t.Errorf("plan order = [%s %s], want [P1 P2]", result.Plan[0].ID, result.Plan[1].ID)
	}
	if len(result.Distances) != 2 {
		t.Errorf("got %d distances, want 2", len(result.Distances))
	}
	if result.Capacity != 4 {
		t.Errorf("capacity = %d, want 4", result.Capacity)
	}
}

func TestPlanRouteEmptyInput(t *testing.T) {
	clock := fixedClock{day: time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)}
	uc := NewPlanRouteUsecase(testLogger(), fixedCapacity{n: 5}, clock, 5, nil)

	result, err := uc.PlanRoute(context.Background(), doctor, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Plan) != 0 {
		t.Errorf("plan not empty: %v", result.Plan)
	}
	if len(result.Distances) != 0 {
		t.Errorf("distances not empty: %v", result.Distances)
	}
}

func TestPlanRouteUnlocatedPatientsExcluded(t *testing.T) {
	clock := fixedClock{day: time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)}
	uc := NewPlanRouteUsecase(testLogger(), fixedCapacity{n: 5}, clock, 5, nil)

	patients := []entity.Patient{
		{ID: entity.NewPatientID("no-location")},
		locatedPatient("P2", 2),
	}

	result, err := uc.PlanRoute(context.Background(), doctor, patients, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Plan) != 1 || result.Plan[0].ID.String() != "P2" {
		t.Errorf("plan = %v, want [P2]", result.Plan)
	}
}
