package usecase

import (
	"context"
	"time"

	"home-visit-planner/internal/domain/entity"
	"home-visit-planner/internal/domain/gateway"
	"home-visit-planner/internal/service"

	"github.com/sirupsen/logrus"
)

// RouteResult is the outcome of one planning request: the ordered visit list
// and the leg-by-leg travel distances starting from the doctor's location.
type RouteResult struct {
	Plan      []entity.Patient
	Distances []float64
	Capacity  int
}

// PlanRouteUsecase runs the routing pipeline: proximity filter, capacity
// draw, emergency-priority selection, distance accumulation.
type PlanRouteUsecase interface {
	PlanRoute(ctx context.Context, doctor entity.Coordinates, patients []entity.Patient, emergencyIDs []entity.PatientID) (*RouteResult, error)
}

type planRouteUsecase struct {
	log      *logrus.Logger
	capacity service.CapacityPlanner
	clock    gateway.Clock
	radiusKm float64

	// audit is optional; the trail is skipped when no database is configured.
	audit service.RouteAuditService
}

func NewPlanRouteUsecase(
	log *logrus.Logger,
	capacity service.CapacityPlanner,
	clock gateway.Clock,
	radiusKm float64,
	audit service.RouteAuditService,
) PlanRouteUsecase {
	return &planRouteUsecase{
		log:      log,
		capacity: capacity,
		clock:    clock,
		radiusKm: radiusKm,
		audit:    audit,
	}
}

// PlanRoute is pure computation over request-local data; it performs no I/O
// besides the best-effort audit write.
func (u *planRouteUsecase) PlanRoute(
	ctx context.Context,
	doctor entity.Coordinates,
	patients []entity.Patient,
	emergencyIDs []entity.PatientID,
) (*RouteResult, error) {
	emergencySet := make(map[string]struct{}, len(emergencyIDs))
	for _, id := range emergencyIDs {
		emergencySet[id.String()] = struct{}{}
	}

	today := u.clock.Today()

	nearby := service.FilterNearby(doctor, patients, u.radiusKm)
	capacity := u.capacity.PatientsForDay(today)
	plan := service.SelectRoute(nearby, emergencySet, capacity)
	distances := service.RouteDistances(doctor, plan)

	u.log.WithFields(logrus.Fields{
		"nearby":   len(nearby),
		"capacity": capacity,
		"selected": len(plan),
	}).Info("Route planned")

	u.recordAudit(ctx, today, doctor, nearby, plan, emergencySet, capacity, distances)

	return &RouteResult{
		Plan:      plan,
		Distances: distances,
		Capacity:  capacity,
	}, nil
}

func (u *planRouteUsecase) recordAudit(
	ctx context.Context,
	today time.Time,
	doctor entity.Coordinates,
	nearby, plan []entity.Patient,
	emergencySet map[string]struct{},
	capacity int,
	distances []float64,
) {
	if u.audit == nil {
		return
	}

	emergencies := 0
	for _, p := range plan {
		if _, ok := emergencySet[p.ID.String()]; ok {
			emergencies++
		}
	}

	totalKm := 0.0
	for _, d := range distances {
		totalKm += d
	}

	audit := &entity.RouteAudit{
		PlannedFor:       today,
		DoctorLat:        doctor.Lat,
		DoctorLon:        doctor.Lon,
		Capacity:         capacity,
		NearbyPatients:   len(nearby),
		SelectedPatients: len(plan),
		EmergencyCount:   emergencies,
		TotalDistanceKm:  totalKm,
	}

	// Best-effort: a failed audit write never fails the planning request.
	_ = u.audit.Record(ctx, audit)
}
