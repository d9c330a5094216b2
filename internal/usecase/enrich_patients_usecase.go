package usecase

import (
	"context"
	"errors"
	"time"

	"home-visit-planner/internal/domain/entity"
	"home-visit-planner/internal/domain/gateway"

	"github.com/sirupsen/logrus"
)

// EnrichPatientsUsecase runs the enrichment pipeline: next-visit date
// arithmetic followed by address-to-coordinate resolution.
type EnrichPatientsUsecase interface {
	Enrich(ctx context.Context, patients []entity.Patient) ([]entity.Patient, error)
}

type enrichPatientsUsecase struct {
	log      *logrus.Logger
	geocoder gateway.Geocoder
	clock    gateway.Clock

	// lookupDelay separates successive geocoder calls within one request to
	// respect the provider's one-lookup-per-second rate limit.
	lookupDelay   time.Duration
	lookupTimeout time.Duration
}

func NewEnrichPatientsUsecase(
	log *logrus.Logger,
	geocoder gateway.Geocoder,
	clock gateway.Clock,
	lookupDelay time.Duration,
	lookupTimeout time.Duration,
) EnrichPatientsUsecase {
	return &enrichPatientsUsecase{
		log:           log,
		geocoder:      geocoder,
		clock:         clock,
		lookupDelay:   lookupDelay,
		lookupTimeout: lookupTimeout,
	}
}

// Enrich computes the resolved next-visit date and remaining days for every
// patient, then resolves each address to coordinates. A failed or empty
// geocode lookup leaves that patient's location nil and never aborts the
// batch. The whole batch fails only when the request context is canceled.
func (u *enrichPatientsUsecase) Enrich(ctx context.Context, patients []entity.Patient) ([]entity.Patient, error) {
	today := u.clock.Today()

	enriched := make([]entity.Patient, 0, len(patients))
	for i, p := range patients {
		if i > 0 {
			if err := u.waitBetweenLookups(ctx); err != nil {
				return nil, err
			}
		}

		p = p.WithNextVisit(today)
		p.Location = u.resolveLocation(ctx, p)
		enriched = append(enriched, p)
	}

	return enriched, nil
}

// resolveLocation geocodes one address under a bounded timeout. A timeout is
// treated the same as "no result found" for that address.
func (u *enrichPatientsUsecase) resolveLocation(ctx context.Context, p entity.Patient) *entity.Coordinates {
	lookupCtx, cancel := context.WithTimeout(ctx, u.lookupTimeout)
	defer cancel()

	coords, err := u.geocoder.Lookup(lookupCtx, p.Address)
	if err != nil {
		if !errors.Is(err, gateway.ErrNoResult) {
			u.log.Warnf("Failed to geocode address for patient %s: %+v", p.ID, err)
		}
		return nil
	}

	return &coords
}

func (u *enrichPatientsUsecase) waitBetweenLookups(ctx context.Context) error {
	if u.lookupDelay <= 0 {
		return nil
	}

	timer := time.NewTimer(u.lookupDelay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
