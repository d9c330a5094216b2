package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"home-visit-planner/internal/domain/entity"
	"home-visit-planner/internal/domain/gateway"

	"github.com/sirupsen/logrus"
)

type fixedClock struct {
	day time.Time
}

func (c fixedClock) Today() time.Time { return c.day }

// fakeGeocoder resolves addresses from a fixed table; unknown addresses yield
// no result and addresses in failures yield a lookup error.
type fakeGeocoder struct {
	coords   map[string]entity.Coordinates
	failures map[string]bool
	calls    int
}

func (g *fakeGeocoder) Lookup(ctx context.Context, address string) (entity.Coordinates, error) {
	g.calls++
	if g.failures[address] {
		return entity.Coordinates{}, errors.New("provider unavailable")
	}
	if c, ok := g.coords[address]; ok {
		return c, nil
	}
	return entity.Coordinates{}, gateway.ErrNoResult
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func TestEnrichComputesNextVisitAndLocation(t *testing.T) {
	geocoder := &fakeGeocoder{
		coords: map[string]entity.Coordinates{
			"1 Gangnam-daero, Seoul": {Lat: 37.50, Lon: 127.02},
		},
	}
	clock := fixedClock{day: time.Date(2024, time.June, 15, 10, 0, 0, 0, time.UTC)}

	uc := NewEnrichPatientsUsecase(testLogger(), geocoder, clock, 0, time.Second)

	patients := []entity.Patient{{
		ID:        entity.NewPatientID("P1"),
		VisitDate: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		Period:    entity.PeriodEveryOneYear,
		Address:   "1 Gangnam-daero, Seoul",
	}}

	enriched, err := uc.Enrich(context.Background(), patients)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(enriched) != 1 {
		t.Fatalf("got %d patients, want 1", len(enriched))
	}

	p := enriched[0]
	wantResolved := time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC)
	if !p.ResolvedDate.Equal(wantResolved) {
		t.Errorf("ResolvedDate = %v, want %v", p.ResolvedDate, wantResolved)
	}
	if p.RemainingDays != 199 {
		t.Errorf("RemainingDays = %d, want 199", p.RemainingDays)
	}
	if p.Location == nil || p.Location.Lat != 37.50 || p.Location.Lon != 127.02 {
		t.Errorf("Location = %v, want (37.50, 127.02)", p.Location)
	}
}

func TestEnrichGeocodeNoResultLeavesLocationNil(t *testing.T) {
	geocoder := &fakeGeocoder{}
	clock := fixedClock{day: time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)}

	uc := NewEnrichPatientsUsecase(testLogger(), geocoder, clock, 0, time.Second)

	patients := []entity.Patient{{
		ID:        entity.NewPatientID("P1"),
		VisitDate: time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC),
		Period:    entity.PeriodEveryTwoMonths,
		Address:   "nowhere",
	}}

	enriched, err := uc.Enrich(context.Background(), patients)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if enriched[0].Location != nil {
		t.Errorf("Location = %v, want nil", enriched[0].Location)
	}
	// 2024-05-01 + 60 days = 2024-06-30, 15 days after today.
	if enriched[0].RemainingDays != 15 {
		t.Errorf("RemainingDays = %d, want 15", enriched[0].RemainingDays)
	}
}

func TestEnrichLookupFailureDoesNotAbortBatch(t *testing.T) {
	geocoder := &fakeGeocoder{
		coords: map[string]entity.Coordinates{
			"good address": {Lat: 37.51, Lon: 127.00},
		},
		failures: map[string]bool{"bad address": true},
	}
	clock := fixedClock{day: time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)}

	uc := NewEnrichPatientsUsecase(testLogger(), geocoder, clock, 0, time.Second)

	patients := []entity.Patient{
		{ID: entity.NewPatientID("P1"), VisitDate: clock.day, Address: "bad address"},
		{ID: entity.NewPatientID("P2"), VisitDate: clock.day, Address: "good address"},
	}

	enriched, err := uc.Enrich(context.Background(), patients)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if enriched[0].Location != nil {
		t.Errorf("failed lookup produced location %v", enriched[0].Location)
	}
	if enriched[1].Location == nil {
		t.Errorf("second patient was not geocoded after first failed")
	}
	if geocoder.calls != 2 {
		t.Errorf("geocoder called %d times, want 2", geocoder.calls)
	}
}

func TestEnrichCanceledContextStopsBatch(t *testing.T) {
	geocoder := &fakeGeocoder{}
	clock := fixedClock{day: time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)}

	// A non-zero delay forces the inter-lookup wait to observe cancellation.
	uc := NewEnrichPatientsUsecase(testLogger(), geocoder, clock, time.Hour, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	patients := []entity.Patient{
		{ID: entity.NewPatientID("P1"), VisitDate: clock.day},
		{ID: entity.NewPatientID("P2"), VisitDate: clock.day},
	}

	if _, err := uc.Enrich(ctx, patients); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}
