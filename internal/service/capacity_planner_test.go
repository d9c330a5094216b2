package service

import (
	"testing"
	"time"
)

func TestDateSeededPlannerRange(t *testing.T) {
	planner := NewDateSeededPlanner(4, 7)

	day := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 366; i++ {
		got := planner.PatientsForDay(day.AddDate(0, 0, i))
		if got < 4 || got > 7 {
			t.Fatalf("capacity for %v = %d, want within [4,7]", day.AddDate(0, 0, i), got)
		}
	}
}

func TestDateSeededPlannerDeterministicPerDay(t *testing.T) {
	day := time.Date(2024, time.June, 15, 9, 30, 0, 0, time.UTC)

	planner := NewDateSeededPlanner(4, 7)
	first := planner.PatientsForDay(day)
	for i := 0; i < 10; i++ {
		if got := planner.PatientsForDay(day); got != first {
			t.Fatalf("repeated call returned %d, want %d", got, first)
		}
	}

	// A fresh planner carries no state, so it must agree too.
	if got := NewDateSeededPlanner(4, 7).PatientsForDay(day); got != first {
		t.Errorf("fresh planner returned %d, want %d", got, first)
	}

	// Clock time within the day is irrelevant; only the calendar date seeds.
	evening := time.Date(2024, time.June, 15, 23, 59, 0, 0, time.UTC)
	if got := planner.PatientsForDay(evening); got != first {
		t.Errorf("same date different time returned %d, want %d", got, first)
	}
}

func TestDateSeededPlannerVariesAcrossDays(t *testing.T) {
	planner := NewDateSeededPlanner(4, 7)

	seen := make(map[int]bool)
	day := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 60; i++ {
		seen[planner.PatientsForDay(day.AddDate(0, 0, i))] = true
	}

	// Over two months the draw should not be constant.
	if len(seen) < 2 {
		t.Errorf("capacity never varied over 60 days: %v", seen)
	}
}
