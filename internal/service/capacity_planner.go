package service

import (
	"math/rand"
	"time"
)

// CapacityPlanner decides how many patients the doctor can visit on a given day.
type CapacityPlanner interface {
	PatientsForDay(day time.Time) int
}

// DateSeededPlanner draws a uniform integer in [Min, Max] (both inclusive)
// from a generator seeded with year*10000 + month*100 + day. The same calendar
// day therefore always yields the same capacity without any persisted state,
// while different days vary.
type DateSeededPlanner struct {
	Min int
	Max int
}

func NewDateSeededPlanner(min, max int) *DateSeededPlanner {
	return &DateSeededPlanner{Min: min, Max: max}
}

func (p *DateSeededPlanner) PatientsForDay(day time.Time) int {
	seed := int64(day.Year()*10000 + int(day.Month())*100 + day.Day())
	rng := rand.New(rand.NewSource(seed))
	return p.Min + rng.Intn(p.Max-p.Min+1)
}
