package entity

import (
	"encoding/json"
	"time"
)

// VisitPeriod is the enumerated visit-frequency label attached to a patient.
type VisitPeriod string

const (
	PeriodEverySixMonths   VisitPeriod = "Every 6 months"
	PeriodEveryOneYear     VisitPeriod = "Every 1 year"
	PeriodEveryThreeMonths VisitPeriod = "Every 3 months"
	PeriodEveryTwoMonths   VisitPeriod = "Every 2 months"
)

// OffsetDays maps the period label to the day offset used to compute the next
// visit date. Unrecognized labels yield 0, so the resolved date equals the
// last visit date. That is a documented degenerate case, not an error.
func (p VisitPeriod) OffsetDays() int {
	switch p {
	case PeriodEverySixMonths:
		return 180
	case PeriodEveryOneYear:
		return 365
	case PeriodEveryThreeMonths:
		return 90
	case PeriodEveryTwoMonths:
		return 60
	default:
		return 0
	}
}

// PatientID is an opaque patient identifier. Callers may send it as a JSON
// string or number; the original representation is preserved on output, and
// identifiers are compared by their textual value.
type PatientID struct {
	value   string
	numeric bool
}

func NewPatientID(value string) PatientID {
	return PatientID{value: value}
}

func (id PatientID) String() string { return id.value }

func (id PatientID) IsZero() bool { return id.value == "" }

func (id PatientID) MarshalJSON() ([]byte, error) {
	if id.numeric {
		return []byte(id.value), nil
	}
	return json.Marshal(id.value)
}

func (id *PatientID) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = PatientID{value: s}
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = PatientID{value: n.String(), numeric: true}
	return nil
}

// Patient represents one patient row flowing through the pipelines.
//
// Values are request-scoped and treated as immutable: transformations return
// new records instead of mutating in place.
type Patient struct {
	ID            PatientID
	VisitDate     time.Time
	Period        VisitPeriod
	Address       string
	ResolvedDate  time.Time
	RemainingDays int

	// Location is nil until geocoding resolves the address, and stays nil
	// when the lookup fails or yields no match.
	Location *Coordinates
}

// WithNextVisit returns a copy of the patient with ResolvedDate and
// RemainingDays computed against today. ResolvedDate is always >= VisitDate.
// RemainingDays is signed; negative means the visit is overdue.
func (p Patient) WithNextVisit(today time.Time) Patient {
	p.ResolvedDate = p.VisitDate.AddDate(0, 0, p.Period.OffsetDays())
	p.RemainingDays = daysBetween(today, p.ResolvedDate)
	return p
}

// daysBetween returns the whole-day difference to - from, ignoring clock time.
func daysBetween(from, to time.Time) int {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f).Hours() / 24)
}
