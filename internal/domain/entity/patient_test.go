package entity

import (
	"encoding/json"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestVisitPeriodOffsetDays(t *testing.T) {
	cases := []struct {
		period VisitPeriod
		want   int
	}{
		{PeriodEverySixMonths, 180},
		{PeriodEveryOneYear, 365},
		{PeriodEveryThreeMonths, 90},
		{PeriodEveryTwoMonths, 60},
		{VisitPeriod("Whenever"), 0},
		{VisitPeriod(""), 0},
	}

	for _, tc := range cases {
		if got := tc.period.OffsetDays(); got != tc.want {
			t.Errorf("OffsetDays(%q) = %d, want %d", tc.period, got, tc.want)
		}
	}
}

func TestWithNextVisitYearPeriod(t *testing.T) {
	p := Patient{
		ID:        NewPatientID("P1"),
		VisitDate: date(2023, time.January, 1),
		Period:    PeriodEveryOneYear,
	}

	next := p.WithNextVisit(date(2023, time.January, 1))

	if !next.ResolvedDate.Equal(date(2024, time.January, 1)) {
		t.Errorf("ResolvedDate = %v, want 2024-01-01", next.ResolvedDate)
	}
	if next.RemainingDays != 365 {
		t.Errorf("RemainingDays = %d, want 365", next.RemainingDays)
	}
}

func TestWithNextVisitUnknownPeriodKeepsVisitDate(t *testing.T) {
	p := Patient{
		ID:        NewPatientID("P1"),
		VisitDate: date(2024, time.March, 10),
		Period:    VisitPeriod("Once in a while"),
	}

	next := p.WithNextVisit(date(2024, time.March, 20))

	if !next.ResolvedDate.Equal(p.VisitDate) {
		t.Errorf("ResolvedDate = %v, want visit date %v", next.ResolvedDate, p.VisitDate)
	}
	if next.RemainingDays != -10 {
		t.Errorf("RemainingDays = %d, want -10 (overdue)", next.RemainingDays)
	}
}

func TestWithNextVisitResolvedNeverBeforeVisit(t *testing.T) {
	today := date(2024, time.June, 15)
	for _, period := range []VisitPeriod{PeriodEverySixMonths, PeriodEveryOneYear, PeriodEveryThreeMonths, PeriodEveryTwoMonths, "bogus"} {
		p := Patient{VisitDate: date(2024, time.January, 1), Period: period}
		next := p.WithNextVisit(today)
		if next.ResolvedDate.Before(next.VisitDate) {
			t.Errorf("period %q: resolved %v before visit %v", period, next.ResolvedDate, next.VisitDate)
		}
	}
}

func TestPatientIDJSONRoundTrip(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{`"P-17"`, `"P-17"`},
		{`42`, `42`},
		{`"42"`, `"42"`},
	}

	for _, tc := range cases {
		var id PatientID
		if err := json.Unmarshal([]byte(tc.in), &id); err != nil {
			t.Fatalf("unmarshal %s: %v", tc.in, err)
		}

		out, err := json.Marshal(id)
		if err != nil {
			t.Fatalf("marshal %s: %v", tc.in, err)
		}
		if string(out) != tc.want {
			t.Errorf("round trip %s = %s, want %s", tc.in, out, tc.want)
		}
	}
}

func TestPatientIDTextualMatch(t *testing.T) {
	// A numeric 42 and a string "42" identify the same patient.
	var numeric, quoted PatientID
	if err := json.Unmarshal([]byte(`42`), &numeric); err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal([]byte(`"42"`), &quoted); err != nil {
		t.Fatal(err)
	}

	if numeric.String() != quoted.String() {
		t.Errorf("textual values differ: %q vs %q", numeric.String(), quoted.String())
	}
}
