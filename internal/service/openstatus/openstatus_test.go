package openstatus

import (
	"testing"
	"time"

	"github.com/octobees/wellness-site/internal/entity"
)

var practiceHours = entity.WeeklyHours{
	"monday":    "9:00am - 6:00pm",
	"tuesday":   "7:00am - 3:30pm",
	"wednesday": "9:00am - 6:00pm",
	"thursday":  "7:00am - 3:30pm",
	"friday":    "8:00am - 4:00pm",
	"saturday":  "8:00am - 12:00pm",
	"sunday":    "Closed",
}

func johannesburg(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Africa/Johannesburg")
	if err != nil {
		t.Skipf("timezone data unavailable: %v", err)
	}
	return loc
}

func TestDeriveRules(t *testing.T) {
	rules := DeriveRules(practiceHours)

	expected := RuleTable{
		"monday":    {Open: 9, Close: 18},
		"tuesday":   {Open: 7, Close: 15.5},
		"wednesday": {Open: 9, Close: 18},
		"thursday":  {Open: 7, Close: 15.5},
		"friday":    {Open: 8, Close: 16},
		"saturday":  {Open: 8, Close: 12},
	}
	if len(rules) != len(expected) {
		t.Fatalf("expected %d rules, got %d: %+v", len(expected), len(rules), rules)
	}
	for day, want := range expected {
		if got := rules[day]; got != want {
			t.Fatalf("%s: expected %+v, got %+v", day, want, got)
		}
	}
	if _, ok := rules["sunday"]; ok {
		t.Fatalf("expected sunday to have no rule")
	}
}

func TestEvaluateAt_Boundaries(t *testing.T) {
	rules := DeriveRules(practiceHours)

	tests := map[string]struct {
		day    string
		hour   float64
		isOpen bool
	}{
		"monday before open":     {day: "monday", hour: 8.99, isOpen: false},
		"monday at open":         {day: "monday", hour: 9.00, isOpen: true},
		"monday just before end": {day: "monday", hour: 17.99, isOpen: true},
		"monday at close":        {day: "monday", hour: 18.00, isOpen: false},
		"tuesday before close":   {day: "tuesday", hour: 15.49, isOpen: true},
		"tuesday at close":       {day: "tuesday", hour: 15.5, isOpen: false},
		"saturday morning":       {day: "saturday", hour: 10, isOpen: true},
		"saturday afternoon":     {day: "saturday", hour: 12, isOpen: false},
		"unknown weekday":        {day: "funday", hour: 10, isOpen: false},
		"empty weekday":          {day: "", hour: 10, isOpen: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			status := EvaluateAt(tt.day, tt.hour, practiceHours, rules)
			if status.IsOpen != tt.isOpen {
				t.Fatalf("expected open=%v, got %+v", tt.isOpen, status)
			}
			wantMsg := MessageClosed
			if tt.isOpen {
				wantMsg = MessageOpen
			}
			if status.Message != wantMsg {
				t.Fatalf("expected message %q, got %q", wantMsg, status.Message)
			}
		})
	}
}

func TestEvaluateAt_ClosedDayShortCircuitsRules(t *testing.T) {
	// A rule for sunday must be ignored while the display hours say Closed.
	rules := RuleTable{"sunday": {Open: 0, Close: 24}}
	for hour := 0.0; hour < 24; hour += 0.25 {
		status := EvaluateAt("sunday", hour, practiceHours, rules)
		if status.IsOpen || status.Message != MessageClosed {
			t.Fatalf("expected closed at %.2f, got %+v", hour, status)
		}
	}
}

func TestEvaluateAt_DayMissingFromRulesIsClosed(t *testing.T) {
	hours := entity.WeeklyHours{"sunday": "10:00am - 2:00pm"}
	status := EvaluateAt("sunday", 11, hours, RuleTable{})
	if status.IsOpen {
		t.Fatalf("expected closed when rule table has no entry, got %+v", status)
	}
}

func TestEvaluateAt_NilTables(t *testing.T) {
	status := EvaluateAt("monday", 10, nil, nil)
	if status.IsOpen || status.Message != MessageClosed {
		t.Fatalf("expected closed for nil tables, got %+v", status)
	}
}

func TestEvaluate_LocalisesToTimezone(t *testing.T) {
	loc := johannesburg(t)
	rules := DeriveRules(practiceHours)

	// 2026-10-19 is a Monday.
	tests := map[string]struct {
		at     time.Time
		isOpen bool
	}{
		"monday 08:59 local":   {at: time.Date(2026, 10, 19, 8, 59, 0, 0, loc), isOpen: false},
		"monday 09:00 local":   {at: time.Date(2026, 10, 19, 9, 0, 0, 0, loc), isOpen: true},
		"monday 17:59 local":   {at: time.Date(2026, 10, 19, 17, 59, 59, 0, loc), isOpen: true},
		"monday 18:00 local":   {at: time.Date(2026, 10, 19, 18, 0, 0, 0, loc), isOpen: false},
		"tuesday 15:29 local":  {at: time.Date(2026, 10, 20, 15, 29, 0, 0, loc), isOpen: true},
		"tuesday 15:30 local":  {at: time.Date(2026, 10, 20, 15, 30, 0, 0, loc), isOpen: false},
		"sunday noon local":    {at: time.Date(2026, 10, 25, 12, 0, 0, 0, loc), isOpen: false},
		"utc instant converts": {at: time.Date(2026, 10, 19, 7, 0, 0, 0, time.UTC), isOpen: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			status := Evaluate(tt.at, practiceHours, rules, "Africa/Johannesburg")
			if status.IsOpen != tt.isOpen {
				t.Fatalf("expected open=%v at %s, got %+v", tt.isOpen, tt.at, status)
			}
		})
	}
}

func TestEvaluate_BadTimezoneIsClosed(t *testing.T) {
	rules := DeriveRules(practiceHours)
	at := time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC)
	status := Evaluate(at, practiceHours, rules, "Not/AZone")
	if status.IsOpen || status.Message != MessageClosed {
		t.Fatalf("expected closed for invalid timezone, got %+v", status)
	}
}

func TestEvaluate_MalformedHoursIsClosed(t *testing.T) {
	hours := entity.WeeklyHours{"monday": "whenever"}
	rules := DeriveRules(hours)
	at := time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC)
	if status := Evaluate(at, hours, rules, "UTC"); status.IsOpen {
		t.Fatalf("expected closed for malformed hours, got %+v", status)
	}
}

func TestParseClock(t *testing.T) {
	tests := map[string]struct {
		input   string
		want    float64
		wantErr bool
	}{
		"morning":         {input: "9:00am", want: 9},
		"afternoon":       {input: "3:30pm", want: 15.5},
		"uppercase space": {input: "6:00 PM", want: 18},
		"hour only":       {input: "8am", want: 8},
		"noon":            {input: "12:00pm", want: 12},
		"midnight":        {input: "12:00am", want: 0},
		"dotted":          {input: "10:15 a.m.", want: 10.25},
		"24 hour":         {input: "17:45", want: 17.75},
		"empty":           {input: "", wantErr: true},
		"garbage":         {input: "soon", wantErr: true},
		"bad minutes":     {input: "9:75am", wantErr: true},
		"hour overflow":   {input: "13:00pm", wantErr: true},
		"24h overflow":    {input: "25:00", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseClock(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestParseRange_MidnightClose(t *testing.T) {
	hours := entity.WeeklyHours{"friday": "6:00pm - 12:00am"}
	rule, err := ParseRange(hours, "friday")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rule.Open != 18 || rule.Close != 24 {
		t.Fatalf("unexpected rule: %+v", rule)
	}

	hours = entity.WeeklyHours{"friday": "12:00am - 12:00am"}
	rule, err = ParseRange(hours, "friday")
	if err != nil {
		t.Fatalf("unexpected error for full-day range: %v", err)
	}
	if rule.Open != 0 || rule.Close != 24 {
		t.Fatalf("unexpected full-day rule: %+v", rule)
	}
	if status := EvaluateAt("friday", 23.99, hours, DeriveRules(hours)); !status.IsOpen {
		t.Fatalf("expected open late on a full day, got %+v", status)
	}

	hours = entity.WeeklyHours{"friday": "6:00pm - 9:00am"}
	if _, err := ParseRange(hours, "friday"); err == nil {
		t.Fatalf("expected error when close precedes open")
	}
}

func TestEvaluator_UsesClockAndDerivedRules(t *testing.T) {
	loc := johannesburg(t)
	now := time.Date(2026, 10, 23, 15, 59, 0, 0, loc) // Friday
	ev := NewEvaluator(practiceHours, "Africa/Johannesburg", WithClock(func() time.Time { return now }))

	if status := ev.Status(); !status.IsOpen {
		t.Fatalf("expected open on friday 15:59, got %+v", status)
	}
	if status := ev.At(now.Add(time.Minute)); status.IsOpen {
		t.Fatalf("expected closed on friday 16:00, got %+v", status)
	}
	if ev.Timezone() != "Africa/Johannesburg" {
		t.Fatalf("unexpected timezone %s", ev.Timezone())
	}
	if ev.Rules()["friday"].Close != 16 {
		t.Fatalf("expected derived friday close 16, got %+v", ev.Rules()["friday"])
	}
}

func TestEvaluator_WithRulesOverride(t *testing.T) {
	ev := NewEvaluator(practiceHours, "", WithRules(RuleTable{"monday": {Open: 0, Close: 1}}))
	if ev.Timezone() != DefaultTimezone {
		t.Fatalf("expected default timezone, got %s", ev.Timezone())
	}
	if _, ok := ev.Rules()["tuesday"]; ok {
		t.Fatalf("expected override table to replace derived rules")
	}
}

func TestEvaluator_BadTimezoneIsClosed(t *testing.T) {
	now := time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC)
	ev := NewEvaluator(practiceHours, "Mars/Olympus_Mons", WithClock(func() time.Time { return now }))
	if status := ev.Status(); status.IsOpen {
		t.Fatalf("expected closed for unknown timezone, got %+v", status)
	}
}

func TestEvaluator_WithRulesSkipsDerivation(t *testing.T) {
	rules := RuleTable{"monday": {Open: 9, Close: 10}}
	now := time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)
	ev := NewEvaluator(entity.WeeklyHours{"monday": "not a range"}, "UTC",
		WithRules(rules), WithClock(func() time.Time { return now }))
	if !ev.Status().IsOpen {
		t.Fatalf("expected supplied rules to drive evaluation")
	}
	if len(ev.Rules()) != 1 {
		t.Fatalf("expected supplied rule table, got %+v", ev.Rules())
	}
}
