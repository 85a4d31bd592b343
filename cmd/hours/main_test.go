package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/octobees/wellness-site/internal/entity"
	"github.com/octobees/wellness-site/internal/service/openstatus"
)

func TestClock(t *testing.T) {
	tests := map[string]struct {
		in   float64
		want string
	}{
		"morning":   {in: 9, want: "09:00"},
		"half hour": {in: 15.5, want: "15:30"},
		"midnight":  {in: 24, want: "24:00"},
		"rounding":  {in: 7 + 59.9/60, want: "08:00"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := clock(tt.in); got != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

// tableRow returns the trimmed cells of the rendered row starting with day.
func tableRow(t *testing.T, rendered, day string) []string {
	t.Helper()
	for _, line := range strings.Split(rendered, "\n") {
		var cells []string
		for _, cell := range strings.Split(line, "|") {
			if cell = strings.TrimSpace(cell); cell != "" {
				cells = append(cells, cell)
			}
		}
		if len(cells) > 0 && cells[0] == day {
			return cells
		}
	}
	t.Fatalf("no row for %s in:\n%s", day, rendered)
	return nil
}

func TestRenderHours(t *testing.T) {
	hours := entity.WeeklyHours{
		"monday":    "9:00am - 6:00pm",
		"tuesday":   "7:00am - 3:30pm",
		"wednesday": "9:00am - 6:00pm",
		"thursday":  "7:00am - 3:30pm",
		"friday":    "8:00am - 4:00pm",
		"saturday":  "8:00am - 12:00pm",
		"sunday":    "Closed",
	}
	var buf bytes.Buffer
	renderHours(&buf, hours, openstatus.DeriveRules(hours))
	rendered := buf.String()

	tests := map[string]struct {
		day  string
		want []string
	}{
		"monday window":   {day: "monday", want: []string{"monday", "9:00am - 6:00pm", "09:00", "18:00"}},
		"tuesday window":  {day: "tuesday", want: []string{"tuesday", "7:00am - 3:30pm", "07:00", "15:30"}},
		"saturday window": {day: "saturday", want: []string{"saturday", "8:00am - 12:00pm", "08:00", "12:00"}},
		"sunday closed":   {day: "sunday", want: []string{"sunday", "Closed", "-", "-"}},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := tableRow(t, rendered, tt.day)
			if strings.Join(got, "|") != strings.Join(tt.want, "|") {
				t.Fatalf("expected row %v, got %v", tt.want, got)
			}
		})
	}
}

func TestRenderHours_MissingDayIsClosed(t *testing.T) {
	var buf bytes.Buffer
	renderHours(&buf, entity.WeeklyHours{"monday": "9:00am - 6:00pm"}, nil)

	got := tableRow(t, buf.String(), "friday")
	if strings.Join(got, "|") != "friday|Closed|-|-" {
		t.Fatalf("unexpected friday row %v", got)
	}
}
