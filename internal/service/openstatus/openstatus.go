package openstatus

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/octobees/wellness-site/internal/entity"
)

const (
	MessageOpen   = "Open now"
	MessageClosed = "Closed"

	// DefaultTimezone is the zone the practice keeps its hours in.
	DefaultTimezone = "Africa/Johannesburg"
)

// OpenStatus is the result of a single evaluation.
type OpenStatus struct {
	IsOpen  bool   `json:"is_open"`
	Message string `json:"message"`
}

// DayRule is an operating window in decimal hours, open inclusive and close exclusive.
type DayRule struct {
	Open  float64 `json:"open"`
	Close float64 `json:"close"`
}

// Contains reports whether decimalHour falls within [Open, Close).
func (r DayRule) Contains(decimalHour float64) bool {
	return decimalHour >= r.Open && decimalHour < r.Close
}

// RuleTable maps a lowercase weekday to its window. Weekdays without an entry are closed.
type RuleTable map[string]DayRule

var closed = OpenStatus{IsOpen: false, Message: MessageClosed}

// Evaluate reports whether the business is open at now, localised to timezone.
// It never fails: any problem yields the closed status.
func Evaluate(now time.Time, hours entity.WeeklyHours, rules RuleTable, timezone string) (status OpenStatus) {
	defer func() {
		if r := recover(); r != nil {
			status = closed
		}
	}()

	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return closed
	}
	return evaluateIn(now, loc, hours, rules)
}

func evaluateIn(now time.Time, loc *time.Location, hours entity.WeeklyHours, rules RuleTable) OpenStatus {
	local := now.In(loc)
	day := strings.ToLower(local.Weekday().String())
	decimal := float64(local.Hour()) + float64(local.Minute())/60

	return EvaluateAt(day, decimal, hours, rules)
}

// EvaluateAt applies the hours and rule tables to an already localised weekday
// and decimal hour.
func EvaluateAt(day string, decimalHour float64, hours entity.WeeklyHours, rules RuleTable) (status OpenStatus) {
	defer func() {
		if r := recover(); r != nil {
			status = closed
		}
	}()

	if hours.IsClosed(day) {
		return closed
	}
	rule, ok := rules[day]
	if !ok || !rule.Contains(decimalHour) {
		return closed
	}
	return OpenStatus{IsOpen: true, Message: MessageOpen}
}

// DeriveRules parses the display hours into a rule table. Days that are closed
// or whose entry cannot be parsed are left out and therefore evaluate as closed.
func DeriveRules(hours entity.WeeklyHours) RuleTable {
	rules := make(RuleTable, len(hours))
	for _, day := range entity.Weekdays {
		rule, err := ParseRange(hours, day)
		if err != nil {
			continue
		}
		rules[day] = rule
	}
	return rules
}

// ParseRange converts the display entry of day into a DayRule.
func ParseRange(hours entity.WeeklyHours, day string) (DayRule, error) {
	opens, closes, ok := hours.Range(day)
	if !ok {
		return DayRule{}, fmt.Errorf("no opening range for %s", day)
	}
	open, err := ParseClock(opens)
	if err != nil {
		return DayRule{}, fmt.Errorf("%s opens: %w", day, err)
	}
	closeAt, err := ParseClock(closes)
	if err != nil {
		return DayRule{}, fmt.Errorf("%s closes: %w", day, err)
	}
	// "12:00am" as a closing time means midnight at the end of the day, so
	// "12:00am - 12:00am" spans the whole day.
	if closeAt == 0 {
		closeAt = 24
	}
	if closeAt <= open {
		return DayRule{}, fmt.Errorf("%s closes before it opens", day)
	}
	return DayRule{Open: open, Close: closeAt}, nil
}

var errBadClock = errors.New("invalid time of day")

// ParseClock converts a time-of-day token into decimal hours. It accepts
// 12-hour tokens such as "9:00am", "3:30 PM" or "9am" and 24-hour tokens
// such as "15:30".
func ParseClock(token string) (float64, error) {
	s := strings.ToLower(strings.TrimSpace(token))
	s = strings.ReplaceAll(s, ".", "")
	if s == "" {
		return 0, errBadClock
	}

	meridiem := ""
	switch {
	case strings.HasSuffix(s, "am"):
		meridiem = "am"
	case strings.HasSuffix(s, "pm"):
		meridiem = "pm"
	}
	s = strings.TrimSpace(strings.TrimSuffix(s, meridiem))

	hourPart, minutePart := s, "0"
	if idx := strings.IndexByte(s, ':'); idx >= 0 {
		hourPart, minutePart = s[:idx], s[idx+1:]
	}
	hour, err := strconv.Atoi(hourPart)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errBadClock, token)
	}
	minute, err := strconv.Atoi(minutePart)
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: %q", errBadClock, token)
	}

	switch meridiem {
	case "am", "pm":
		if hour < 1 || hour > 12 {
			return 0, fmt.Errorf("%w: %q", errBadClock, token)
		}
		hour %= 12
		if meridiem == "pm" {
			hour += 12
		}
	default:
		if hour < 0 || hour > 23 {
			return 0, fmt.Errorf("%w: %q", errBadClock, token)
		}
	}
	return float64(hour) + float64(minute)/60, nil
}
