package openstatus

import (
	"time"

	"github.com/octobees/wellness-site/internal/entity"
)

// Evaluator binds a weekly-hours table, its derived rules and a timezone so
// callers can ask for the current status without threading configuration.
type Evaluator struct {
	hours    entity.WeeklyHours
	rules    RuleTable
	timezone string
	loc      *time.Location
	now      func() time.Time
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithClock overrides the wall clock, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(e *Evaluator) {
		if now != nil {
			e.now = now
		}
	}
}

// WithRules replaces the rules derived from the display hours.
func WithRules(rules RuleTable) Option {
	return func(e *Evaluator) {
		if rules != nil {
			e.rules = rules
		}
	}
}

// NewEvaluator resolves timezone once and derives the rule table from hours
// unless WithRules supplies one. An unknown timezone leaves the evaluator
// permanently closed.
func NewEvaluator(hours entity.WeeklyHours, timezone string, opts ...Option) *Evaluator {
	if timezone == "" {
		timezone = DefaultTimezone
	}
	e := &Evaluator{
		hours:    hours,
		timezone: timezone,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rules == nil {
		e.rules = DeriveRules(hours)
	}
	if loc, err := time.LoadLocation(timezone); err == nil {
		e.loc = loc
	}
	return e
}

// Status evaluates the current wall-clock instant.
func (e *Evaluator) Status() OpenStatus {
	return e.At(e.now())
}

// At evaluates an arbitrary instant.
func (e *Evaluator) At(t time.Time) OpenStatus {
	if e.loc == nil {
		return closed
	}
	return evaluateIn(t, e.loc, e.hours, e.rules)
}

// Rules returns the rule table in use.
func (e *Evaluator) Rules() RuleTable {
	return e.rules
}

// Timezone returns the IANA zone the evaluator localises to.
func (e *Evaluator) Timezone() string {
	return e.timezone
}

// Now returns the evaluator's notion of the current instant.
func (e *Evaluator) Now() time.Time {
	return e.now()
}
