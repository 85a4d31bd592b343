package entity

import "strings"

// ClosedHours marks a weekday on which the business does not open.
const ClosedHours = "Closed"

// hoursSeparator splits a display range such as "9:00am - 6:00pm".
const hoursSeparator = " - "

// Weekdays lists the weekly-hours keys in calendar display order.
var Weekdays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// WeeklyHours maps a lowercase weekday name to "Closed" or "<open> - <close>".
type WeeklyHours map[string]string

// Range splits the display hours of day into trimmed open and close tokens.
// ok is false for closed days, unknown days and entries that do not contain
// exactly two non-empty tokens.
func (h WeeklyHours) Range(day string) (opens, closes string, ok bool) {
	value := strings.TrimSpace(h[day])
	if value == "" || value == ClosedHours {
		return "", "", false
	}
	parts := strings.Split(value, hoursSeparator)
	if len(parts) != 2 {
		return "", "", false
	}
	opens = strings.TrimSpace(parts[0])
	closes = strings.TrimSpace(parts[1])
	if opens == "" || closes == "" {
		return "", "", false
	}
	return opens, closes, true
}

// IsClosed reports whether day is explicitly marked as closed.
func (h WeeklyHours) IsClosed(day string) bool {
	return h[day] == ClosedHours
}

// IsWeekday reports whether day is one of the seven lowercase weekday keys.
func IsWeekday(day string) bool {
	for _, d := range Weekdays {
		if d == day {
			return true
		}
	}
	return false
}

// Address is the postal address of the practice.
type Address struct {
	Street     string `yaml:"street" json:"street" validate:"required"`
	Area       string `yaml:"area,omitempty" json:"area,omitempty"`
	City       string `yaml:"city" json:"city" validate:"required"`
	Region     string `yaml:"region" json:"region"`
	PostalCode string `yaml:"postal_code" json:"postal_code"`
	Country    string `yaml:"country" json:"country" validate:"omitempty,len=2"`
}

// Geo holds optional map coordinates.
type Geo struct {
	Latitude  float64 `yaml:"latitude" json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `yaml:"longitude" json:"longitude" validate:"gte=-180,lte=180"`
}

// MapsConfig configures Google Maps embeds and searches.
type MapsConfig struct {
	APIKey       string `yaml:"api_key" json:"-"`
	LocationName string `yaml:"location_name" json:"location_name"`
}

// BusinessProfile describes the practice as a whole.
type BusinessProfile struct {
	Name           string            `yaml:"name" json:"name" validate:"required"`
	Tagline        string            `yaml:"tagline,omitempty" json:"tagline,omitempty"`
	URL            string            `yaml:"url" json:"url" validate:"required,url"`
	Description    string            `yaml:"description,omitempty" json:"description,omitempty"`
	Phone          string            `yaml:"phone,omitempty" json:"phone,omitempty"`
	PhoneSecondary string            `yaml:"phone_secondary,omitempty" json:"phone_secondary,omitempty"`
	Email          string            `yaml:"email,omitempty" json:"email,omitempty" validate:"omitempty,email"`
	Address        Address           `yaml:"address" json:"address"`
	Geo            *Geo              `yaml:"geo,omitempty" json:"geo,omitempty"`
	Hours          WeeklyHours       `yaml:"hours" json:"hours" validate:"weekly_hours"`
	Social         map[string]string `yaml:"social,omitempty" json:"social,omitempty" validate:"omitempty,dive,omitempty,url"`
	PriceRange     string            `yaml:"price_range,omitempty" json:"price_range,omitempty" validate:"omitempty,oneof=$ $$ $$$ $$$$"`
	SchemaTypes    []string          `yaml:"schema_types" json:"schema_types"`
	Logo           string            `yaml:"logo,omitempty" json:"logo,omitempty"`
	BookingURL     string            `yaml:"booking_url,omitempty" json:"booking_url,omitempty" validate:"omitempty,url"`
	AreaServed     string            `yaml:"area_served,omitempty" json:"area_served,omitempty"`
	Maps           MapsConfig        `yaml:"maps" json:"maps"`
}

// OrganizationID returns the stable JSON-LD identifier of the business.
func (b BusinessProfile) OrganizationID() string {
	if b.URL == "" {
		return ""
	}
	return strings.TrimRight(b.URL, "/") + "/#organization"
}

// AbsoluteURL joins a site-relative path onto the business URL.
func (b BusinessProfile) AbsoluteURL(path string) string {
	if path == "" {
		return strings.TrimRight(b.URL, "/")
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return strings.TrimRight(b.URL, "/") + path
}
