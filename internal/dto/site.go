package dto

import (
	"github.com/octobees/wellness-site/internal/entity"
	"github.com/octobees/wellness-site/internal/service"
)

// HoursEntry is one weekday of the display hours.
type HoursEntry struct {
	Day   string `json:"day"`
	Hours string `json:"hours"`
}

// StatusResponse reports whether the practice is currently open.
type StatusResponse struct {
	IsOpen              bool         `json:"is_open"`
	Message             string       `json:"message"`
	Timezone            string       `json:"timezone"`
	Hours               []HoursEntry `json:"hours"`
	RefreshAfterSeconds int          `json:"refresh_after_seconds"`
}

// ContactLinks are the ready-to-use contact and map URLs.
type ContactLinks struct {
	Phone          string `json:"phone,omitempty"`
	PhoneSecondary string `json:"phone_secondary,omitempty"`
	Email          string `json:"email,omitempty"`
	Maps           string `json:"maps"`
	MapsEmbed      string `json:"maps_embed,omitempty"`
	Directions     string `json:"directions"`
	Booking        string `json:"booking,omitempty"`
}

// BusinessResponse is the public business profile plus derived links.
type BusinessResponse struct {
	Business entity.BusinessProfile `json:"business"`
	Links    ContactLinks           `json:"links"`
}

// NavigationResponse groups the navigation link sets.
type NavigationResponse struct {
	Main   []entity.NavItem     `json:"main"`
	Quick  []entity.NavItem     `json:"quick"`
	Social []service.SocialLink `json:"social"`
}

// SchemaTypesResponse lists the structured-data documents that can be requested.
type SchemaTypesResponse struct {
	Types []string `json:"types"`
}
