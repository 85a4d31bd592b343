package service

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/nyaruka/phonenumbers"
	"golang.org/x/net/idna"

	"github.com/octobees/wellness-site/internal/entity"
)

const (
	defaultPhoneRegion = "ZA"

	mapsSearchURL     = "https://maps.google.com/?q="
	mapsEmbedURL      = "https://www.google.com/maps/embed/v1/place"
	mapsDirectionsURL = "https://www.google.com/maps/dir/?api=1&destination="
	mapsEmbedZoom     = "15"

	bookAppointmentLabel = "Book Appointment"
)

var (
	idnaProfile  = idna.Lookup
	nonDialChars = regexp.MustCompile(`[^0-9+]`)
	socialOrder  = []string{"facebook", "instagram", "whatsapp"}
	socialLabels = map[string]string{"facebook": "Facebook", "instagram": "Instagram", "whatsapp": "WhatsApp"}
)

// SocialLink is a labelled outbound profile link.
type SocialLink struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// Links derives contact, map and navigation URLs from the business profile.
type Links struct {
	business entity.BusinessProfile
	nav      entity.Navigation
	region   string
}

// NewLinks constructs Links. region is the default phone region used when a
// number carries no country code.
func NewLinks(business entity.BusinessProfile, nav entity.Navigation, region string) Links {
	if region == "" {
		region = defaultPhoneRegion
	}
	return Links{business: business, nav: nav, region: region}
}

// MapsURL returns a Google Maps search for the street address.
func (l Links) MapsURL() string {
	a := l.business.Address
	return mapsSearchURL + encodeURIComponent(a.Street+", "+a.City+", "+a.Region+" "+a.PostalCode)
}

// MapsEmbedURL returns the iframe source for the location map.
func (l Links) MapsEmbedURL() string {
	return mapsEmbedURL + "?key=" + l.business.Maps.APIKey +
		"&q=" + encodeURIComponent(l.placeQuery()) +
		"&zoom=" + mapsEmbedZoom
}

// DirectionsURL returns a Google Maps directions link to the practice.
func (l Links) DirectionsURL() string {
	return mapsDirectionsURL + encodeURIComponent(l.placeQuery())
}

func (l Links) placeQuery() string {
	a := l.business.Address
	return strings.Join([]string{l.business.Maps.LocationName, a.Street, a.City, a.Region, a.PostalCode}, ",")
}

// PhoneLink returns a tel: URI for number, or for the primary phone when
// number is empty. Numbers are formatted as E.164 when they parse; otherwise
// every character other than digits and '+' is dropped.
func (l Links) PhoneLink(number string) string {
	if number == "" {
		number = l.business.Phone
	}
	number = strings.TrimSpace(number)
	if number == "" {
		return ""
	}
	if normalized := normalizePhone(number, l.region); normalized != "" {
		return "tel:" + normalized
	}
	return "tel:" + nonDialChars.ReplaceAllString(number, "")
}

// EmailLink returns a mailto: URI with the domain converted to its ASCII form.
func (l Links) EmailLink() string {
	email := strings.TrimSpace(l.business.Email)
	if email == "" {
		return ""
	}
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return "mailto:" + email
	}
	domain, err := idnaProfile.ToASCII(email[at+1:])
	if err != nil || domain == "" {
		return "mailto:" + email
	}
	return "mailto:" + email[:at+1] + strings.ToLower(domain)
}

// SocialLinks lists the configured social profiles followed by the email link.
// Entries without a URL are omitted.
func (l Links) SocialLinks() []SocialLink {
	links := make([]SocialLink, 0, len(socialOrder)+1)
	for _, platform := range socialOrder {
		if href := strings.TrimSpace(l.business.Social[platform]); href != "" {
			links = append(links, SocialLink{Label: socialLabels[platform], Href: href})
		}
	}
	if mailto := l.EmailLink(); mailto != "" {
		links = append(links, SocialLink{Label: "Email", Href: mailto})
	}
	return links
}

// QuickLinks returns the footer links, ending with the booking link when one
// is configured.
func (l Links) QuickLinks() []entity.NavItem {
	links := make([]entity.NavItem, 0, len(l.nav.Quick)+1)
	links = append(links, l.nav.Quick...)
	if l.business.BookingURL != "" {
		links = append(links, entity.NavItem{
			Label:    bookAppointmentLabel,
			Href:     l.business.BookingURL,
			External: true,
		})
	}
	return links
}

func normalizePhone(raw, region string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if region == "" {
		region = defaultPhoneRegion
	}
	number, err := phonenumbers.Parse(raw, region)
	if err != nil {
		return ""
	}
	if !phonenumbers.IsPossibleNumber(number) || !phonenumbers.IsValidNumber(number) {
		return ""
	}
	return phonenumbers.Format(number, phonenumbers.E164)
}

// encodeURIComponent escapes s for use inside a query value, encoding spaces as %20.
func encodeURIComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
