package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/octobees/wellness-site/internal/dto"
	"github.com/octobees/wellness-site/internal/service"
)

// ContentHandler serves the site content sections.
type ContentHandler struct {
	site *service.SiteService
}

// NewContentHandler constructs a ContentHandler.
func NewContentHandler(site *service.SiteService) *ContentHandler {
	return &ContentHandler{site: site}
}

// Business handles GET /api/business.
func (h *ContentHandler) Business(c echo.Context) error {
	business := h.site.Site().Business
	links := h.site.Links()

	contact := dto.ContactLinks{
		Phone:      links.PhoneLink(""),
		Email:      links.EmailLink(),
		Maps:       links.MapsURL(),
		Directions: links.DirectionsURL(),
		Booking:    business.BookingURL,
	}
	if business.PhoneSecondary != "" {
		contact.PhoneSecondary = links.PhoneLink(business.PhoneSecondary)
	}
	if business.Maps.APIKey != "" {
		contact.MapsEmbed = links.MapsEmbedURL()
	}

	return Success(c, http.StatusOK, "", dto.BusinessResponse{Business: business, Links: contact})
}

// Services handles GET /api/services. ?featured=true restricts the list to
// featured services.
func (h *ContentHandler) Services(c echo.Context) error {
	site := h.site.Site()
	featured := false
	if raw := c.QueryParam("featured"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return Error(c, http.StatusBadRequest, "featured must be a boolean")
		}
		featured = parsed
	}
	if featured {
		return Success(c, http.StatusOK, "", site.FeaturedServices())
	}
	return Success(c, http.StatusOK, "", site.AllServices())
}

// Service handles GET /api/services/:slug.
func (h *ContentHandler) Service(c echo.Context) error {
	svc, ok := h.site.Site().ServiceBySlug(c.Param("slug"))
	if !ok {
		return lookupError(c, service.ErrServiceNotFound)
	}
	return Success(c, http.StatusOK, "", svc)
}

// FAQs handles GET /api/faqs.
func (h *ContentHandler) FAQs(c echo.Context) error {
	return Success(c, http.StatusOK, "", h.site.Site().AllFaqs())
}

// FAQ handles GET /api/faqs/:id.
func (h *ContentHandler) FAQ(c echo.Context) error {
	faq, ok := h.site.Site().FaqByID(c.Param("id"))
	if !ok {
		return Error(c, http.StatusNotFound, "faq not found")
	}
	return Success(c, http.StatusOK, "", faq)
}

// Gallery handles GET /api/gallery.
func (h *ContentHandler) Gallery(c echo.Context) error {
	return Success(c, http.StatusOK, "", h.site.Site().Gallery)
}

// About handles GET /api/about.
func (h *ContentHandler) About(c echo.Context) error {
	return Success(c, http.StatusOK, "", h.site.Site().About)
}

// Features handles GET /api/features.
func (h *ContentHandler) Features(c echo.Context) error {
	return Success(c, http.StatusOK, "", h.site.Site().Features)
}

// CTA handles GET /api/cta.
func (h *ContentHandler) CTA(c echo.Context) error {
	return Success(c, http.StatusOK, "", h.site.Site().CTA)
}

// Navigation handles GET /api/navigation.
func (h *ContentHandler) Navigation(c echo.Context) error {
	links := h.site.Links()
	return Success(c, http.StatusOK, "", dto.NavigationResponse{
		Main:   h.site.Site().Navigation.Main,
		Quick:  links.QuickLinks(),
		Social: links.SocialLinks(),
	})
}
