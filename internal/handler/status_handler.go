package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/octobees/wellness-site/internal/dto"
	"github.com/octobees/wellness-site/internal/entity"
	"github.com/octobees/wellness-site/internal/service"
)

// StatusHandler reports the live opening status of the practice.
type StatusHandler struct {
	site    *service.SiteService
	refresh time.Duration
}

// NewStatusHandler constructs a StatusHandler. refresh is the polling interval
// advertised to clients.
func NewStatusHandler(site *service.SiteService, refresh time.Duration) *StatusHandler {
	if refresh <= 0 {
		refresh = time.Minute
	}
	return &StatusHandler{site: site, refresh: refresh}
}

// Get handles GET /api/status.
func (h *StatusHandler) Get(c echo.Context) error {
	status := h.site.Status()
	hours := h.site.Site().Business.Hours

	entries := make([]dto.HoursEntry, 0, len(entity.Weekdays))
	for _, day := range entity.Weekdays {
		display := hours[day]
		if display == "" {
			display = entity.ClosedHours
		}
		entries = append(entries, dto.HoursEntry{Day: day, Hours: display})
	}

	seconds := int(h.refresh / time.Second)
	c.Response().Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", seconds))

	return Success(c, http.StatusOK, "status evaluated", dto.StatusResponse{
		IsOpen:              status.IsOpen,
		Message:             status.Message,
		Timezone:            h.site.Timezone(),
		Hours:               entries,
		RefreshAfterSeconds: seconds,
	})
}
