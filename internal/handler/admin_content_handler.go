package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/octobees/wellness-site/internal/content"
	"github.com/octobees/wellness-site/internal/dto"
	middlewarepkg "github.com/octobees/wellness-site/internal/middleware"
)

// ContentReloader swaps the active content snapshot.
type ContentReloader interface {
	Reload() (*content.Site, error)
	Path() string
}

// AdminContentHandler exposes editor-only content maintenance endpoints.
type AdminContentHandler struct {
	store ContentReloader
}

// NewAdminContentHandler constructs an AdminContentHandler.
func NewAdminContentHandler(store ContentReloader) *AdminContentHandler {
	return &AdminContentHandler{store: store}
}

// Reload handles POST /admin/content/reload. Invalid content is rejected and
// the previous snapshot keeps serving.
func (h *AdminContentHandler) Reload(c echo.Context) error {
	editor := middlewarepkg.EditorEmailFromContext(c)

	site, err := h.store.Reload()
	if err != nil {
		log.Printf("content_reload editor=%s status=failed err=%v", editor, err)
		var invalid content.ValidationError
		if errors.As(err, &invalid) {
			return Error(c, http.StatusUnprocessableEntity, invalid.Error())
		}
		return Error(c, http.StatusInternalServerError, "unable to reload content")
	}

	source := h.store.Path()
	if source == "" {
		source = "embedded"
	}
	log.Printf("content_reload editor=%s status=ok source=%s services=%d faqs=%d", editor, source, len(site.Services), len(site.FAQs))

	return Success(c, http.StatusOK, "content reloaded", dto.ReloadResponse{
		Source:   source,
		Services: len(site.Services),
		FAQs:     len(site.FAQs),
	})
}
