package handler

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/octobees/wellness-site/internal/service"
)

// PageHandler serves per-page metadata and structured data.
type PageHandler struct {
	site *service.SiteService
}

// NewPageHandler constructs a PageHandler.
func NewPageHandler(site *service.SiteService) *PageHandler {
	return &PageHandler{site: site}
}

// Get handles GET /api/pages/:page.
func (h *PageHandler) Get(c echo.Context) error {
	page, err := h.site.Page(c.Param("page"), c.QueryParam("slug"))
	if err != nil {
		return lookupError(c, err)
	}
	return Success(c, http.StatusOK, "", page)
}

// Head handles GET /pages/:page/head and returns the rendered head fragment.
func (h *PageHandler) Head(c echo.Context) error {
	page, err := h.site.Page(c.Param("page"), c.QueryParam("slug"))
	if err != nil {
		return lookupError(c, err)
	}
	fragment, err := service.RenderHead(page)
	if err != nil {
		log.Printf("render_head page=%s err=%v", page.Name, err)
		return Error(c, http.StatusInternalServerError, "unable to render page head")
	}
	return c.HTMLBlob(http.StatusOK, fragment)
}
