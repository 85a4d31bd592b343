package handler

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/octobees/wellness-site/internal/dto"
	"github.com/octobees/wellness-site/internal/service"
	"github.com/octobees/wellness-site/internal/service/jsonld"
)

// SchemaHandler serves raw JSON-LD documents.
type SchemaHandler struct {
	site *service.SiteService
}

// NewSchemaHandler constructs a SchemaHandler.
func NewSchemaHandler(site *service.SiteService) *SchemaHandler {
	return &SchemaHandler{site: site}
}

// Types handles GET /schema.
func (h *SchemaHandler) Types(c echo.Context) error {
	return Success(c, http.StatusOK, "", dto.SchemaTypesResponse{Types: service.SchemaTypes()})
}

// Get handles GET /schema/:type. ?key= selects the subject for types that
// describe one record, such as a service slug or a team member id.
func (h *SchemaHandler) Get(c echo.Context) error {
	obj, err := h.site.Schema(c.Param("type"), c.QueryParam("key"))
	if err != nil {
		return lookupError(c, err)
	}
	data, err := jsonld.Marshal(obj)
	if err != nil {
		log.Printf("schema_marshal type=%s err=%v", c.Param("type"), err)
		return Error(c, http.StatusInternalServerError, "unable to encode schema")
	}
	return c.Blob(http.StatusOK, jsonld.MIMEType, data)
}
