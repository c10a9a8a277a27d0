package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campusnav/campus-nav-server/internal/model"
	"github.com/campusnav/campus-nav-server/internal/repository"
)

// POIHandler serves the read-only POI endpoints.
type POIHandler struct {
	POIs *repository.POIRepo
}

// NewPOIHandler constructs a POIHandler.
func NewPOIHandler(p *repository.POIRepo) *POIHandler {
	return &POIHandler{POIs: p}
}

// List handles GET /v1/pois?type.
func (h *POIHandler) List(c echo.Context) error {
	poiType := c.QueryParam("type")
	if poiType != "" && !model.ValidPOIType(poiType) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid poi type"})
	}
	rows, err := h.POIs.List(c.Request().Context(), poiType)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, rows)
}
