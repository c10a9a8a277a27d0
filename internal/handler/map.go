package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campusnav/campus-nav-server/internal/model"
	"github.com/campusnav/campus-nav-server/internal/repository"
	"github.com/campusnav/campus-nav-server/internal/search"
)

// MapHandler serves the map overlay endpoints and the campus-wide text
// search.
type MapHandler struct {
	Buildings *repository.BuildingRepo
	Rooms     *repository.RoomRepo
	POIs      *repository.POIRepo
	Search    *search.Aggregator
}

// NewMapHandler constructs a MapHandler.
func NewMapHandler(b *repository.BuildingRepo, r *repository.RoomRepo, p *repository.POIRepo, s *search.Aggregator) *MapHandler {
	return &MapHandler{Buildings: b, Rooms: r, POIs: p, Search: s}
}

// GetBuildings handles GET /v1/map/buildings.
func (h *MapHandler) GetBuildings(c echo.Context) error {
	rows, err := h.Buildings.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, rows)
}

// GetPOIs handles GET /v1/map/pois?type.
func (h *MapHandler) GetPOIs(c echo.Context) error {
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

// GetRooms handles GET /v1/map/rooms?buildingId.
func (h *MapHandler) GetRooms(c echo.Context) error {
	rows, err := h.Rooms.List(c.Request().Context(), repository.RoomFilter{
		BuildingID: c.QueryParam("buildingId"),
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, rows)
}

// SearchAll handles GET /v1/map/search?q=. Queries shorter than two
// characters come back as empty lists rather than errors.
func (h *MapHandler) SearchAll(c echo.Context) error {
	result, err := h.Search.Search(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "search failed"})
	}
	return c.JSON(http.StatusOK, result)
}
