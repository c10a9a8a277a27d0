package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campusnav/campus-nav-server/internal/model"
	"github.com/campusnav/campus-nav-server/internal/repository"
)

// BuildingHandler serves the read-only building endpoints.
type BuildingHandler struct {
	Buildings *repository.BuildingRepo
	Rooms     *repository.RoomRepo
	POIs      *repository.POIRepo
}

// NewBuildingHandler constructs a BuildingHandler.
func NewBuildingHandler(b *repository.BuildingRepo, r *repository.RoomRepo, p *repository.POIRepo) *BuildingHandler {
	return &BuildingHandler{Buildings: b, Rooms: r, POIs: p}
}

// buildingDetail is the GET /v1/buildings/:id payload: the building
// with its rooms (floor, code ascending) and POIs attached.
type buildingDetail struct {
	model.Building
	Rooms []repository.RoomRow `json:"rooms"`
	POIs  []repository.POIRow  `json:"pois"`
}

// List handles GET /v1/buildings.
func (h *BuildingHandler) List(c echo.Context) error {
	rows, err := h.Buildings.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, rows)
}

// Get handles GET /v1/buildings/:id.
func (h *BuildingHandler) Get(c echo.Context) error {
	id := c.Param("id")
	ctx := c.Request().Context()

	building, err := h.Buildings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBuildingNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "building not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	rooms, err := h.Rooms.ListByBuilding(ctx, building.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	pois, err := h.POIs.ListByBuilding(ctx, building.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, buildingDetail{Building: building, Rooms: rooms, POIs: pois})
}

// GetRooms handles GET /v1/buildings/:id/rooms.
func (h *BuildingHandler) GetRooms(c echo.Context) error {
	id := c.Param("id")
	ctx := c.Request().Context()

	// Resolve the building first so an unknown id is a 404 rather than
	// an empty list.
	if _, err := h.Buildings.GetByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrBuildingNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "building not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	rooms, err := h.Rooms.ListByBuilding(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, rooms)
}
