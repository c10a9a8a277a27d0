package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/campusnav/campus-nav-server/internal/availability"
	"github.com/campusnav/campus-nav-server/internal/model"
	"github.com/campusnav/campus-nav-server/internal/repository"
)

// AvailabilityHandler serves the room availability endpoints on top of
// the availability service.
type AvailabilityHandler struct {
	Svc *availability.Service
}

// NewAvailabilityHandler constructs an AvailabilityHandler.
func NewAvailabilityHandler(svc *availability.Service) *AvailabilityHandler {
	return &AvailabilityHandler{Svc: svc}
}

// List handles GET /v1/availability?buildingId&floor&type&available.
func (h *AvailabilityHandler) List(c echo.Context) error {
	f := availability.Filters{BuildingID: c.QueryParam("buildingId")}
	if s := c.QueryParam("floor"); s != "" {
		floor, err := strconv.Atoi(s)
		if err != nil || floor < 1 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid floor"})
		}
		f.Floor = &floor
	}
	if s := c.QueryParam("type"); s != "" {
		if !model.ValidRoomType(s) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid room type"})
		}
		f.Type = s
	}
	if s := c.QueryParam("available"); s != "" {
		want, err := strconv.ParseBool(s)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid available flag"})
		}
		f.Available = &want
	}

	resp, err := h.Svc.List(c.Request().Context(), f)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, resp)
}

// Get handles GET /v1/availability/:roomId. The room resolves by id or
// by room code.
func (h *AvailabilityHandler) Get(c echo.Context) error {
	proj, err := h.Svc.Get(c.Request().Context(), c.Param("roomId"))
	if err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, proj)
}
