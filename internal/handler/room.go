package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/campusnav/campus-nav-server/internal/model"
	"github.com/campusnav/campus-nav-server/internal/repository"
)

// RoomHandler serves the read-only room endpoints.
type RoomHandler struct {
	Rooms *repository.RoomRepo
}

// NewRoomHandler constructs a RoomHandler.
func NewRoomHandler(r *repository.RoomRepo) *RoomHandler {
	return &RoomHandler{Rooms: r}
}

// roomFilterFromQuery validates the shared buildingId/floor/type query
// parameters. Unknown room types and non-numeric floors are rejected
// here so the repository only ever sees clean filter values.
func roomFilterFromQuery(c echo.Context) (repository.RoomFilter, error) {
	f := repository.RoomFilter{BuildingID: c.QueryParam("buildingId")}
	if s := c.QueryParam("floor"); s != "" {
		floor, err := strconv.Atoi(s)
		if err != nil || floor < 1 {
			return f, errors.New("invalid floor")
		}
		f.Floor = &floor
	}
	if s := c.QueryParam("type"); s != "" {
		if !model.ValidRoomType(s) {
			return f, errors.New("invalid room type")
		}
		f.Type = s
	}
	return f, nil
}

// List handles GET /v1/rooms?buildingId&floor&type.
func (h *RoomHandler) List(c echo.Context) error {
	f, err := roomFilterFromQuery(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	rows, err := h.Rooms.List(c.Request().Context(), f)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, rows)
}

// Get handles GET /v1/rooms/:id.
func (h *RoomHandler) Get(c echo.Context) error {
	row, err := h.Rooms.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, row)
}
