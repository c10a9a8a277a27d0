package handler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/campusnav/campus-nav-server/internal/model"
	"github.com/campusnav/campus-nav-server/internal/queue"
	"github.com/campusnav/campus-nav-server/internal/repository"
	publisher "github.com/campusnav/campus-nav-server/internal/service"
)

// EventHandler serves event CRUD and the registration ledger
// endpoints.
type EventHandler struct {
	Events        *repository.EventRepo
	Registrations *repository.RegistrationRepo
	Users         *repository.UserRepo
}

// NewEventHandler constructs an EventHandler.
func NewEventHandler(e *repository.EventRepo, g *repository.RegistrationRepo, u *repository.UserRepo) *EventHandler {
	return &EventHandler{Events: e, Registrations: g, Users: u}
}

// ----- DTOs -----

type eventReq struct {
	Title                *string    `json:"title"`
	Description          *string    `json:"description"`
	Type                 *string    `json:"type"`
	StartTime            *time.Time `json:"startTime"`
	EndTime              *time.Time `json:"endTime"`
	Location             *string    `json:"location"`
	Organizer            *string    `json:"organizer"`
	ImageURL             *string    `json:"imageUrl"`
	RegistrationRequired *bool      `json:"registrationRequired"`
	MaxParticipants      *int       `json:"maxParticipants"`
}

type eventRegisterReq struct {
	UserID string `json:"userId"`
}

type registrationResp struct {
	model.EventRegistration
	Event model.Event       `json:"event"`
	User  model.UserSummary `json:"user"`
}

// List handles GET /v1/events?type.
func (h *EventHandler) List(c echo.Context) error {
	eventType := c.QueryParam("type")
	if eventType != "" && !model.ValidEventType(eventType) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid event type"})
	}
	rows, err := h.Events.List(c.Request().Context(), eventType)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, rows)
}

// ListUpcoming handles GET /v1/events/upcoming: the next ten events
// starting from now.
func (h *EventHandler) ListUpcoming(c echo.Context) error {
	rows, err := h.Events.ListUpcoming(c.Request().Context(), time.Now(), 10)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, rows)
}

// Get handles GET /v1/events/:id with registrations attached.
func (h *EventHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()
	event, err := h.Events.GetByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "event not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	registrations, err := h.Registrations.ListByEvent(ctx, event.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"event":         event,
		"registrations": registrations,
	})
}

// Create handles POST /v1/events.
func (h *EventHandler) Create(c echo.Context) error {
	var req eventReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Title == nil || req.Type == nil || req.StartTime == nil || req.EndTime == nil ||
		req.Location == nil || req.Organizer == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "title, type, startTime, endTime, location and organizer are required"})
	}
	if !model.ValidEventType(*req.Type) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid event type"})
	}
	if !req.StartTime.Before(*req.EndTime) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "startTime must be before endTime"})
	}
	if req.MaxParticipants != nil && *req.MaxParticipants < 1 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "maxParticipants must be at least 1"})
	}

	e := model.Event{
		Title:           *req.Title,
		Description:     req.Description,
		Type:            model.EventType(*req.Type),
		StartTime:       *req.StartTime,
		EndTime:         *req.EndTime,
		Location:        *req.Location,
		Organizer:       *req.Organizer,
		ImageURL:        req.ImageURL,
		MaxParticipants: req.MaxParticipants,
	}
	if req.RegistrationRequired != nil {
		e.RegistrationRequired = *req.RegistrationRequired
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	created, err := h.Events.Create(ctx, e)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create event failed"})
	}
	return c.JSON(http.StatusCreated, created)
}

// Update handles PUT /v1/events/:id. Absent fields keep their current
// value.
func (h *EventHandler) Update(c echo.Context) error {
	var req eventReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	row, err := h.Events.GetByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "event not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	e := row.Event
	if req.Title != nil {
		e.Title = *req.Title
	}
	if req.Description != nil {
		e.Description = req.Description
	}
	if req.Type != nil {
		if !model.ValidEventType(*req.Type) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid event type"})
		}
		e.Type = model.EventType(*req.Type)
	}
	if req.StartTime != nil {
		e.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		e.EndTime = *req.EndTime
	}
	if !e.StartTime.Before(e.EndTime) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "startTime must be before endTime"})
	}
	if req.Location != nil {
		e.Location = *req.Location
	}
	if req.Organizer != nil {
		e.Organizer = *req.Organizer
	}
	if req.ImageURL != nil {
		e.ImageURL = req.ImageURL
	}
	if req.RegistrationRequired != nil {
		e.RegistrationRequired = *req.RegistrationRequired
	}
	if req.MaxParticipants != nil {
		if *req.MaxParticipants < 1 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "maxParticipants must be at least 1"})
		}
		e.MaxParticipants = req.MaxParticipants
	}

	updated, err := h.Events.Update(ctx, e)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "event not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update event failed"})
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /v1/events/:id.
func (h *EventHandler) Delete(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Events.Delete(ctx, c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "event not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete event failed"})
	}
	return c.NoContent(http.StatusNoContent)
}

// Register handles POST /v1/events/:id/register. The capacity and
// uniqueness gates live in the repository; this handler maps their
// sentinel errors onto statuses and attaches the event and user to the
// created registration.
func (h *EventHandler) Register(c echo.Context) error {
	eventID := c.Param("id")
	var req eventRegisterReq
	if err := c.Bind(&req); err != nil || req.UserID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "userId is required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	user, err := h.Users.GetByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	reg, err := h.Registrations.Register(ctx, eventID, user.ID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrEventNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "event not found"})
		case errors.Is(err, repository.ErrEventFull):
			return c.JSON(http.StatusConflict, echo.Map{"error": "event is fully booked"})
		case errors.Is(err, repository.ErrAlreadyRegistered):
			return c.JSON(http.StatusConflict, echo.Map{"error": "already registered for this event"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "register failed"})
	}

	event, err := h.Events.GetByID(ctx, eventID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	// Best effort: the registration stands even if the broker is down.
	if err := publisher.PublishEventRegistered(ctx, queue.EventRegisteredMessage{
		RegistrationID: reg.ID,
		EventID:        event.ID,
		EventTitle:     event.Title,
		UserID:         user.ID,
		UserEmail:      user.Email,
		RegisteredAt:   reg.RegisteredAt.UTC().Format(time.RFC3339),
	}); err != nil {
		log.Printf("events: publish registration event failed: %v", err)
	}

	return c.JSON(http.StatusCreated, registrationResp{
		EventRegistration: reg,
		Event:             event.Event,
		User: model.UserSummary{
			ID:      user.ID,
			Name:    user.Name,
			Email:   user.Email,
			Picture: user.Picture,
		},
	})
}

// Unregister handles DELETE /v1/events/:id/register/:userId.
func (h *EventHandler) Unregister(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	err := h.Registrations.Unregister(ctx, c.Param("id"), c.Param("userId"))
	if err != nil {
		if errors.Is(err, repository.ErrRegistrationNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "registration not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "unregister failed"})
	}
	return c.NoContent(http.StatusNoContent)
}

// ListRegistrations handles GET /v1/events/:id/registrations.
func (h *EventHandler) ListRegistrations(c echo.Context) error {
	ctx := c.Request().Context()
	eventID := c.Param("id")
	if _, err := h.Events.GetByID(ctx, eventID); err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "event not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	rows, err := h.Registrations.ListByEvent(ctx, eventID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, rows)
}
