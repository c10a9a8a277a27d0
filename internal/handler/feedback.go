package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/campusnav/campus-nav-server/internal/model"
	"github.com/campusnav/campus-nav-server/internal/repository"
)

// FeedbackHandler serves the feedback endpoints. Creation requires an
// authenticated user; the submitter is taken from the JWT, never the
// body.
type FeedbackHandler struct {
	Feedback *repository.FeedbackRepo
}

// NewFeedbackHandler constructs a FeedbackHandler.
func NewFeedbackHandler(f *repository.FeedbackRepo) *FeedbackHandler {
	return &FeedbackHandler{Feedback: f}
}

type createFeedbackReq struct {
	Type        string  `json:"type"`
	Subject     string  `json:"subject"`
	Description string  `json:"description"`
	Location    *string `json:"location"`
}

// List handles GET /v1/feedback, newest first.
func (h *FeedbackHandler) List(c echo.Context) error {
	rows, err := h.Feedback.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, rows)
}

// Get handles GET /v1/feedback/:id.
func (h *FeedbackHandler) Get(c echo.Context) error {
	row, err := h.Feedback.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrFeedbackNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "feedback not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, row)
}

// Create handles POST /v1/feedback.
func (h *FeedbackHandler) Create(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req createFeedbackReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if !model.ValidFeedbackType(req.Type) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid feedback type"})
	}
	if strings.TrimSpace(req.Subject) == "" || strings.TrimSpace(req.Description) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "subject and description are required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	row, err := h.Feedback.Create(ctx, model.Feedback{
		UserID:      userID,
		Type:        model.FeedbackType(req.Type),
		Subject:     req.Subject,
		Description: req.Description,
		Location:    req.Location,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create feedback failed"})
	}
	return c.JSON(http.StatusCreated, row)
}
