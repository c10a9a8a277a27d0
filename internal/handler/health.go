// Package handler contains the HTTP handlers for the campus navigation
// API. Handlers bind and validate requests, call into repositories and
// services, and translate sentinel errors into HTTP statuses.
package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Health answers load-balancer and uptime probes with a plain "ok".
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}
