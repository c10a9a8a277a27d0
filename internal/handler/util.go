package handler

import (
	"fmt"

	"github.com/labstack/echo/v4"
)

// getUserID extracts the authenticated user's id stored in the context
// by the JWT middleware. JWT claims decode as interface{} values, so
// the subject is normalized back to a string here.
func getUserID(c echo.Context) (string, error) {
	v := c.Get("user_id")
	switch id := v.(type) {
	case string:
		if id != "" {
			return id, nil
		}
	case fmt.Stringer:
		return id.String(), nil
	}
	return "", fmt.Errorf("no user id in context")
}
