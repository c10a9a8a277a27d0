package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campusnav/campus-nav-server/internal/model"
)

// RequireRole returns middleware that rejects requests whose
// authenticated role is not in the allowed set with 403. It assumes
// JWTAuth ran earlier and stored the role claim under "role".
func RequireRole(roles ...model.Role) echo.MiddlewareFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[string(r)] = true
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get("role").(string)
			if !ok || !allowed[role] {
				return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
