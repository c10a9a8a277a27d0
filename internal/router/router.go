// Package router wires HTTP routes to their handlers and middleware.
// Public browse endpoints carry the response cache and rate limiter;
// account endpoints and mutating event endpoints sit behind JWT
// authentication.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/campusnav/campus-nav-server/internal/config"
	"github.com/campusnav/campus-nav-server/internal/handler"
	"github.com/campusnav/campus-nav-server/internal/middleware"
	"github.com/campusnav/campus-nav-server/internal/model"
)

// Handlers groups every handler the router mounts.
type Handlers struct {
	Auth         *handler.AuthHandler
	Building     *handler.BuildingHandler
	Room         *handler.RoomHandler
	POI          *handler.POIHandler
	Availability *handler.AvailabilityHandler
	Map          *handler.MapHandler
	Event        *handler.EventHandler
	Feedback     *handler.FeedbackHandler
}

// Register mounts all routes on e. rdb may be nil, in which case the
// cache and rate limiter become pass-throughs.
func Register(e *echo.Echo, h Handlers, rdb *redis.Client, jwtSecret string) {
	e.GET("/healthz", handler.Health)

	// Auth endpoints live outside the protected group.
	auth := e.Group("/v1/auth")
	auth.POST("/register", h.Auth.Register)
	auth.POST("/login", h.Auth.Login)

	// Profile endpoints require a valid access token.
	me := e.Group("/v1")
	me.Use(middleware.JWTAuth(jwtSecret))
	me.GET("/me", h.Auth.Me)
	me.PUT("/me", h.Auth.UpdateProfile)

	// Public browse endpoints: cached and rate limited when Redis is up.
	browse := e.Group("/v1")
	browse.Use(middleware.RateLimit(rdb, config.LoadRateLimitConfig()))
	browse.Use(middleware.ResponseCache(rdb, config.LoadCacheConfig()))

	browse.GET("/buildings", h.Building.List)
	browse.GET("/buildings/:id", h.Building.Get)
	browse.GET("/buildings/:id/rooms", h.Building.GetRooms)
	browse.GET("/rooms", h.Room.List)
	browse.GET("/rooms/:id", h.Room.Get)
	browse.GET("/pois", h.POI.List)

	// Availability is recomputed per request; caching it still smooths
	// dashboard refresh storms within the short TTL.
	browse.GET("/availability", h.Availability.List)
	browse.GET("/availability/:roomId", h.Availability.Get)

	browse.GET("/map/buildings", h.Map.GetBuildings)
	browse.GET("/map/pois", h.Map.GetPOIs)
	browse.GET("/map/rooms", h.Map.GetRooms)
	browse.GET("/map/search", h.Map.SearchAll)

	// Events: reads are public, writes require staff or admin.
	e.GET("/v1/events", h.Event.List)
	e.GET("/v1/events/upcoming", h.Event.ListUpcoming)
	e.GET("/v1/events/:id", h.Event.Get)
	e.GET("/v1/events/:id/registrations", h.Event.ListRegistrations)

	manage := e.Group("/v1/events")
	manage.Use(middleware.JWTAuth(jwtSecret))
	manage.Use(middleware.RequireRole(model.RoleStaff, model.RoleAdmin))
	manage.POST("", h.Event.Create)
	manage.PUT("/:id", h.Event.Update)
	manage.DELETE("/:id", h.Event.Delete)

	// Registration requires any authenticated account.
	register := e.Group("/v1/events")
	register.Use(middleware.JWTAuth(jwtSecret))
	register.POST("/:id/register", h.Event.Register)
	register.DELETE("/:id/register/:userId", h.Event.Unregister)

	// Feedback: reads are public, creation requires authentication.
	e.GET("/v1/feedback", h.Feedback.List)
	e.GET("/v1/feedback/:id", h.Feedback.Get)
	fb := e.Group("/v1/feedback")
	fb.Use(middleware.JWTAuth(jwtSecret))
	fb.POST("", h.Feedback.Create)
}
