package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/campusnav/campus-nav-server/internal/availability"
	"github.com/campusnav/campus-nav-server/internal/config"
	"github.com/campusnav/campus-nav-server/internal/database"
	"github.com/campusnav/campus-nav-server/internal/handler"
	"github.com/campusnav/campus-nav-server/internal/queue"
	"github.com/campusnav/campus-nav-server/internal/repository"
	"github.com/campusnav/campus-nav-server/internal/router"
	"github.com/campusnav/campus-nav-server/internal/search"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	// Nil when Redis is unreachable; cache and rate limiter degrade to
	// pass-throughs.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable, caching and rate limiting disabled")
	}

	buildings := repository.NewBuildingRepo(db)
	rooms := repository.NewRoomRepo(db)
	pois := repository.NewPOIRepo(db)
	events := repository.NewEventRepo(db)
	registrations := repository.NewRegistrationRepo(db)
	feedback := repository.NewFeedbackRepo(db)
	users := repository.NewUserRepo(db)

	projector := availability.NewProjector(availability.NewRand(time.Now().UnixNano()))
	availabilitySvc := availability.NewService(rooms, availability.SystemClock{}, projector)
	searchAgg := search.NewAggregator(buildings, rooms, pois)

	h := router.Handlers{
		Auth:         handler.NewAuthHandler(cfg, users),
		Building:     handler.NewBuildingHandler(buildings, rooms, pois),
		Room:         handler.NewRoomHandler(rooms),
		POI:          handler.NewPOIHandler(pois),
		Availability: handler.NewAvailabilityHandler(availabilitySvc),
		Map:          handler.NewMapHandler(buildings, rooms, pois, searchAgg),
		Event:        handler.NewEventHandler(events, registrations, users),
		Feedback:     handler.NewFeedbackHandler(feedback),
	}

	e := echo.New()
	e.HideBanner = true
	router.Register(e, h, rdb, cfg.JWTSecret)

	// The registration audit consumer reconnects on its own; it never
	// takes the API down.
	go func() {
		if err := queue.StartRegistrationConsumer(); err != nil {
			log.Printf("registration consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
