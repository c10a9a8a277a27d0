// Package availability derives point-in-time room availability
// projections. No real booking feed exists yet; occupancy is simulated
// by a policy that leans on the time of day and the room type. The
// policy is isolated behind the Projector so a real scheduling backend
// can replace it later without touching callers, and the clock and
// random source are injected so tests can pin every outcome.
package availability

import (
	"math/rand"
	"time"

	"github.com/campusnav/campus-nav-server/internal/model"
)

// Rand is the random source consumed by the simulation policy.
// Float64 returns a value in [0,1); IntN returns a value in [0,n).
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// Clock supplies the reference instant for projections.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock reading the wall clock.
type SystemClock struct{}

// Now returns the current local time.
func (SystemClock) Now() time.Time { return time.Now() }

type seededRand struct{ r *rand.Rand }

func (s seededRand) Float64() float64 { return s.r.Float64() }
func (s seededRand) IntN(n int) int   { return s.r.Intn(n) }

// NewRand returns a Rand backed by math/rand seeded with seed. The
// server seeds from the clock; tests pass a fixed seed for
// reproducible projections.
func NewRand(seed int64) Rand {
	return seededRand{r: rand.New(rand.NewSource(seed))}
}

// Booking describes one (simulated) room booking. Occupant and Purpose
// are only set on current bookings; upcoming bookings carry times only.
type Booking struct {
	Occupant  string    `json:"user,omitempty"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Purpose   string    `json:"purpose,omitempty"`
}

// Projection is the derived, non-persisted availability snapshot for
// one room at one instant. CurrentBooking is present exactly when
// Available is false, and NextAvailable then equals its end time.
type Projection struct {
	RoomID         string         `json:"roomId"`
	Name           string         `json:"name"`
	Building       string         `json:"building"`
	Floor          int            `json:"floor"`
	Capacity       int            `json:"capacity"`
	Type           model.RoomType `json:"type"`
	Available      bool           `json:"available"`
	CurrentBooking *Booking       `json:"currentBooking,omitempty"`
	NextBooking    *Booking       `json:"nextBooking,omitempty"`
	NextAvailable  *time.Time     `json:"nextAvailable,omitempty"`
}

// occupants is the fixed catalog current bookings draw their label
// from.
var occupants = [...]string{
	"CS101 - Intro to Programming",
	"Mathematics Study Group",
	"Engineering Club",
	"Project Team Meeting",
	"Web Development Workshop",
}

// Projector turns a room and an instant into a Projection. It is pure
// given its random source.
type Projector struct {
	rng Rand
}

// NewProjector returns a Projector drawing from rng.
func NewProjector(rng Rand) *Projector { return &Projector{rng: rng} }

// Project derives the availability snapshot for room at now. Computer
// labs are biased towards being occupied during business hours (local
// wall-clock 09:00–17:00, 60% occupied) and always free outside them;
// every other room type is available 60% of the time regardless of
// hour.
func (p *Projector) Project(room model.Room, buildingName string, now time.Time) Projection {
	isComputerLab := room.Type == model.RoomComputerLab
	hour := now.Hour()
	isBusinessHours := hour >= 9 && hour < 17

	var available bool
	if isComputerLab {
		available = !isBusinessHours || p.rng.Float64() > 0.6
	} else {
		available = p.rng.Float64() > 0.4
	}

	proj := Projection{
		RoomID:    room.ID,
		Name:      room.Name,
		Building:  buildingName,
		Floor:     room.Floor,
		Capacity:  room.Capacity,
		Type:      room.Type,
		Available: available,
	}

	if !available {
		// Simulate a session that started 30 minutes ago and runs another
		// one to two whole hours.
		end := now.Add(time.Duration(p.rng.IntN(2)+1) * time.Hour)
		proj.CurrentBooking = &Booking{
			Occupant:  occupants[p.rng.IntN(len(occupants))],
			StartTime: now.Add(-30 * time.Minute),
			EndTime:   end,
			Purpose:   "Study Group",
		}
		proj.NextAvailable = &end
		return proj
	}

	// Half the free rooms get an upcoming two-hour booking starting two
	// to four hours out.
	if p.rng.Float64() > 0.5 {
		start := now.Add(time.Duration(p.rng.IntN(3)+2) * time.Hour)
		end := start.Add(2 * time.Hour)
		proj.NextBooking = &Booking{StartTime: start, EndTime: end}
	}
	return proj
}
