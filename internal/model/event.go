package model

import "time"

// EventType enumerates the categories of campus events. Stored verbatim
// in the `events.type` column.
type EventType string

const (
	EventAcademic EventType = "ACADEMIC"
	EventClub     EventType = "CLUB"
	EventWorkshop EventType = "WORKSHOP"
	EventCareer   EventType = "CAREER"
	EventSocial   EventType = "SOCIAL"
	EventOfficial EventType = "OFFICIAL"
)

// ValidEventType reports whether s is a known event type value.
func ValidEventType(s string) bool {
	switch EventType(s) {
	case EventAcademic, EventClub, EventWorkshop, EventCareer, EventSocial, EventOfficial:
		return true
	}
	return false
}

// Event represents a scheduled campus event as stored in the `events`
// table. Location is free text rather than a room foreign key because
// events frequently happen outdoors or off campus. StartTime must be
// strictly before EndTime. When MaxParticipants is set, registrations
// beyond that cap are rejected.
//
// Fields:
//  ID                   – primary key (UUID).
//  Title                – event title.
//  Description          – optional long description.
//  Type                 – category, one of the EventType values.
//  StartTime            – when the event begins.
//  EndTime              – when the event ends (after StartTime).
//  Location             – free-text venue.
//  Organizer            – organizing person or club.
//  ImageURL             – optional banner image.
//  RegistrationRequired – whether attendance requires registering.
//  MaxParticipants      – optional registration cap (nil = unlimited).
//  CreatedAt            – creation timestamp.
//  UpdatedAt            – last update timestamp.
type Event struct {
	ID                   string    `json:"id"`
	Title                string    `json:"title"`
	Description          *string   `json:"description,omitempty"`
	Type                 EventType `json:"type"`
	StartTime            time.Time `json:"startTime"`
	EndTime              time.Time `json:"endTime"`
	Location             string    `json:"location"`
	Organizer            string    `json:"organizer"`
	ImageURL             *string   `json:"imageUrl,omitempty"`
	RegistrationRequired bool      `json:"registrationRequired"`
	MaxParticipants      *int      `json:"maxParticipants,omitempty"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

// EventRegistration links one user to one event. At most one
// registration may exist per (event, user) pair; the table carries a
// unique index over the two foreign keys to back that invariant.
type EventRegistration struct {
	ID           string    `json:"id"`
	EventID      string    `json:"eventId"`
	UserID       string    `json:"userId"`
	RegisteredAt time.Time `json:"registeredAt"`
}
