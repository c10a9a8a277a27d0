// Package queue defines the message payloads exchanged over the broker
// and the background consumer that turns them into the registration
// audit log.
package queue

// EventRegisteredMessage is published when a user successfully
// registers for an event. It carries enough context for downstream
// consumers (audit log, notifications) without querying the primary
// database.
type EventRegisteredMessage struct {
	RegistrationID string `json:"registration_id"`
	EventID        string `json:"event_id"`
	EventTitle     string `json:"event_title"`
	UserID         string `json:"user_id"`
	UserEmail      string `json:"user_email"`
	RegisteredAt   string `json:"registered_at"`
}
