// Package repository implements the persistence layer on top of
// database/sql. This file defines sentinel error values shared across
// repositories so that handlers can translate failure kinds into HTTP
// statuses with errors.Is instead of string matching. Not-found errors
// map to 404; conflict-style errors (duplicate registration, full
// event, duplicate email or student ID) map to 409.
package repository

import "errors"

// ErrBuildingNotFound is returned when a building id does not resolve.
var ErrBuildingNotFound = errors.New("building not found")

// ErrRoomNotFound is returned when a room id or code does not resolve.
var ErrRoomNotFound = errors.New("room not found")

// ErrPOINotFound is returned when a POI id does not resolve.
var ErrPOINotFound = errors.New("poi not found")

// ErrEventNotFound is returned when an event id does not resolve.
var ErrEventNotFound = errors.New("event not found")

// ErrFeedbackNotFound is returned when a feedback id does not resolve.
var ErrFeedbackNotFound = errors.New("feedback not found")

// ErrUserNotFound is returned when a user id or email does not resolve.
var ErrUserNotFound = errors.New("user not found")

// ErrRegistrationNotFound is returned when no registration exists for a
// given (event, user) pair.
var ErrRegistrationNotFound = errors.New("registration not found")

// ErrAlreadyRegistered is returned when a user attempts to register a
// second time for the same event.
var ErrAlreadyRegistered = errors.New("already registered for this event")

// ErrEventFull is returned when an event has reached its
// max_participants cap.
var ErrEventFull = errors.New("event is fully booked")

// ErrEmailExists is returned when creating a user whose email is
// already taken.
var ErrEmailExists = errors.New("email already registered")

// ErrStudentIDExists is returned when creating a user whose student ID
// is already taken.
var ErrStudentIDExists = errors.New("student id already registered")
