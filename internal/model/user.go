package model

import "time"

// Role enumerates the access levels of application users.
type Role string

const (
	RoleStudent Role = "STUDENT"
	RoleStaff   Role = "STAFF"
	RoleAdmin   Role = "ADMIN"
	RoleGuest   Role = "GUEST"
)

// User represents an application user as stored in the `users` table.
// Accounts are created with an email and a bcrypt password hash; the
// optional student ID is unique when present. The password hash is
// never serialized.
//
// Fields:
//  ID           – primary key (UUID).
//  Email        – unique email address, stored lower-cased.
//  StudentID    – optional unique student number.
//  Name         – display name.
//  PasswordHash – bcrypt hash of the password.
//  Picture      – optional avatar URL.
//  Role         – access level, one of the Role values.
//  CreatedAt    – creation timestamp.
//  UpdatedAt    – last update timestamp.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	StudentID    *string   `json:"studentId,omitempty"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	Picture      *string   `json:"picture,omitempty"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// UserSummary carries the public profile fields attached to event
// registrations and feedback entries.
type UserSummary struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Picture *string `json:"picture,omitempty"`
}
