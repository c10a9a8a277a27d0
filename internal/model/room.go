package model

import "time"

// RoomType enumerates the kinds of bookable rooms on campus. The values
// are stored verbatim in the `rooms.type` column.
type RoomType string

const (
	RoomStudyRoom   RoomType = "STUDY_ROOM"
	RoomComputerLab RoomType = "COMPUTER_LAB"
	RoomClassroom   RoomType = "CLASSROOM"
	RoomLectureHall RoomType = "LECTURE_HALL"
	RoomMeetingRoom RoomType = "MEETING_ROOM"
)

// ValidRoomType reports whether s is a known room type value.
func ValidRoomType(s string) bool {
	switch RoomType(s) {
	case RoomStudyRoom, RoomComputerLab, RoomClassroom, RoomLectureHall, RoomMeetingRoom:
		return true
	}
	return false
}

// Room represents a single room inside a building as stored in the
// `rooms` table. Every room belongs to exactly one building for its
// lifetime. Facilities is a free-form JSON object describing equipment
// (whiteboard, projector, outlets, ...).
//
// Fields:
//  ID          – primary key (UUID).
//  Code        – unique room code (e.g. "A101").
//  Name        – display name.
//  BuildingID  – owning building (required).
//  Floor       – floor number, 1-based.
//  Capacity    – seat count (> 0).
//  Type        – room classification, one of the RoomType values.
//  Latitude    – optional indoor-map latitude.
//  Longitude   – optional indoor-map longitude.
//  Description – optional description.
//  Facilities  – optional equipment map stored as a JSON column.
//  CreatedAt   – creation timestamp.
//  UpdatedAt   – last update timestamp.
type Room struct {
	ID          string         `json:"id"`
	Code        string         `json:"code"`
	Name        string         `json:"name"`
	BuildingID  string         `json:"buildingId"`
	Floor       int            `json:"floor"`
	Capacity    int            `json:"capacity"`
	Type        RoomType       `json:"type"`
	Latitude    *float64       `json:"latitude,omitempty"`
	Longitude   *float64       `json:"longitude,omitempty"`
	Description *string        `json:"description,omitempty"`
	Facilities  map[string]any `json:"facilities,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}
