package model

import "time"

// Building represents a campus building as stored in the `buildings`
// table. The code is a short unique identifier painted on campus maps
// (e.g. "A", "STEM"). Coordinates locate the building entrance on the
// map overlay. A building owns zero or more rooms and POIs by foreign
// key.
//
// Fields:
//  ID          – primary key (UUID).
//  Code        – unique short building code; immutable once created.
//  Name        – display name.
//  Description – optional long description.
//  Latitude    – WGS84 latitude of the building marker.
//  Longitude   – WGS84 longitude of the building marker.
//  Floors      – number of floors (≥ 1).
//  ImageURL    – optional photo shown on the building card.
//  CreatedAt   – creation timestamp.
//  UpdatedAt   – last update timestamp.
type Building struct {
	ID          string    `json:"id"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Floors      int       `json:"floors"`
	ImageURL    *string   `json:"imageUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// BuildingSummary carries the two building fields attached to rooms and
// POIs in list responses.
type BuildingSummary struct {
	Code string `json:"code"`
	Name string `json:"name"`
}
