package model

import "time"

// POIType enumerates the categories of points of interest shown on the
// campus map. Stored verbatim in the `pois.type` column.
type POIType string

const (
	POICafeteria POIType = "CAFETERIA"
	POILibrary   POIType = "LIBRARY"
	POIRecycling POIType = "RECYCLING"
	POIATM       POIType = "ATM"
	POIParking   POIType = "PARKING"
	POIEntrance  POIType = "ENTRANCE"
	POIRestroom  POIType = "RESTROOM"
	POIOffice    POIType = "OFFICE"
)

// ValidPOIType reports whether s is a known POI type value.
func ValidPOIType(s string) bool {
	switch POIType(s) {
	case POICafeteria, POILibrary, POIRecycling, POIATM, POIParking, POIEntrance, POIRestroom, POIOffice:
		return true
	}
	return false
}

// POI represents a named, geolocated campus amenity that is not a room.
// A POI may optionally sit inside a building on a given floor (e.g. an
// ATM in the lobby) or stand alone on the map (e.g. a parking lot).
type POI struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Type        POIType   `json:"type"`
	BuildingID  *string   `json:"buildingId,omitempty"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Floor       *int      `json:"floor,omitempty"`
	Description *string   `json:"description,omitempty"`
	Icon        *string   `json:"icon,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
