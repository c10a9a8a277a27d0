package repository

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/campusnav/campus-nav-server/internal/model"
)

// RoomRepo provides read access to the `rooms` table. List implements
// the query/filter layer: each supplied filter narrows the result by
// exact match, absent filters impose no constraint, and rows come back
// in a total, storage-independent order (building code, floor, room
// code — all ascending) so repeated calls over unchanged data yield
// identical sequences.
type RoomRepo struct{ db *sql.DB }

// NewRoomRepo returns a RoomRepo bound to the given database.
func NewRoomRepo(db *sql.DB) *RoomRepo { return &RoomRepo{db: db} }

// RoomFilter carries the optional predicates accepted by List. Zero
// values mean "no constraint". Type is assumed pre-validated by the
// handler.
type RoomFilter struct {
	BuildingID string
	Floor      *int
	Type       string
}

// RoomRow is a room together with its owning building's code and name,
// the shape returned by room listings and search.
type RoomRow struct {
	model.Room
	Building model.BuildingSummary `json:"building"`
}

const roomColumns = `r.id, r.code, r.name, r.building_id, r.floor, r.capacity, r.type,
	r.latitude, r.longitude, r.description, r.facilities, r.created_at, r.updated_at,
	b.code, b.name`

func scanRoomRow(scan func(dest ...any) error, row *RoomRow) error {
	var lat, lng sql.NullFloat64
	var desc, facilities sql.NullString
	if err := scan(&row.ID, &row.Code, &row.Name, &row.BuildingID, &row.Floor, &row.Capacity, &row.Type,
		&lat, &lng, &desc, &facilities, &row.CreatedAt, &row.UpdatedAt,
		&row.Building.Code, &row.Building.Name); err != nil {
		return err
	}
	if lat.Valid {
		row.Latitude = &lat.Float64
	}
	if lng.Valid {
		row.Longitude = &lng.Float64
	}
	if desc.Valid {
		row.Description = &desc.String
	}
	if facilities.Valid && facilities.String != "" {
		// Facilities is a JSON column; a malformed value is treated as absent.
		var m map[string]any
		if err := json.Unmarshal([]byte(facilities.String), &m); err == nil {
			row.Facilities = m
		}
	}
	return nil
}

// List returns rooms matching the filter, ordered by building code,
// floor and room code ascending.
func (r *RoomRepo) List(ctx context.Context, f RoomFilter) ([]RoomRow, error) {
	q := `SELECT ` + roomColumns + `
		FROM rooms r
		JOIN buildings b ON b.id = r.building_id`
	where := []string{}
	args := []any{}
	if f.BuildingID != "" {
		where = append(where, "r.building_id = ?")
		args = append(args, f.BuildingID)
	}
	if f.Floor != nil {
		where = append(where, "r.floor = ?")
		args = append(args, *f.Floor)
	}
	if f.Type != "" {
		where = append(where, "r.type = ?")
		args = append(args, f.Type)
	}
	for i, cond := range where {
		if i == 0 {
			q += " WHERE " + cond
		} else {
			q += " AND " + cond
		}
	}
	q += " ORDER BY b.code ASC, r.floor ASC, r.code ASC"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []RoomRow{}
	for rows.Next() {
		var row RoomRow
		if err := scanRoomRow(rows.Scan, &row); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// ListByBuilding returns all rooms of one building ordered by floor and
// code ascending.
func (r *RoomRepo) ListByBuilding(ctx context.Context, buildingID string) ([]RoomRow, error) {
	const q = `SELECT ` + roomColumns + `
		FROM rooms r
		JOIN buildings b ON b.id = r.building_id
		WHERE r.building_id = ?
		ORDER BY r.floor ASC, r.code ASC`
	rows, err := r.db.QueryContext(ctx, q, buildingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []RoomRow{}
	for rows.Next() {
		var row RoomRow
		if err := scanRoomRow(rows.Scan, &row); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// GetByID returns one room with its building summary, or
// ErrRoomNotFound.
func (r *RoomRepo) GetByID(ctx context.Context, id string) (RoomRow, error) {
	const q = `SELECT ` + roomColumns + `
		FROM rooms r
		JOIN buildings b ON b.id = r.building_id
		WHERE r.id = ? LIMIT 1`
	var row RoomRow
	err := scanRoomRow(r.db.QueryRowContext(ctx, q, id).Scan, &row)
	if err == sql.ErrNoRows {
		return row, ErrRoomNotFound
	}
	return row, err
}

// GetByIDOrCode resolves a room by primary key or, failing that, by its
// unique room code. Availability lookups accept either form so clients
// can ask for "A101" directly.
func (r *RoomRepo) GetByIDOrCode(ctx context.Context, key string) (RoomRow, error) {
	const q = `SELECT ` + roomColumns + `
		FROM rooms r
		JOIN buildings b ON b.id = r.building_id
		WHERE r.id = ? OR r.code = ? LIMIT 1`
	var row RoomRow
	err := scanRoomRow(r.db.QueryRowContext(ctx, q, key, key).Scan, &row)
	if err == sql.ErrNoRows {
		return row, ErrRoomNotFound
	}
	return row, err
}

// Search returns rooms whose name or code contains the query string,
// case-insensitively, capped at limit rows.
func (r *RoomRepo) Search(ctx context.Context, query string, limit int) ([]RoomRow, error) {
	const q = `SELECT ` + roomColumns + `
		FROM rooms r
		JOIN buildings b ON b.id = r.building_id
		WHERE LOWER(r.name) LIKE ? OR LOWER(r.code) LIKE ?
		ORDER BY b.code ASC, r.floor ASC, r.code ASC
		LIMIT ?`
	term := likeTerm(query)
	rows, err := r.db.QueryContext(ctx, q, term, term, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []RoomRow{}
	for rows.Next() {
		var row RoomRow
		if err := scanRoomRow(rows.Scan, &row); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
