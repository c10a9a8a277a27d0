package repository

import (
	"context"
	"database/sql"

	"github.com/campusnav/campus-nav-server/internal/model"
)

// POIRepo provides read access to the `pois` table. POIs may or may not
// sit inside a building, so the building join is a LEFT JOIN and the
// summary is nil for free-standing POIs.
type POIRepo struct{ db *sql.DB }

// NewPOIRepo returns a POIRepo bound to the given database.
func NewPOIRepo(db *sql.DB) *POIRepo { return &POIRepo{db: db} }

// POIRow is a POI together with its owning building's summary when the
// POI sits inside a building.
type POIRow struct {
	model.POI
	Building *model.BuildingSummary `json:"building,omitempty"`
}

const poiColumns = `p.id, p.name, p.type, p.building_id, p.latitude, p.longitude,
	p.floor, p.description, p.icon, p.created_at, b.code, b.name`

func scanPOIRow(scan func(dest ...any) error, row *POIRow) error {
	var buildingID, desc, icon, bCode, bName sql.NullString
	var floor sql.NullInt64
	if err := scan(&row.ID, &row.Name, &row.Type, &buildingID, &row.Latitude, &row.Longitude,
		&floor, &desc, &icon, &row.CreatedAt, &bCode, &bName); err != nil {
		return err
	}
	if buildingID.Valid {
		row.BuildingID = &buildingID.String
	}
	if floor.Valid {
		f := int(floor.Int64)
		row.Floor = &f
	}
	if desc.Valid {
		row.Description = &desc.String
	}
	if icon.Valid {
		row.Icon = &icon.String
	}
	if bCode.Valid {
		row.Building = &model.BuildingSummary{Code: bCode.String, Name: bName.String}
	}
	return nil
}

// List returns POIs ordered by name ascending, optionally narrowed to
// one type. An empty poiType imposes no constraint; the value is
// assumed pre-validated by the handler.
func (r *POIRepo) List(ctx context.Context, poiType string) ([]POIRow, error) {
	q := `SELECT ` + poiColumns + `
		FROM pois p
		LEFT JOIN buildings b ON b.id = p.building_id`
	args := []any{}
	if poiType != "" {
		q += " WHERE p.type = ?"
		args = append(args, poiType)
	}
	q += " ORDER BY p.name ASC"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []POIRow{}
	for rows.Next() {
		var row POIRow
		if err := scanPOIRow(rows.Scan, &row); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// ListByBuilding returns the POIs inside one building, name ascending.
func (r *POIRepo) ListByBuilding(ctx context.Context, buildingID string) ([]POIRow, error) {
	const q = `SELECT ` + poiColumns + `
		FROM pois p
		LEFT JOIN buildings b ON b.id = p.building_id
		WHERE p.building_id = ?
		ORDER BY p.name ASC`
	rows, err := r.db.QueryContext(ctx, q, buildingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []POIRow{}
	for rows.Next() {
		var row POIRow
		if err := scanPOIRow(rows.Scan, &row); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// Search returns POIs whose name or description contains the query
// string, case-insensitively, capped at limit rows.
func (r *POIRepo) Search(ctx context.Context, query string, limit int) ([]POIRow, error) {
	const q = `SELECT ` + poiColumns + `
		FROM pois p
		LEFT JOIN buildings b ON b.id = p.building_id
		WHERE LOWER(p.name) LIKE ? OR LOWER(COALESCE(p.description, '')) LIKE ?
		ORDER BY p.name ASC
		LIMIT ?`
	term := likeTerm(query)
	rows, err := r.db.QueryContext(ctx, q, term, term, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []POIRow{}
	for rows.Next() {
		var row POIRow
		if err := scanPOIRow(rows.Scan, &row); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
