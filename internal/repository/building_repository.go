package repository

import (
	"context"
	"database/sql"

	"github.com/campusnav/campus-nav-server/internal/model"
)

// BuildingRepo provides read access to the `buildings` table. Campus
// buildings are seeded by operations tooling rather than created over
// the API, so the repository exposes lookups and search only.
type BuildingRepo struct{ db *sql.DB }

// NewBuildingRepo returns a BuildingRepo bound to the given database.
func NewBuildingRepo(db *sql.DB) *BuildingRepo { return &BuildingRepo{db: db} }

// BuildingRow is a building together with its room and POI counts, as
// returned by list endpoints.
type BuildingRow struct {
	model.Building
	RoomCount int `json:"roomCount"`
	POICount  int `json:"poiCount"`
}

const buildingColumns = `b.id, b.code, b.name, b.description, b.latitude, b.longitude, b.floors, b.image_url, b.created_at, b.updated_at`

func scanBuilding(scan func(dest ...any) error, b *model.Building) error {
	var desc, img sql.NullString
	if err := scan(&b.ID, &b.Code, &b.Name, &desc, &b.Latitude, &b.Longitude, &b.Floors, &img, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return err
	}
	if desc.Valid {
		b.Description = &desc.String
	}
	if img.Valid {
		b.ImageURL = &img.String
	}
	return nil
}

// List returns all buildings ordered by code ascending, each annotated
// with how many rooms and POIs it owns.
func (r *BuildingRepo) List(ctx context.Context) ([]BuildingRow, error) {
	const q = `SELECT ` + buildingColumns + `,
			(SELECT COUNT(*) FROM rooms ro WHERE ro.building_id = b.id) AS room_count,
			(SELECT COUNT(*) FROM pois p WHERE p.building_id = b.id) AS poi_count
		FROM buildings b
		ORDER BY b.code ASC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []BuildingRow{}
	for rows.Next() {
		var row BuildingRow
		var desc, img sql.NullString
		if err := rows.Scan(&row.ID, &row.Code, &row.Name, &desc, &row.Latitude, &row.Longitude, &row.Floors, &img, &row.CreatedAt, &row.UpdatedAt, &row.RoomCount, &row.POICount); err != nil {
			return nil, err
		}
		if desc.Valid {
			row.Description = &desc.String
		}
		if img.Valid {
			row.ImageURL = &img.String
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// GetByID returns one building or ErrBuildingNotFound.
func (r *BuildingRepo) GetByID(ctx context.Context, id string) (model.Building, error) {
	const q = `SELECT ` + buildingColumns + ` FROM buildings b WHERE b.id = ? LIMIT 1`
	var b model.Building
	err := scanBuilding(r.db.QueryRowContext(ctx, q, id).Scan, &b)
	if err == sql.ErrNoRows {
		return b, ErrBuildingNotFound
	}
	return b, err
}

// Search returns buildings whose name, code or description contains the
// query string, case-insensitively, capped at limit rows.
func (r *BuildingRepo) Search(ctx context.Context, query string, limit int) ([]model.Building, error) {
	const q = `SELECT ` + buildingColumns + `
		FROM buildings b
		WHERE LOWER(b.name) LIKE ? OR LOWER(b.code) LIKE ? OR LOWER(COALESCE(b.description, '')) LIKE ?
		ORDER BY b.code ASC
		LIMIT ?`
	term := likeTerm(query)
	rows, err := r.db.QueryContext(ctx, q, term, term, term, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Building{}
	for rows.Next() {
		var b model.Building
		if err := scanBuilding(rows.Scan, &b); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
