package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/campusnav/campus-nav-server/internal/model"
)

// EventRepo provides CRUD operations on the `events` table. Event rows
// never embed registration state beyond a count; the registration
// ledger itself lives in RegistrationRepo.
type EventRepo struct{ db *sql.DB }

// NewEventRepo returns an EventRepo bound to the given database.
func NewEventRepo(db *sql.DB) *EventRepo { return &EventRepo{db: db} }

// DB exposes the underlying handle so handlers can open transactions
// spanning events and registrations.
func (r *EventRepo) DB() *sql.DB { return r.db }

// EventRow is an event annotated with its registration count, the shape
// returned by list endpoints.
type EventRow struct {
	model.Event
	RegistrationCount int `json:"registrationCount"`
}

const eventColumns = `e.id, e.title, e.description, e.type, e.start_time, e.end_time,
	e.location, e.organizer, e.image_url, e.registration_required, e.max_participants,
	e.created_at, e.updated_at`

func scanEvent(scan func(dest ...any) error, e *model.Event, extra ...any) error {
	var desc, img sql.NullString
	var maxP sql.NullInt64
	dest := []any{&e.ID, &e.Title, &desc, &e.Type, &e.StartTime, &e.EndTime,
		&e.Location, &e.Organizer, &img, &e.RegistrationRequired, &maxP,
		&e.CreatedAt, &e.UpdatedAt}
	dest = append(dest, extra...)
	if err := scan(dest...); err != nil {
		return err
	}
	if desc.Valid {
		e.Description = &desc.String
	}
	if img.Valid {
		e.ImageURL = &img.String
	}
	if maxP.Valid {
		m := int(maxP.Int64)
		e.MaxParticipants = &m
	}
	return nil
}

// List returns events ordered by start time ascending, optionally
// narrowed to one type, each annotated with its registration count.
func (r *EventRepo) List(ctx context.Context, eventType string) ([]EventRow, error) {
	q := `SELECT ` + eventColumns + `,
			(SELECT COUNT(*) FROM event_registrations g WHERE g.event_id = e.id) AS registration_count
		FROM events e`
	args := []any{}
	if eventType != "" {
		q += " WHERE e.type = ?"
		args = append(args, eventType)
	}
	q += " ORDER BY e.start_time ASC"
	return r.queryRows(ctx, q, args...)
}

// ListUpcoming returns events starting at or after now, soonest first,
// capped at limit rows.
func (r *EventRepo) ListUpcoming(ctx context.Context, now time.Time, limit int) ([]EventRow, error) {
	const q = `SELECT ` + eventColumns + `,
			(SELECT COUNT(*) FROM event_registrations g WHERE g.event_id = e.id) AS registration_count
		FROM events e
		WHERE e.start_time >= ?
		ORDER BY e.start_time ASC
		LIMIT ?`
	return r.queryRows(ctx, q, now, limit)
}

func (r *EventRepo) queryRows(ctx context.Context, q string, args ...any) ([]EventRow, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []EventRow{}
	for rows.Next() {
		var row EventRow
		if err := scanEvent(rows.Scan, &row.Event, &row.RegistrationCount); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// GetByID returns one event with its registration count, or
// ErrEventNotFound.
func (r *EventRepo) GetByID(ctx context.Context, id string) (EventRow, error) {
	const q = `SELECT ` + eventColumns + `,
			(SELECT COUNT(*) FROM event_registrations g WHERE g.event_id = e.id) AS registration_count
		FROM events e
		WHERE e.id = ? LIMIT 1`
	var row EventRow
	err := scanEvent(r.db.QueryRowContext(ctx, q, id).Scan, &row.Event, &row.RegistrationCount)
	if err == sql.ErrNoRows {
		return row, ErrEventNotFound
	}
	return row, err
}

// Create inserts a new event and returns it with generated id and
// timestamps populated. StartTime < EndTime is validated by the
// handler.
func (r *EventRepo) Create(ctx context.Context, e model.Event) (model.Event, error) {
	e.ID = uuid.NewString()
	const q = `INSERT INTO events
			(id, title, description, type, start_time, end_time, location, organizer,
			 image_url, registration_required, max_participants)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, q,
		e.ID, e.Title, e.Description, e.Type, e.StartTime, e.EndTime, e.Location,
		e.Organizer, e.ImageURL, e.RegistrationRequired, e.MaxParticipants)
	if err != nil {
		return model.Event{}, err
	}
	// Read back to pick up DB-assigned timestamps.
	const sel = `SELECT ` + eventColumns + ` FROM events e WHERE e.id = ? LIMIT 1`
	var out model.Event
	if err := scanEvent(r.db.QueryRowContext(ctx, sel, e.ID).Scan, &out); err != nil {
		return model.Event{}, err
	}
	return out, nil
}

// Update overwrites the mutable fields of an event and returns the
// updated row, or ErrEventNotFound.
func (r *EventRepo) Update(ctx context.Context, e model.Event) (model.Event, error) {
	const q = `UPDATE events SET
			title = ?, description = ?, type = ?, start_time = ?, end_time = ?,
			location = ?, organizer = ?, image_url = ?, registration_required = ?,
			max_participants = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q,
		e.Title, e.Description, e.Type, e.StartTime, e.EndTime, e.Location,
		e.Organizer, e.ImageURL, e.RegistrationRequired, e.MaxParticipants, e.ID)
	if err != nil {
		return model.Event{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		// Distinguish "no such event" from "no field changed".
		var exists int
		if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM events WHERE id = ?`, e.ID).Scan(&exists); err != nil {
			return model.Event{}, err
		}
		if exists == 0 {
			return model.Event{}, ErrEventNotFound
		}
	}
	const sel = `SELECT ` + eventColumns + ` FROM events e WHERE e.id = ? LIMIT 1`
	var out model.Event
	if err := scanEvent(r.db.QueryRowContext(ctx, sel, e.ID).Scan, &out); err != nil {
		if err == sql.ErrNoRows {
			return model.Event{}, ErrEventNotFound
		}
		return model.Event{}, err
	}
	return out, nil
}

// Delete removes an event, or returns ErrEventNotFound. Registrations
// cascade at the schema level.
func (r *EventRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM events WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrEventNotFound
	}
	return nil
}
