package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/google/uuid"

	"github.com/campusnav/campus-nav-server/internal/model"
)

// RegistrationRepo is the event-registration ledger. Register runs the
// capacity gate, the uniqueness gate and the insert inside a single
// transaction holding a row lock on the event, so two concurrent
// registrations near the cap cannot both pass the count check. A
// UNIQUE(event_id, user_id) index backs the uniqueness gate as a second
// line of defence.
type RegistrationRepo struct{ db *sql.DB }

// NewRegistrationRepo returns a RegistrationRepo bound to the given
// database.
func NewRegistrationRepo(db *sql.DB) *RegistrationRepo { return &RegistrationRepo{db: db} }

// RegistrationRow is a registration together with the registrant's
// public profile fields, the shape returned by listing endpoints.
type RegistrationRow struct {
	model.EventRegistration
	User model.UserSummary `json:"user"`
}

// Register creates a registration for (eventID, userID). It returns
// ErrEventNotFound when the event does not exist, ErrEventFull when the
// event defines max_participants and the count has reached it, and
// ErrAlreadyRegistered when a registration for the pair already exists.
// Registration never mutates the event row itself.
func (r *RegistrationRepo) Register(ctx context.Context, eventID, userID string) (model.EventRegistration, error) {
	var reg model.EventRegistration

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return reg, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	// Lock the event row for the duration of the gates. FOR UPDATE keeps
	// a concurrent Register on the same event waiting until we commit.
	var maxParticipants sql.NullInt64
	err = tx.QueryRowContext(ctx,
		`SELECT max_participants FROM events WHERE id = ? FOR UPDATE`,
		eventID).Scan(&maxParticipants)
	if err == sql.ErrNoRows {
		return reg, ErrEventNotFound
	}
	if err != nil {
		return reg, err
	}

	// Capacity gate.
	if maxParticipants.Valid {
		var count int64
		if err := tx.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM event_registrations WHERE event_id = ?`,
			eventID).Scan(&count); err != nil {
			return reg, err
		}
		if count >= maxParticipants.Int64 {
			return reg, ErrEventFull
		}
	}

	// Uniqueness gate.
	var exists int
	if err := tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM event_registrations WHERE event_id = ? AND user_id = ?`,
		eventID, userID).Scan(&exists); err != nil {
		return reg, err
	}
	if exists > 0 {
		return reg, ErrAlreadyRegistered
	}

	reg.ID = uuid.NewString()
	reg.EventID = eventID
	reg.UserID = userID
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO event_registrations (id, event_id, user_id) VALUES (?, ?, ?)`,
		reg.ID, eventID, userID); err != nil {
		// The unique index can still fire if the row appeared outside the
		// lock (MySQL duplicate-key error 1062).
		if strings.Contains(err.Error(), "1062") {
			return model.EventRegistration{}, ErrAlreadyRegistered
		}
		return model.EventRegistration{}, err
	}
	if err := tx.QueryRowContext(ctx,
		`SELECT registered_at FROM event_registrations WHERE id = ?`,
		reg.ID).Scan(&reg.RegisteredAt); err != nil {
		return model.EventRegistration{}, err
	}

	if err := tx.Commit(); err != nil {
		return model.EventRegistration{}, err
	}
	committed = true
	return reg, nil
}

// Unregister deletes the registration for (eventID, userID), or returns
// ErrRegistrationNotFound when none exists. Only the registration row
// is touched.
func (r *RegistrationRepo) Unregister(ctx context.Context, eventID, userID string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM event_registrations WHERE event_id = ? AND user_id = ?`,
		eventID, userID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrRegistrationNotFound
	}
	return nil
}

// ListByEvent returns the registrations of one event, newest first,
// each carrying the registrant's public profile. Callers are expected
// to verify the event exists beforehand.
func (r *RegistrationRepo) ListByEvent(ctx context.Context, eventID string) ([]RegistrationRow, error) {
	const q = `SELECT g.id, g.event_id, g.user_id, g.registered_at,
			u.id, u.name, u.email, u.picture
		FROM event_registrations g
		JOIN users u ON u.id = g.user_id
		WHERE g.event_id = ?
		ORDER BY g.registered_at DESC`
	rows, err := r.db.QueryContext(ctx, q, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []RegistrationRow{}
	for rows.Next() {
		var row RegistrationRow
		var picture sql.NullString
		if err := rows.Scan(&row.ID, &row.EventID, &row.UserID, &row.RegisteredAt,
			&row.User.ID, &row.User.Name, &row.User.Email, &picture); err != nil {
			return nil, err
		}
		if picture.Valid {
			row.User.Picture = &picture.String
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
