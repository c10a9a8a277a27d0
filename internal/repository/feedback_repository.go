package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/campusnav/campus-nav-server/internal/model"
)

// FeedbackRepo provides access to the `feedback` table. Entries are
// immutable once created; only the status column moves through the
// triage states.
type FeedbackRepo struct{ db *sql.DB }

// NewFeedbackRepo returns a FeedbackRepo bound to the given database.
func NewFeedbackRepo(db *sql.DB) *FeedbackRepo { return &FeedbackRepo{db: db} }

// FeedbackRow is a feedback entry together with the submitter's public
// profile fields.
type FeedbackRow struct {
	model.Feedback
	User model.UserSummary `json:"user"`
}

const feedbackColumns = `f.id, f.user_id, f.type, f.subject, f.description, f.status,
	f.location, f.created_at, f.updated_at, u.id, u.name, u.email, u.picture`

func scanFeedbackRow(scan func(dest ...any) error, row *FeedbackRow) error {
	var location, picture sql.NullString
	if err := scan(&row.ID, &row.UserID, &row.Type, &row.Subject, &row.Description, &row.Status,
		&location, &row.CreatedAt, &row.UpdatedAt,
		&row.User.ID, &row.User.Name, &row.User.Email, &picture); err != nil {
		return err
	}
	if location.Valid {
		row.Location = &location.String
	}
	if picture.Valid {
		row.User.Picture = &picture.String
	}
	return nil
}

// List returns all feedback entries, newest first, with submitter
// profiles attached.
func (r *FeedbackRepo) List(ctx context.Context) ([]FeedbackRow, error) {
	const q = `SELECT ` + feedbackColumns + `
		FROM feedback f
		JOIN users u ON u.id = f.user_id
		ORDER BY f.created_at DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []FeedbackRow{}
	for rows.Next() {
		var row FeedbackRow
		if err := scanFeedbackRow(rows.Scan, &row); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// GetByID returns one feedback entry or ErrFeedbackNotFound.
func (r *FeedbackRepo) GetByID(ctx context.Context, id string) (FeedbackRow, error) {
	const q = `SELECT ` + feedbackColumns + `
		FROM feedback f
		JOIN users u ON u.id = f.user_id
		WHERE f.id = ? LIMIT 1`
	var row FeedbackRow
	err := scanFeedbackRow(r.db.QueryRowContext(ctx, q, id).Scan, &row)
	if err == sql.ErrNoRows {
		return row, ErrFeedbackNotFound
	}
	return row, err
}

// Create inserts a new feedback entry in PENDING status and returns it
// with the submitter attached.
func (r *FeedbackRepo) Create(ctx context.Context, f model.Feedback) (FeedbackRow, error) {
	f.ID = uuid.NewString()
	const q = `INSERT INTO feedback (id, user_id, type, subject, description, status, location)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, q,
		f.ID, f.UserID, f.Type, f.Subject, f.Description, model.FeedbackPending, f.Location)
	if err != nil {
		return FeedbackRow{}, err
	}
	return r.GetByID(ctx, f.ID)
}
