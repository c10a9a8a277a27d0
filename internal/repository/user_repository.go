package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/google/uuid"

	"github.com/campusnav/campus-nav-server/internal/model"
)

// UserRepo provides access to the `users` table. Emails are normalized
// to lower case before storage and lookup. Both the email and the
// optional student ID carry unique indexes; duplicate-key failures are
// translated into the matching sentinel errors.
type UserRepo struct{ db *sql.DB }

// NewUserRepo returns a UserRepo bound to the given database.
func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{db: db} }

const userColumns = `id, email, student_id, name, password_hash, picture, role, created_at, updated_at`

func scanUser(scan func(dest ...any) error, u *model.User) error {
	var studentID, picture sql.NullString
	if err := scan(&u.ID, &u.Email, &studentID, &u.Name, &u.PasswordHash, &picture, &u.Role, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return err
	}
	if studentID.Valid {
		u.StudentID = &studentID.String
	}
	if picture.Valid {
		u.Picture = &picture.String
	}
	return nil
}

// Create inserts a new STUDENT user and returns it. Returns
// ErrEmailExists or ErrStudentIDExists on unique-index violations.
func (r *UserRepo) Create(ctx context.Context, email, name string, studentID *string, passwordHash string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	id := uuid.NewString()
	const q = `INSERT INTO users (id, email, student_id, name, password_hash, role)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, q, id, email, studentID, name, passwordHash, model.RoleStudent)
	if err != nil {
		// MySQL duplicate-key error 1062 names the violated index.
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "1062") {
			if strings.Contains(msg, "student") {
				return model.User{}, ErrStudentIDExists
			}
			return model.User{}, ErrEmailExists
		}
		return model.User{}, err
	}
	return r.GetByID(ctx, id)
}

// GetByEmail fetches a user by normalized email, or ErrUserNotFound.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var u model.User
	err := scanUser(r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = ? LIMIT 1`, email).Scan, &u)
	if err == sql.ErrNoRows {
		return u, ErrUserNotFound
	}
	return u, err
}

// GetByID fetches a user by id, or ErrUserNotFound.
func (r *UserRepo) GetByID(ctx context.Context, id string) (model.User, error) {
	var u model.User
	err := scanUser(r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ? LIMIT 1`, id).Scan, &u)
	if err == sql.ErrNoRows {
		return u, ErrUserNotFound
	}
	return u, err
}

// UpdateProfile overwrites the mutable profile fields of a user and
// returns the updated row. Nil fields are left untouched.
func (r *UserRepo) UpdateProfile(ctx context.Context, id string, name *string, picture *string) (model.User, error) {
	set := []string{}
	args := []any{}
	if name != nil {
		set = append(set, "name = ?")
		args = append(args, *name)
	}
	if picture != nil {
		set = append(set, "picture = ?")
		args = append(args, *picture)
	}
	if len(set) > 0 {
		args = append(args, id)
		if _, err := r.db.ExecContext(ctx,
			`UPDATE users SET `+strings.Join(set, ", ")+` WHERE id = ?`, args...); err != nil {
			return model.User{}, err
		}
	}
	return r.GetByID(ctx, id)
}
