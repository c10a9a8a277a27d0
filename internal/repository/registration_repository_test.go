package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const lockEventQuery = `SELECT max_participants FROM events WHERE id = \? FOR UPDATE`

func TestRegisterEventNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewRegistrationRepo(db)

	mock.ExpectBegin()
	mock.ExpectQuery(lockEventQuery).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"max_participants"}))
	mock.ExpectRollback()

	_, err = repo.Register(context.Background(), "missing", "u1")
	assert.ErrorIs(t, err, ErrEventNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterCapacityExceeded(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewRegistrationRepo(db)

	mock.ExpectBegin()
	mock.ExpectQuery(lockEventQuery).
		WithArgs("e1").
		WillReturnRows(sqlmock.NewRows([]string{"max_participants"}).AddRow(2))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM event_registrations WHERE event_id = \?`).
		WithArgs("e1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectRollback()

	_, err = repo.Register(context.Background(), "e1", "u1")
	assert.ErrorIs(t, err, ErrEventFull)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterAlreadyRegistered(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewRegistrationRepo(db)

	mock.ExpectBegin()
	mock.ExpectQuery(lockEventQuery).
		WithArgs("e1").
		WillReturnRows(sqlmock.NewRows([]string{"max_participants"}).AddRow(10))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM event_registrations WHERE event_id = \?$`).
		WithArgs("e1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery(`WHERE event_id = \? AND user_id = \?`).
		WithArgs("e1", "u1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	_, err = repo.Register(context.Background(), "e1", "u1")
	assert.ErrorIs(t, err, ErrAlreadyRegistered)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterUncappedEventSkipsCapacityGate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewRegistrationRepo(db)

	registeredAt := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(lockEventQuery).
		WithArgs("e1").
		WillReturnRows(sqlmock.NewRows([]string{"max_participants"}).AddRow(nil))
	mock.ExpectQuery(`WHERE event_id = \? AND user_id = \?`).
		WithArgs("e1", "u1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec(`INSERT INTO event_registrations`).
		WithArgs(sqlmock.AnyArg(), "e1", "u1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT registered_at FROM event_registrations WHERE id = \?`).
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"registered_at"}).AddRow(registeredAt))
	mock.ExpectCommit()

	reg, err := repo.Register(context.Background(), "e1", "u1")
	require.NoError(t, err)
	assert.NotEmpty(t, reg.ID)
	assert.Equal(t, "e1", reg.EventID)
	assert.Equal(t, "u1", reg.UserID)
	assert.WithinDuration(t, registeredAt, reg.RegisteredAt, time.Second)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterSuccessUnderCap(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewRegistrationRepo(db)

	registeredAt := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(lockEventQuery).
		WithArgs("e1").
		WillReturnRows(sqlmock.NewRows([]string{"max_participants"}).AddRow(5))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM event_registrations WHERE event_id = \?$`).
		WithArgs("e1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))
	mock.ExpectQuery(`WHERE event_id = \? AND user_id = \?`).
		WithArgs("e1", "u1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec(`INSERT INTO event_registrations`).
		WithArgs(sqlmock.AnyArg(), "e1", "u1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT registered_at FROM event_registrations WHERE id = \?`).
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"registered_at"}).AddRow(registeredAt))
	mock.ExpectCommit()

	reg, err := repo.Register(context.Background(), "e1", "u1")
	require.NoError(t, err)
	assert.Equal(t, "e1", reg.EventID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUnregisterNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewRegistrationRepo(db)

	mock.ExpectExec(`DELETE FROM event_registrations WHERE event_id = \? AND user_id = \?`).
		WithArgs("e1", "u1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.Unregister(context.Background(), "e1", "u1")
	assert.ErrorIs(t, err, ErrRegistrationNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListByEventNewestFirst(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewRegistrationRepo(db)

	now := time.Now()
	mock.ExpectQuery(`ORDER BY g.registered_at DESC`).
		WithArgs("e1").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "event_id", "user_id", "registered_at",
			"u_id", "name", "email", "picture",
		}).
			AddRow("g2", "e1", "u2", now, "u2", "Bob", "bob@campus.edu", nil).
			AddRow("g1", "e1", "u1", now.Add(-time.Hour), "u1", "Alice", "alice@campus.edu", "https://cdn/p.png"))

	out, err := repo.ListByEvent(context.Background(), "e1")
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "g2", out[0].ID)
	assert.Nil(t, out[0].User.Picture)
	require.NotNil(t, out[1].User.Picture)
	assert.Equal(t, "https://cdn/p.png", *out[1].User.Picture)
	assert.NoError(t, mock.ExpectationsWereMet())
}
