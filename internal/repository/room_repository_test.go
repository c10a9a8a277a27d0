package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roomColumnsRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "code", "name", "building_id", "floor", "capacity", "type",
		"latitude", "longitude", "description", "facilities", "created_at", "updated_at",
		"b_code", "b_name",
	})
}

func TestRoomListNoFiltersOrdersByBuildingFloorCode(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewRoomRepo(db)

	now := time.Now()
	rows := roomColumnsRows().
		AddRow("r1", "A101", "Study Room A101", "b1", 1, 6, "STUDY_ROOM",
			nil, nil, nil, `{"whiteboard":true}`, now, now, "A", "Building A").
		AddRow("r2", "B201", "Lab B201", "b2", 2, 30, "COMPUTER_LAB",
			nil, nil, nil, nil, now, now, "B", "Building B")

	mock.ExpectQuery(`ORDER BY b.code ASC, r.floor ASC, r.code ASC`).
		WillReturnRows(rows)

	out, err := repo.List(context.Background(), RoomFilter{})
	require.NoError(t, err)
	require.Len(t, out, 2)

	assert.Equal(t, "A101", out[0].Code)
	assert.Equal(t, "Building A", out[0].Building.Name)
	assert.Equal(t, map[string]any{"whiteboard": true}, out[0].Facilities)
	assert.Nil(t, out[1].Facilities)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomListAppliesAllFilters(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewRoomRepo(db)

	mock.ExpectQuery(`WHERE r.building_id = \? AND r.floor = \? AND r.type = \?`).
		WithArgs("b1", 2, "CLASSROOM").
		WillReturnRows(roomColumnsRows())

	floor := 2
	out, err := repo.List(context.Background(), RoomFilter{
		BuildingID: "b1",
		Floor:      &floor,
		Type:       "CLASSROOM",
	})
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomGetByIDOrCodeNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewRoomRepo(db)

	mock.ExpectQuery(`WHERE r.id = \? OR r.code = \?`).
		WithArgs("nope", "nope").
		WillReturnRows(roomColumnsRows())

	_, err = repo.GetByIDOrCode(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrRoomNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomSearchCapsResults(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewRoomRepo(db)

	now := time.Now()
	mock.ExpectQuery(`LOWER\(r.name\) LIKE \? OR LOWER\(r.code\) LIKE \?`).
		WithArgs("%a101%", "%a101%", 10).
		WillReturnRows(roomColumnsRows().
			AddRow("r1", "A101", "Study Room A101", "b1", 1, 6, "STUDY_ROOM",
				nil, nil, nil, nil, now, now, "A", "Building A"))

	out, err := repo.Search(context.Background(), "A101", 10)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "A101", out[0].Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
