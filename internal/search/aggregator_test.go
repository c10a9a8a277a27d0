package search

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusnav/campus-nav-server/internal/model"
	"github.com/campusnav/campus-nav-server/internal/repository"
)

type fakeBuildingSearcher struct {
	calls int
	limit int
	out   []model.Building
	err   error
}

func (f *fakeBuildingSearcher) Search(_ context.Context, _ string, limit int) ([]model.Building, error) {
	f.calls++
	f.limit = limit
	return f.out, f.err
}

type fakeRoomSearcher struct {
	calls int
	limit int
	out   []repository.RoomRow
	err   error
}

func (f *fakeRoomSearcher) Search(_ context.Context, _ string, limit int) ([]repository.RoomRow, error) {
	f.calls++
	f.limit = limit
	return f.out, f.err
}

type fakePOISearcher struct {
	calls int
	limit int
	out   []repository.POIRow
	err   error
}

func (f *fakePOISearcher) Search(_ context.Context, _ string, limit int) ([]repository.POIRow, error) {
	f.calls++
	f.limit = limit
	return f.out, f.err
}

func TestSearchShortQueryShortCircuits(t *testing.T) {
	b, r, p := &fakeBuildingSearcher{}, &fakeRoomSearcher{}, &fakePOISearcher{}
	agg := NewAggregator(b, r, p)

	// "é" is two bytes but still a single character.
	for _, q := range []string{"", "a", " a ", "\t", "é"} {
		res, err := agg.Search(context.Background(), q)
		require.NoError(t, err)
		assert.Empty(t, res.Buildings)
		assert.Empty(t, res.Rooms)
		assert.Empty(t, res.POIs)
		assert.NotNil(t, res.Buildings, "categories must be empty lists, not null")
	}
	assert.Zero(t, b.calls, "short queries must not reach the store")
	assert.Zero(t, r.calls)
	assert.Zero(t, p.calls)
}

func TestSearchTwoRuneQueryReachesStore(t *testing.T) {
	b, r, p := &fakeBuildingSearcher{}, &fakeRoomSearcher{}, &fakePOISearcher{}
	agg := NewAggregator(b, r, p)

	_, err := agg.Search(context.Background(), "ün")
	require.NoError(t, err)
	assert.Equal(t, 1, b.calls)
	assert.Equal(t, 1, r.calls)
	assert.Equal(t, 1, p.calls)
}

func TestSearchFansOutToAllCategories(t *testing.T) {
	b := &fakeBuildingSearcher{out: []model.Building{{ID: "b1", Code: "A", Name: "Building A"}}}
	r := &fakeRoomSearcher{out: []repository.RoomRow{{
		Room:     model.Room{ID: "r1", Code: "A101"},
		Building: model.BuildingSummary{Code: "A", Name: "Building A"},
	}}}
	p := &fakePOISearcher{out: []repository.POIRow{}}
	agg := NewAggregator(b, r, p)

	res, err := agg.Search(context.Background(), "A101")
	require.NoError(t, err)

	assert.Equal(t, 1, b.calls)
	assert.Equal(t, 1, r.calls)
	assert.Equal(t, 1, p.calls)

	// Per-category caps are fixed.
	assert.Equal(t, 5, b.limit)
	assert.Equal(t, 10, r.limit)
	assert.Equal(t, 5, p.limit)

	require.Len(t, res.Rooms, 1)
	assert.Equal(t, "A101", res.Rooms[0].Code)
	assert.Equal(t, "A", res.Rooms[0].Building.Code)
	require.Len(t, res.Buildings, 1)
	assert.Empty(t, res.POIs)
}

func TestSearchFailsWholeOnSubQueryError(t *testing.T) {
	boom := errors.New("room index offline")
	b := &fakeBuildingSearcher{}
	r := &fakeRoomSearcher{err: boom}
	p := &fakePOISearcher{}
	agg := NewAggregator(b, r, p)

	_, err := agg.Search(context.Background(), "library")
	assert.ErrorIs(t, err, boom)
}
