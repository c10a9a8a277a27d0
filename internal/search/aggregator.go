// Package search fans a free-text query out across buildings, rooms
// and POIs and merges the three result lists. Categories are never
// ranked against each other; each keeps its own cap.
package search

import (
	"context"
	"strings"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/campusnav/campus-nav-server/internal/model"
	"github.com/campusnav/campus-nav-server/internal/repository"
)

// Per-category result caps.
const (
	maxBuildings = 5
	maxRooms     = 10
	maxPOIs      = 5
)

// minQueryLen is the shortest trimmed query worth hitting the store
// for. Shorter queries short-circuit to empty results.
const minQueryLen = 2

// BuildingSearcher, RoomSearcher and POISearcher are the slices of the
// repositories the aggregator consumes. Satisfied by the concrete
// repos.
type BuildingSearcher interface {
	Search(ctx context.Context, query string, limit int) ([]model.Building, error)
}

type RoomSearcher interface {
	Search(ctx context.Context, query string, limit int) ([]repository.RoomRow, error)
}

type POISearcher interface {
	Search(ctx context.Context, query string, limit int) ([]repository.POIRow, error)
}

// Result groups the three category lists. Rooms and POIs carry their
// owning building's code and name.
type Result struct {
	Buildings []model.Building     `json:"buildings"`
	Rooms     []repository.RoomRow `json:"rooms"`
	POIs      []repository.POIRow  `json:"pois"`
}

// Aggregator runs the three category searches concurrently.
type Aggregator struct {
	buildings BuildingSearcher
	rooms     RoomSearcher
	pois      POISearcher
}

// NewAggregator wires an Aggregator from the three searchers.
func NewAggregator(b BuildingSearcher, r RoomSearcher, p POISearcher) *Aggregator {
	return &Aggregator{buildings: b, rooms: r, pois: p}
}

// Search issues the three sub-queries in parallel and waits for all of
// them. A trimmed query shorter than two characters returns empty
// lists without touching the store. Any sub-query failure fails the
// whole search; partial results are never returned.
func (a *Aggregator) Search(ctx context.Context, query string) (Result, error) {
	out := Result{
		Buildings: []model.Building{},
		Rooms:     []repository.RoomRow{},
		POIs:      []repository.POIRow{},
	}
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < minQueryLen {
		return out, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		buildings, err := a.buildings.Search(ctx, query, maxBuildings)
		if err != nil {
			return err
		}
		out.Buildings = buildings
		return nil
	})
	g.Go(func() error {
		rooms, err := a.rooms.Search(ctx, query, maxRooms)
		if err != nil {
			return err
		}
		out.Rooms = rooms
		return nil
	})
	g.Go(func() error {
		pois, err := a.pois.Search(ctx, query, maxPOIs)
		if err != nil {
			return err
		}
		out.POIs = pois
		return nil
	})
	if err := g.Wait(); err != nil {
		return Result{}, err
	}
	return out, nil
}
