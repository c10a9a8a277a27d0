package availability

import (
	"context"
	"time"

	"github.com/campusnav/campus-nav-server/internal/repository"
)

// RoomSource is the slice of the room repository the service consumes.
// Satisfied by *repository.RoomRepo.
type RoomSource interface {
	List(ctx context.Context, f repository.RoomFilter) ([]repository.RoomRow, error)
	GetByIDOrCode(ctx context.Context, key string) (repository.RoomRow, error)
}

// Filters narrows the aggregate availability listing. BuildingID,
// Floor and Type are forwarded to the room query; Available is applied
// as a post-filter over the projections.
type Filters struct {
	BuildingID string
	Floor      *int
	Type       string
	Available  *bool
}

// Response is the aggregate availability payload.
type Response struct {
	Rooms       []Projection `json:"rooms"`
	LastUpdated time.Time    `json:"lastUpdated"`
}

// Service aggregates room records and their availability projections.
type Service struct {
	rooms RoomSource
	clock Clock
	proj  *Projector
}

// NewService wires a Service from its collaborators.
func NewService(rooms RoomSource, clock Clock, proj *Projector) *Service {
	return &Service{rooms: rooms, clock: clock, proj: proj}
}

// List projects every room matching the filters, preserving the room
// query's ordering, then drops projections that do not match the
// requested availability when Available is set.
func (s *Service) List(ctx context.Context, f Filters) (Response, error) {
	rows, err := s.rooms.List(ctx, repository.RoomFilter{
		BuildingID: f.BuildingID,
		Floor:      f.Floor,
		Type:       f.Type,
	})
	if err != nil {
		return Response{}, err
	}

	now := s.clock.Now()
	projections := make([]Projection, 0, len(rows))
	for _, row := range rows {
		p := s.proj.Project(row.Room, row.Building.Name, now)
		if f.Available != nil && p.Available != *f.Available {
			continue
		}
		projections = append(projections, p)
	}

	return Response{Rooms: projections, LastUpdated: now}, nil
}

// Get projects a single room resolved by id or room code. Returns
// repository.ErrRoomNotFound when the key does not resolve.
func (s *Service) Get(ctx context.Context, key string) (Projection, error) {
	row, err := s.rooms.GetByIDOrCode(ctx, key)
	if err != nil {
		return Projection{}, err
	}
	return s.proj.Project(row.Room, row.Building.Name, s.clock.Now()), nil
}
