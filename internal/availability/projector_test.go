package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusnav/campus-nav-server/internal/model"
)

// stubRand replays scripted values so a test can force each branch of
// the simulation policy.
type stubRand struct {
	floats []float64
	ints   []int
	fi, ii int
}

func (s *stubRand) Float64() float64 {
	v := s.floats[s.fi]
	s.fi++
	return v
}

func (s *stubRand) IntN(n int) int {
	v := s.ints[s.ii]
	s.ii++
	return v % n
}

func studyRoom() model.Room {
	return model.Room{
		ID:       "room-a101",
		Code:     "A101",
		Name:     "Study Room A101",
		Floor:    1,
		Capacity: 6,
		Type:     model.RoomStudyRoom,
	}
}

func TestProjectUnavailableSynthesizesCurrentBooking(t *testing.T) {
	// 0.3 <= 0.4 forces "occupied"; IntN draws 0 -> one extra hour,
	// then occupant index 2.
	rng := &stubRand{floats: []float64{0.3}, ints: []int{0, 2}}
	p := NewProjector(rng)

	now := time.Date(2025, 3, 10, 14, 0, 0, 0, time.Local)
	proj := p.Project(studyRoom(), "Building A", now)

	assert.False(t, proj.Available)
	require.NotNil(t, proj.CurrentBooking)
	assert.Nil(t, proj.NextBooking)

	assert.Equal(t, now.Add(-30*time.Minute), proj.CurrentBooking.StartTime)
	assert.Equal(t, now.Add(time.Hour), proj.CurrentBooking.EndTime)
	assert.Equal(t, "Engineering Club", proj.CurrentBooking.Occupant)
	assert.Equal(t, "Study Group", proj.CurrentBooking.Purpose)

	require.NotNil(t, proj.NextAvailable)
	assert.Equal(t, proj.CurrentBooking.EndTime, *proj.NextAvailable)
}

func TestProjectAvailableWithNextBooking(t *testing.T) {
	// 0.9 > 0.4 -> available; 0.8 > 0.5 -> next booking; IntN(3)=1 ->
	// starts three hours out.
	rng := &stubRand{floats: []float64{0.9, 0.8}, ints: []int{1}}
	p := NewProjector(rng)

	now := time.Date(2025, 3, 10, 10, 30, 0, 0, time.Local)
	proj := p.Project(studyRoom(), "Building A", now)

	assert.True(t, proj.Available)
	assert.Nil(t, proj.CurrentBooking)
	assert.Nil(t, proj.NextAvailable)
	require.NotNil(t, proj.NextBooking)

	assert.Equal(t, now.Add(3*time.Hour), proj.NextBooking.StartTime)
	assert.Equal(t, 2*time.Hour, proj.NextBooking.EndTime.Sub(proj.NextBooking.StartTime))
	assert.True(t, proj.NextBooking.StartTime.Before(proj.NextBooking.EndTime))
}

func TestProjectAvailableWithoutNextBooking(t *testing.T) {
	// Second draw 0.2 <= 0.5 skips the upcoming booking.
	rng := &stubRand{floats: []float64{0.9, 0.2}}
	p := NewProjector(rng)

	proj := p.Project(studyRoom(), "Building A", time.Date(2025, 3, 10, 20, 0, 0, 0, time.Local))

	assert.True(t, proj.Available)
	assert.Nil(t, proj.CurrentBooking)
	assert.Nil(t, proj.NextBooking)
	assert.Nil(t, proj.NextAvailable)
}

func TestProjectComputerLabOutsideBusinessHours(t *testing.T) {
	// Before 09:00 a computer lab never draws the occupancy coin: the
	// only float consumed is the next-booking one.
	rng := &stubRand{floats: []float64{0.1}}
	p := NewProjector(rng)

	lab := studyRoom()
	lab.Type = model.RoomComputerLab
	proj := p.Project(lab, "Building A", time.Date(2025, 3, 10, 8, 0, 0, 0, time.Local))

	assert.True(t, proj.Available)
	assert.Equal(t, 1, rng.fi, "expected exactly one float draw")
}

func TestProjectComputerLabOccupiedDuringBusinessHours(t *testing.T) {
	// 0.5 <= 0.6 keeps the lab occupied between 09:00 and 17:00.
	rng := &stubRand{floats: []float64{0.5}, ints: []int{1, 0}}
	p := NewProjector(rng)

	lab := studyRoom()
	lab.Type = model.RoomComputerLab
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local)
	proj := p.Project(lab, "Building A", now)

	assert.False(t, proj.Available)
	require.NotNil(t, proj.CurrentBooking)
	assert.Equal(t, now.Add(2*time.Hour), proj.CurrentBooking.EndTime)
}

func TestProjectTotalityWithSeededRand(t *testing.T) {
	// Whatever the draws, exactly one of the two shapes holds:
	// unavailable with a current booking, or available without one.
	p := NewProjector(NewRand(42))
	room := studyRoom()

	for i := 0; i < 200; i++ {
		now := time.Date(2025, 3, 10, i%24, 0, 0, 0, time.Local)
		proj := p.Project(room, "Building A", now)

		assert.Equal(t, room.ID, proj.RoomID)
		if proj.Available {
			assert.Nil(t, proj.CurrentBooking)
			assert.Nil(t, proj.NextAvailable)
			if proj.NextBooking != nil {
				assert.Equal(t, 2*time.Hour, proj.NextBooking.EndTime.Sub(proj.NextBooking.StartTime))
			}
		} else {
			require.NotNil(t, proj.CurrentBooking)
			require.NotNil(t, proj.NextAvailable)
			assert.Equal(t, proj.CurrentBooking.EndTime, *proj.NextAvailable)
			assert.Nil(t, proj.NextBooking)
		}
	}
}

func TestSeededRandIsDeterministic(t *testing.T) {
	now := time.Date(2025, 3, 10, 11, 0, 0, 0, time.Local)
	a := NewProjector(NewRand(7)).Project(studyRoom(), "Building A", now)
	b := NewProjector(NewRand(7)).Project(studyRoom(), "Building A", now)
	assert.Equal(t, a, b)
}
