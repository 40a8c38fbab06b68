package clinic

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// TimeSlot is a reservable interval of one doctor's calendar. Date carries
// the day, Start and End carry the clock times on that day.
type TimeSlot struct {
	ID    uuid.UUID
	Date  time.Time
	Start time.Time
	End   time.Time

	mu        sync.Mutex
	available bool
}

func NewTimeSlot(date, start, end time.Time) *TimeSlot {
	return &TimeSlot{
		ID:        uuid.New(),
		Date:      date,
		Start:     start,
		End:       end,
		available: true,
	}
}

// Reserve flips availability exactly once. It returns false and leaves the
// slot untouched when the slot was already taken, so two concurrent callers
// cannot both win the same slot.
func (s *TimeSlot) Reserve() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.available {
		return false
	}
	s.available = false
	return true
}

func (s *TimeSlot) Available() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.available
}

// StartAt combines the slot's date with its start clock time.
func (s *TimeSlot) StartAt() time.Time {
	return time.Date(
		s.Date.Year(), s.Date.Month(), s.Date.Day(),
		s.Start.Hour(), s.Start.Minute(), 0, 0,
		s.Date.Location(),
	)
}

// EndAt combines the slot's date with its end clock time.
func (s *TimeSlot) EndAt() time.Time {
	return time.Date(
		s.Date.Year(), s.Date.Month(), s.Date.Day(),
		s.End.Hour(), s.End.Minute(), 0, 0,
		s.Date.Location(),
	)
}
