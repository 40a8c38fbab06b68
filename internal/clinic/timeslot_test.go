package clinic

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func slotAt(day time.Time, hour int) *TimeSlot {
	date := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	start := time.Date(0, 1, 1, hour, 0, 0, 0, day.Location())
	return NewTimeSlot(date, start, start.Add(time.Hour))
}

func TestTimeSlotReserveSingleUse(t *testing.T) {
	slot := slotAt(time.Now().AddDate(0, 0, 1), 9)

	require.True(t, slot.Available())
	require.True(t, slot.Reserve())
	assert.False(t, slot.Available())

	for i := 0; i < 3; i++ {
		assert.False(t, slot.Reserve())
	}
	assert.False(t, slot.Available())
}

func TestTimeSlotReserveConcurrentSingleWinner(t *testing.T) {
	slot := slotAt(time.Now().AddDate(0, 0, 1), 9)

	const callers = 32
	var wg sync.WaitGroup
	wins := make(chan struct{}, callers)

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if slot.Reserve() {
				wins <- struct{}{}
			}
		}()
	}
	wg.Wait()
	close(wins)

	assert.Len(t, wins, 1)
	assert.False(t, slot.Available())
}

func TestTimeSlotStartAtCombinesDateAndTime(t *testing.T) {
	date := time.Date(2026, time.September, 3, 0, 0, 0, 0, time.UTC)
	start := time.Date(0, 1, 1, 14, 30, 0, 0, time.UTC)
	slot := NewTimeSlot(date, start, start.Add(time.Hour))

	at := slot.StartAt()
	assert.Equal(t, time.Date(2026, time.September, 3, 14, 30, 0, 0, time.UTC), at)
	assert.Equal(t, time.Date(2026, time.September, 3, 15, 30, 0, 0, time.UTC), slot.EndAt())
}
