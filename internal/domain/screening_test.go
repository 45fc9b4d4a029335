package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeatKeyRoundTrip(t *testing.T) {
	for _, pair := range [][2]int{{1, 1}, {1, 12}, {42, 7}, {999, 999}} {
		key := SeatKey(pair[0], pair[1])

		row, seat, err := ParseSeatKey(key)
		require.NoError(t, err)
		assert.Equal(t, pair[0], row)
		assert.Equal(t, pair[1], seat)
	}
}

func TestParseSeatKeyRejectsMalformedInput(t *testing.T) {
	for _, key := range []string{"", "1", "-", "1-", "-2", "a-b", "1-2-3", "0-1", "1-0", "1.5-2"} {
		_, _, err := ParseSeatKey(key)
		assert.Error(t, err, "key %q", key)
	}
}

func TestScreeningIsBooked(t *testing.T) {
	s := &Screening{BookedSeats: []string{"1-1", "2-4"}}

	assert.True(t, s.IsBooked(1, 1))
	assert.True(t, s.IsBooked(2, 4))
	assert.False(t, s.IsBooked(1, 2))
	assert.False(t, s.IsBooked(4, 2), "seat identity is the key string, not the digits")
}

func TestScreeningStartsAt(t *testing.T) {
	s := &Screening{
		Date:      time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		StartTime: 19*time.Hour + 30*time.Minute,
	}

	assert.Equal(t, time.Date(2026, 3, 15, 19, 30, 0, 0, time.UTC), s.StartsAt())
}
