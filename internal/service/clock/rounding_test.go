package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(hour, minute, second int) time.Time {
	return time.Date(2025, 3, 10, hour, minute, second, 0, time.UTC)
}

func TestWorkedMinutes(t *testing.T) {
	tests := []struct {
		name     string
		entry    time.Time
		exit     time.Time
		rounding int
		want     int
	}{
		{
			// 10:02 rounds down to 10:00, 10:58 rounds up to 11:00.
			name:     "both ends rounded to the interval",
			entry:    at(10, 2, 0),
			exit:     at(10, 58, 0),
			rounding: 5,
			want:     60,
		},
		{
			name:     "exact hour",
			entry:    at(9, 0, 0),
			exit:     at(10, 0, 0),
			rounding: 5,
			want:     60,
		},
		{
			// 10:02 and 10:03 both round to the same instant.
			name:     "very short session collapses to zero",
			entry:    at(10, 2, 0),
			exit:     at(10, 3, 0),
			rounding: 5,
			want:     0,
		},
		{
			// 10:04 rounds up to 10:05 while 10:02 rounds down to 10:00;
			// an exit rounding before the entry must not go negative.
			name:     "never negative",
			entry:    at(10, 4, 0),
			exit:     at(10, 4, 30),
			rounding: 5,
			want:     0,
		},
		{
			name:     "rounding disabled",
			entry:    at(10, 2, 0),
			exit:     at(10, 58, 30),
			rounding: 0,
			want:     56,
		},
		{
			// Half the interval rounds up: 10:02:30 with 5m rounding is 10:05.
			name:     "half rounds up",
			entry:    at(10, 0, 0),
			exit:     at(10, 2, 30),
			rounding: 5,
			want:     5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, workedMinutes(tt.entry, tt.exit, tt.rounding))
		})
	}
}

func TestRoundToNearest(t *testing.T) {
	assert.Equal(t, at(10, 0, 0), roundToNearest(at(10, 2, 0), 5))
	assert.Equal(t, at(11, 0, 0), roundToNearest(at(10, 58, 0), 5))
	assert.Equal(t, at(10, 2, 0), roundToNearest(at(10, 2, 0), 0))
}
