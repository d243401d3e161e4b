package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUnderWeeklyLimit(t *testing.T) {
	const limit = 3

	tests := []struct {
		name  string
		count int
		want  bool
	}{
		{name: "one below the limit admits", count: limit - 1, want: true},
		{name: "at the limit rejects", count: limit, want: false},
		{name: "over the limit rejects", count: limit + 1, want: false},
		{name: "fresh week admits", count: 0, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UnderWeeklyLimit(tt.count, limit))
		})
	}
}

func TestUnderWeeklyLimit_ZeroLimit(t *testing.T) {
	assert.False(t, UnderWeeklyLimit(0, 0))
}

func TestCurrentWeekWindow(t *testing.T) {
	tests := []struct {
		name     string
		now      time.Time
		wantFrom time.Time
		wantTo   time.Time
	}{
		{
			name:     "midweek",
			now:      time.Date(2025, 6, 11, 15, 30, 0, 0, time.UTC), // Wednesday
			wantFrom: time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC),
			wantTo:   time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "sunday midnight starts a new week",
			now:      time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC),
			wantFrom: time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC),
			wantTo:   time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "saturday just before midnight belongs to the ending week",
			now:      time.Date(2025, 6, 7, 23, 59, 59, 0, time.UTC),
			wantFrom: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			wantTo:   time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "non-utc input is normalized",
			now:      time.Date(2025, 6, 7, 22, 0, 0, 0, time.FixedZone("UTC+3", 3*3600)), // 19:00 UTC Saturday
			wantFrom: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			wantTo:   time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, to := CurrentWeekWindow(tt.now)
			assert.Equal(t, tt.wantFrom, from)
			assert.Equal(t, tt.wantTo, to)
		})
	}
}
