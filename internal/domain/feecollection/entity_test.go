package feecollection

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFeeCollection_DueDate(t *testing.T) {
	fee := &FeeCollection{
		Date:       time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		PaidMonths: 1,
	}
	assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), fee.DueDate())

	fee.PaidMonths = 3
	assert.Equal(t, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), fee.DueDate())
}

func TestFeeCollection_DueDate_MonthEndNormalization(t *testing.T) {
	// Jan 31 + 1 month lands on Mar 3 per Go's calendar arithmetic (Feb 31
	// normalizes forward), so a payment on the 31st buys a few extra days.
	fee := &FeeCollection{
		Date:       time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC),
		PaidMonths: 1,
	}
	assert.Equal(t, time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC), fee.DueDate())
}

func TestFeeCollection_Covers(t *testing.T) {
	fee := &FeeCollection{
		Date:       time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		PaidMonths: 1,
	}

	tests := []struct {
		name string
		now  time.Time
		want bool
	}{
		{"day before due date", time.Date(2025, 1, 31, 12, 0, 0, 0, time.UTC), true},
		{"instant before due date", time.Date(2025, 1, 31, 23, 59, 59, 0, time.UTC), true},
		{"exactly at due date", time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), false},
		{"after due date", time.Date(2025, 2, 2, 0, 0, 0, 0, time.UTC), false},
		{"payment date itself", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fee.Covers(tt.now))
		})
	}
}
