package subscription

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewest(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2025, 3, d, 0, 0, 0, 0, time.UTC)
	}

	t.Run("empty slice", func(t *testing.T) {
		assert.Nil(t, Newest(nil))
		assert.Nil(t, Newest([]Subscription{}))
	})

	t.Run("single subscription", func(t *testing.T) {
		subs := []Subscription{{ID: 1, StartDate: day(1)}}
		assert.Equal(t, int64(1), Newest(subs).ID)
	})

	t.Run("picks max start date", func(t *testing.T) {
		subs := []Subscription{
			{ID: 1, StartDate: day(1)},
			{ID: 2, StartDate: day(15)},
			{ID: 3, StartDate: day(10)},
		}
		assert.Equal(t, int64(2), Newest(subs).ID)
	})

	t.Run("equal start dates break by higher id", func(t *testing.T) {
		subs := []Subscription{
			{ID: 7, StartDate: day(10)},
			{ID: 3, StartDate: day(10)},
			{ID: 5, StartDate: day(10)},
		}
		assert.Equal(t, int64(7), Newest(subs).ID)
	})

	t.Run("later start date beats higher id", func(t *testing.T) {
		subs := []Subscription{
			{ID: 9, StartDate: day(1)},
			{ID: 2, StartDate: day(20)},
		}
		assert.Equal(t, int64(2), Newest(subs).ID)
	})
}
