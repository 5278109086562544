package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/threadfolio/threadfolio-api/internal/domain/appointment"
	"github.com/threadfolio/threadfolio-api/internal/models"
)

func TestGetAvailabilityFullOpenDay(t *testing.T) {
	repo := newFakeRepo()
	uc := NewGetAvailability(repo)

	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	date := time.Date(2027, 6, 14, 0, 0, 0, 0, loc)

	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		ShopID:      1,
		Date:        date,
		DurationMin: 30,
	})
	require.NoError(t, err)

	// 09:00-17:00 in 30 minute steps
	require.Len(t, slots, 16)
	assert.Equal(t, domain.TimeSlot{Start: "09:00", End: "09:30"}, slots[0])
	assert.Equal(t, domain.TimeSlot{Start: "16:30", End: "17:00"}, slots[15])
}

func TestGetAvailabilitySkipsBookedSlots(t *testing.T) {
	repo := newFakeRepo()
	uc := NewGetAvailability(repo)

	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	date := time.Date(2027, 6, 14, 0, 0, 0, 0, loc)

	repo.appointments = append(repo.appointments, models.Appointment{
		ID:        1,
		ShopID:    1,
		StartTime: time.Date(2027, 6, 14, 10, 0, 0, 0, loc),
		EndTime:   time.Date(2027, 6, 14, 10, 30, 0, 0, loc),
		Status:    "scheduled",
	})

	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		ShopID:      1,
		Date:        date,
		DurationMin: 30,
	})
	require.NoError(t, err)

	require.Len(t, slots, 15)
	for _, s := range slots {
		assert.NotEqual(t, "10:00", s.Start)
	}
}

func TestGetAvailabilityClosedDay(t *testing.T) {
	repo := newFakeRepo()
	for i := range repo.hours {
		repo.hours[i].IsClosed = true
	}
	uc := NewGetAvailability(repo)

	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		ShopID: 1,
		Date:   time.Date(2027, 6, 14, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Empty(t, slots)
}
