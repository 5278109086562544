package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/threadfolio/threadfolio-api/internal/httperr"
	"github.com/threadfolio/threadfolio-api/internal/models"
)

// June 8 2026 is a Monday.
var (
	monday = time.Date(2026, 6, 8, 0, 0, 0, 0, time.UTC)
	sunday = time.Date(2026, 6, 7, 0, 0, 0, 0, time.UTC)
)

func weekHours() []models.ShopHours {
	hours := make([]models.ShopHours, 7)
	for wd := 0; wd < 7; wd++ {
		hours[wd] = models.ShopHours{
			Weekday:   wd,
			OpenTime:  "09:00",
			CloseTime: "17:00",
			IsClosed:  wd == 0 || wd == 6,
		}
	}
	return hours
}

func TestIsPastDate(t *testing.T) {
	assert.True(t, IsPastDate(sunday, monday))
	assert.False(t, IsPastDate(monday, monday))
	assert.False(t, IsPastDate(monday.AddDate(0, 0, 1), monday))

	// earlier today is not past
	earlier := time.Date(2026, 6, 8, 6, 0, 0, 0, time.UTC)
	now := time.Date(2026, 6, 8, 15, 0, 0, 0, time.UTC)
	assert.False(t, IsPastDate(earlier, now))
}

func TestCanCreateOnPastDate(t *testing.T) {
	err := CanCreateOn(sunday, monday, weekHours())
	assert.True(t, httperr.IsBusiness(err, "past_date"))
}

func TestCanCreateOnClosedWeekday(t *testing.T) {
	nextSunday := monday.AddDate(0, 0, 6)
	err := CanCreateOn(nextSunday, monday, weekHours())
	assert.True(t, httperr.IsBusiness(err, "shop_closed"))
}

func TestCanCreateOnMissingWeekdayRow(t *testing.T) {
	err := CanCreateOn(monday, monday, nil)
	assert.True(t, httperr.IsBusiness(err, "shop_closed"))
}

func TestCanCreateOnOpenDay(t *testing.T) {
	assert.NoError(t, CanCreateOn(monday, monday, weekHours()))
	assert.True(t, CanCreateAppointment(monday, monday, weekHours()))
}

func TestOpenWindow(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	date := time.Date(2026, 6, 8, 0, 0, 0, 0, loc)

	h := models.ShopHours{Weekday: 1, OpenTime: "09:00", CloseTime: "17:30"}
	start, end, ok := OpenWindow(h, date)
	require.True(t, ok)
	assert.Equal(t, time.Date(2026, 6, 8, 9, 0, 0, 0, loc), start)
	assert.Equal(t, time.Date(2026, 6, 8, 17, 30, 0, 0, loc), end)
}

func TestOpenWindowClosedOrInvalid(t *testing.T) {
	date := monday

	_, _, ok := OpenWindow(models.ShopHours{IsClosed: true, OpenTime: "09:00", CloseTime: "17:00"}, date)
	assert.False(t, ok)

	_, _, ok = OpenWindow(models.ShopHours{OpenTime: "", CloseTime: "17:00"}, date)
	assert.False(t, ok)

	_, _, ok = OpenWindow(models.ShopHours{OpenTime: "17:00", CloseTime: "09:00"}, date)
	assert.False(t, ok)

	_, _, ok = OpenWindow(models.ShopHours{OpenTime: "9am", CloseTime: "5pm"}, date)
	assert.False(t, ok)
}

func TestStatusTransitions(t *testing.T) {
	assert.NoError(t, CanCancel(StatusScheduled))
	assert.NoError(t, CanComplete(StatusScheduled))

	for _, s := range []Status{StatusCancelled, StatusCompleted} {
		assert.True(t, httperr.IsBusiness(CanCancel(s), "invalid_state"))
		assert.True(t, httperr.IsBusiness(CanComplete(s), "invalid_state"))
	}
}
