package appointment

import (
	"time"

	"github.com/threadfolio/threadfolio-api/internal/httperr"
	"github.com/threadfolio/threadfolio-api/internal/models"
)

func dayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// IsPastDate compares calendar days only: a date earlier today does not
// count as past.
func IsPastDate(date, today time.Time) bool {
	return dayOf(date).Before(dayOf(today))
}

// CanCreateOn gates appointment creation by calendar day: the date must not
// be in the past and the shop must not be closed on that weekday. Clock
// bounds within an open day are enforced separately by the conflict check.
func CanCreateOn(date, today time.Time, hours []models.ShopHours) error {
	if IsPastDate(date, today) {
		return httperr.ErrBusiness("past_date")
	}

	weekday := int(date.Weekday())
	for _, h := range hours {
		if h.Weekday != weekday {
			continue
		}
		if h.IsClosed {
			return httperr.ErrBusiness("shop_closed")
		}
		return nil
	}

	// No row for the weekday means the shop never configured it as open.
	return httperr.ErrBusiness("shop_closed")
}

func CanCreateAppointment(date, today time.Time, hours []models.ShopHours) bool {
	return CanCreateOn(date, today, hours) == nil
}

// OpenWindow resolves a shop-hours row to concrete open/close instants on
// the given date in its location. ok is false when the day is closed or the
// clock strings are blank.
func OpenWindow(h models.ShopHours, date time.Time) (start, end time.Time, ok bool) {
	if h.IsClosed || h.OpenTime == "" || h.CloseTime == "" {
		return time.Time{}, time.Time{}, false
	}

	loc := date.Location()
	parseHM := func(hm string) (time.Time, bool) {
		t, err := time.Parse("15:04", hm)
		if err != nil {
			return time.Time{}, false
		}
		return time.Date(
			date.Year(), date.Month(), date.Day(),
			t.Hour(), t.Minute(), 0, 0,
			loc,
		), true
	}

	start, okOpen := parseHM(h.OpenTime)
	end, okClose := parseHM(h.CloseTime)
	if !okOpen || !okClose || !end.After(start) {
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}
