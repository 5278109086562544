package garment

import "time"

// dayUTC pins a timestamp to its calendar day, discarding time-of-day and
// location so day arithmetic is immune to DST shifts.
func dayUTC(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysUntilOn returns the whole-day difference between today and due,
// ignoring both dates' time-of-day. Negative for past dates.
func DaysUntilOn(due, today time.Time) int {
	return int(dayUTC(due).Sub(dayUTC(today)).Hours() / 24)
}

// DaysUntil is the nil-tolerant form used on optional due dates.
func DaysUntil(due *time.Time, today time.Time) *int {
	if due == nil {
		return nil
	}
	d := DaysUntilOn(*due, today)
	return &d
}
