package appointment

import "time"

type AvailabilityInput struct {
	ShopID      uint
	Date        time.Time
	DurationMin int
}

type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}
