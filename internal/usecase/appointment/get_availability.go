package appointment

import (
	"context"
	"time"

	domain "github.com/threadfolio/threadfolio-api/internal/domain/appointment"
)

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

// Execute walks the shop's open window on the requested date in fixed
// increments and drops every slot overlapping a scheduled appointment.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.TimeSlot, error) {

	weekday := int(in.Date.Weekday())

	wh, err := uc.repo.GetShopHours(ctx, in.ShopID, weekday)
	if err != nil {
		return []domain.TimeSlot{}, nil
	}

	dayStart, dayEnd, ok := domain.OpenWindow(*wh, in.Date)
	if !ok {
		return []domain.TimeSlot{}, nil
	}

	appointments, err := uc.repo.ListAppointmentsForDay(
		ctx,
		in.ShopID,
		dayStart,
		dayEnd,
	)
	if err != nil {
		return nil, err
	}

	dur := in.DurationMin
	if dur <= 0 {
		dur = 30
	}
	slotDuration := time.Duration(dur) * time.Minute

	var slots []domain.TimeSlot
	apIdx := 0

	for cur := dayStart; !cur.Add(slotDuration).After(dayEnd); cur = cur.Add(slotDuration) {

		slotStart := cur
		slotEnd := cur.Add(slotDuration)

		// skip appointments already behind the cursor
		for apIdx < len(appointments) && appointments[apIdx].EndTime.Before(slotStart) {
			apIdx++
		}

		conflict := false
		if apIdx < len(appointments) {
			ap := appointments[apIdx]
			if slotStart.Before(ap.EndTime) && slotEnd.After(ap.StartTime) {
				conflict = true
			}
		}

		if !conflict {
			slots = append(slots, domain.TimeSlot{
				Start: slotStart.Format("15:04"),
				End:   slotEnd.Format("15:04"),
			})
		}
	}

	return slots, nil
}
