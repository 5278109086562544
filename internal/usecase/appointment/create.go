package appointment

import (
	"context"
	"time"

	"github.com/threadfolio/threadfolio-api/internal/audit"
	domain "github.com/threadfolio/threadfolio-api/internal/domain/appointment"
	"github.com/threadfolio/threadfolio-api/internal/httperr"
	"github.com/threadfolio/threadfolio-api/internal/models"
	"github.com/threadfolio/threadfolio-api/internal/timezone"
)

type CreateAppointmentInput struct {
	ShopID uint
	UserID *uint

	ClientName  string
	ClientPhone string
	ClientEmail string

	OrderID *uint

	Date        string
	Time        string
	DurationMin int
	Notes       string
}

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	shop, err := uc.repo.GetShopByID(ctx, in.ShopID)
	if err != nil {
		return nil, err
	}

	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		timezone.Location(shop.Timezone),
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	// Day-level gate: past dates and closed weekdays are rejected before
	// anything touches the appointment table.
	hours, err := uc.repo.GetShopHoursWeek(ctx, in.ShopID)
	if err != nil {
		return nil, err
	}

	now := timezone.NowIn(shop.Timezone)
	if err := domain.CanCreateOn(start, now, hours); err != nil {
		return nil, err
	}

	dur := in.DurationMin
	if dur <= 0 {
		dur = 30
	}
	end := start.Add(time.Duration(dur) * time.Minute)

	client, err := uc.repo.GetOrCreateClient(
		ctx,
		in.ShopID,
		in.ClientName,
		in.ClientPhone,
		in.ClientEmail,
	)
	if err != nil {
		return nil, err
	}

	if err := uc.repo.AssertNoTimeConflict(
		ctx,
		in.ShopID,
		start,
		end,
	); err != nil {
		return nil, err
	}

	ap := &models.Appointment{
		ShopID:    in.ShopID,
		ClientID:  client.ID,
		OrderID:   in.OrderID,
		StartTime: start,
		EndTime:   end,
		Status:    string(domain.InitialStatus()),
		Notes:     in.Notes,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ShopID:   in.ShopID,
		UserID:   in.UserID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
