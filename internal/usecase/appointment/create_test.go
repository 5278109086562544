package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/threadfolio/threadfolio-api/internal/audit"
	"github.com/threadfolio/threadfolio-api/internal/httperr"
	"github.com/threadfolio/threadfolio-api/internal/models"
)

// fakeRepo is an in-memory Repository for usecase tests. One shop, open
// every day, no persistence beyond the appointments slice.
type fakeRepo struct {
	shop         models.Shop
	hours        []models.ShopHours
	appointments []models.Appointment
	nextID       uint

	conflictErr error
}

func newFakeRepo() *fakeRepo {
	hours := make([]models.ShopHours, 7)
	for wd := 0; wd < 7; wd++ {
		hours[wd] = models.ShopHours{
			ShopID:    1,
			Weekday:   wd,
			OpenTime:  "09:00",
			CloseTime: "17:00",
		}
	}
	return &fakeRepo{
		shop:   models.Shop{ID: 1, Name: "Stitch & Co", Slug: "stitch-co", Timezone: "America/New_York"},
		hours:  hours,
		nextID: 1,
	}
}

func (r *fakeRepo) GetShopByID(_ context.Context, id uint) (*models.Shop, error) {
	s := r.shop
	return &s, nil
}

func (r *fakeRepo) GetShopHoursWeek(_ context.Context, _ uint) ([]models.ShopHours, error) {
	return r.hours, nil
}

func (r *fakeRepo) GetShopHours(_ context.Context, _ uint, weekday int) (*models.ShopHours, error) {
	for i := range r.hours {
		if r.hours[i].Weekday == weekday {
			return &r.hours[i], nil
		}
	}
	return nil, httperr.ErrBusiness("shop_closed")
}

func (r *fakeRepo) GetOrCreateClient(_ context.Context, shopID uint, name, phone, email string) (*models.Client, error) {
	return &models.Client{ID: 42, ShopID: shopID, FirstName: name, Phone: phone, Email: email}, nil
}

func (r *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	ap.ID = r.nextID
	r.nextID++
	r.appointments = append(r.appointments, *ap)
	return nil
}

func (r *fakeRepo) AssertNoTimeConflict(_ context.Context, _ uint, _, _ time.Time) error {
	return r.conflictErr
}

func (r *fakeRepo) GetAppointmentForShop(_ context.Context, appointmentID, shopID uint) (*models.Appointment, error) {
	for i := range r.appointments {
		if r.appointments[i].ID == appointmentID && r.appointments[i].ShopID == shopID {
			return &r.appointments[i], nil
		}
	}
	return nil, httperr.ErrBusiness("appointment_not_found")
}

func (r *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	for i := range r.appointments {
		if r.appointments[i].ID == ap.ID {
			r.appointments[i] = *ap
			return nil
		}
	}
	return httperr.ErrBusiness("appointment_not_found")
}

func (r *fakeRepo) ListAppointmentsForDay(_ context.Context, shopID uint, start, end time.Time) ([]models.Appointment, error) {
	return r.ListAppointmentsForPeriod(context.Background(), shopID, start, end)
}

func (r *fakeRepo) ListAppointmentsForPeriod(_ context.Context, shopID uint, start, end time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.ShopID == shopID && ap.StartTime.Before(end) && ap.EndTime.After(start) {
			out = append(out, ap)
		}
	}
	return out, nil
}

func testDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(audit.New(nil))
}

func futureDate() string {
	return time.Now().AddDate(1, 0, 0).Format("2006-01-02")
}

func TestCreateAppointment(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateAppointment(repo, testDispatcher())

	ap, err := uc.Execute(context.Background(), CreateAppointmentInput{
		ShopID:      1,
		ClientName:  "Maria Silva",
		ClientPhone: "555-0101",
		Date:        futureDate(),
		Time:        "10:00",
		DurationMin: 45,
	})
	require.NoError(t, err)

	assert.Equal(t, uint(1), ap.ID)
	assert.Equal(t, uint(42), ap.ClientID)
	assert.Equal(t, "scheduled", ap.Status)
	assert.Equal(t, 45*time.Minute, ap.EndTime.Sub(ap.StartTime))

	// times are anchored in the shop's timezone
	assert.Equal(t, "America/New_York", ap.StartTime.Location().String())
	assert.Equal(t, 10, ap.StartTime.Hour())
}

func TestCreateAppointmentDefaultDuration(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateAppointment(repo, testDispatcher())

	ap, err := uc.Execute(context.Background(), CreateAppointmentInput{
		ShopID:      1,
		ClientName:  "Maria Silva",
		ClientPhone: "555-0101",
		Date:        futureDate(),
		Time:        "10:00",
	})
	require.NoError(t, err)
	assert.Equal(t, 30*time.Minute, ap.EndTime.Sub(ap.StartTime))
}

func TestCreateAppointmentPastDate(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateAppointment(repo, testDispatcher())

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		ShopID:      1,
		ClientName:  "Maria Silva",
		ClientPhone: "555-0101",
		Date:        "2020-01-15",
		Time:        "10:00",
	})
	assert.True(t, httperr.IsBusiness(err, "past_date"))
}

func TestCreateAppointmentClosedDay(t *testing.T) {
	repo := newFakeRepo()
	for i := range repo.hours {
		repo.hours[i].IsClosed = true
	}
	uc := NewCreateAppointment(repo, testDispatcher())

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		ShopID:      1,
		ClientName:  "Maria Silva",
		ClientPhone: "555-0101",
		Date:        futureDate(),
		Time:        "10:00",
	})
	assert.True(t, httperr.IsBusiness(err, "shop_closed"))
}

func TestCreateAppointmentBadDateInput(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateAppointment(repo, testDispatcher())

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		ShopID:      1,
		ClientName:  "Maria Silva",
		ClientPhone: "555-0101",
		Date:        "06/15/2027",
		Time:        "10:00",
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_date_or_time"))
}

func TestCreateAppointmentTimeConflict(t *testing.T) {
	repo := newFakeRepo()
	repo.conflictErr = httperr.ErrBusiness("time_conflict")
	uc := NewCreateAppointment(repo, testDispatcher())

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		ShopID:      1,
		ClientName:  "Maria Silva",
		ClientPhone: "555-0101",
		Date:        futureDate(),
		Time:        "10:00",
	})
	assert.True(t, httperr.IsBusiness(err, "time_conflict"))
	assert.Empty(t, repo.appointments)
}

func TestCancelAndCompleteTransitions(t *testing.T) {
	repo := newFakeRepo()
	createUC := NewCreateAppointment(repo, testDispatcher())
	cancelUC := NewCancelAppointment(repo, testDispatcher())
	completeUC := NewCompleteAppointment(repo, testDispatcher())

	first, err := createUC.Execute(context.Background(), CreateAppointmentInput{
		ShopID: 1, ClientName: "A", ClientPhone: "1", Date: futureDate(), Time: "09:00",
	})
	require.NoError(t, err)
	second, err := createUC.Execute(context.Background(), CreateAppointmentInput{
		ShopID: 1, ClientName: "B", ClientPhone: "2", Date: futureDate(), Time: "11:00",
	})
	require.NoError(t, err)

	cancelled, err := cancelUC.Execute(context.Background(), 1, 7, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "cancelled", cancelled.Status)
	require.NotNil(t, cancelled.CancelledAt)

	// a cancelled appointment cannot be completed
	_, err = completeUC.Execute(context.Background(), 1, 7, first.ID)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))

	completed, err := completeUC.Execute(context.Background(), 1, 7, second.ID)
	require.NoError(t, err)
	assert.Equal(t, "completed", completed.Status)
	require.NotNil(t, completed.CompletedAt)

	// unknown id maps to not found
	_, err = cancelUC.Execute(context.Background(), 1, 7, 999)
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}
