package appointment

import (
	"context"
	"time"

	"github.com/threadfolio/threadfolio-api/internal/models"
)

type Repository interface {
	// -------- Shop --------
	GetShopByID(
		ctx context.Context,
		id uint,
	) (*models.Shop, error)

	GetShopHoursWeek(
		ctx context.Context,
		shopID uint,
	) ([]models.ShopHours, error)

	GetShopHours(
		ctx context.Context,
		shopID uint,
		weekday int,
	) (*models.ShopHours, error)

	// -------- Client --------
	GetOrCreateClient(
		ctx context.Context,
		shopID uint,
		name string,
		phone string,
		email string,
	) (*models.Client, error)

	// -------- Appointment (create / conflict) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	AssertNoTimeConflict(
		ctx context.Context,
		shopID uint,
		start time.Time,
		end time.Time,
	) error

	// -------- Appointment (state change) --------
	GetAppointmentForShop(
		ctx context.Context,
		appointmentID uint,
		shopID uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Listing --------
	ListAppointmentsForDay(
		ctx context.Context,
		shopID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	ListAppointmentsForPeriod(
		ctx context.Context,
		shopID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)
}
