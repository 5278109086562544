package dto

import (
	"time"

	"github.com/threadfolio/threadfolio-api/internal/models"
)

type AppointmentListDTO struct {
	ID         uint      `json:"id"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
	Status     string    `json:"status"`
	ClientName string    `json:"client_name"`
	OrderID    *uint     `json:"order_id,omitempty"`
	Notes      string    `json:"notes,omitempty"`
}

func AppointmentList(appointments []models.Appointment) []AppointmentListDTO {
	out := make([]AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, AppointmentListDTO{
			ID:         ap.ID,
			StartTime:  ap.StartTime,
			EndTime:    ap.EndTime,
			Status:     ap.Status,
			ClientName: ap.Client.FullName(),
			OrderID:    ap.OrderID,
			Notes:      ap.Notes,
		})
	}
	return out
}
