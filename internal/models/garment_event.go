package models

import "time"

// GarmentEvent is an append-only history entry, e.g. a stage change.
type GarmentEvent struct {
	ID        uint  `gorm:"primaryKey" json:"id"`
	GarmentID uint  `gorm:"index" json:"garment_id"`
	UserID    *uint `json:"user_id"`

	Kind        string `gorm:"size:30;not null" json:"kind"`
	Description string `gorm:"size:255" json:"description"`

	CreatedAt time.Time `json:"created_at"`
}
