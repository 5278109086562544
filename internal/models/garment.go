package models

import "time"

type Garment struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	OrderID uint `gorm:"index" json:"order_id"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Stage string `gorm:"size:30;default:'New'" json:"stage"`

	DueDate   *time.Time `json:"due_date"`
	EventDate *time.Time `json:"event_date"`

	Notes    string `gorm:"size:1000" json:"notes"`
	Icon     string `gorm:"size:50" json:"icon"`
	PhotoKey string `gorm:"size:255" json:"photo_key"`

	Services []ServiceItem  `gorm:"constraint:OnDelete:CASCADE;" json:"services,omitempty"`
	Events   []GarmentEvent `gorm:"constraint:OnDelete:CASCADE;" json:"events,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
