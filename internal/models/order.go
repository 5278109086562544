package models

import "time"

const (
	OrderStatusInProgress = "in_progress"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

type Order struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	ShopID uint `gorm:"index" json:"shop_id"`

	ClientID uint   `json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	OrderNumber string `gorm:"size:30;uniqueIndex" json:"order_number"`
	Status      string `gorm:"size:20;default:'in_progress'" json:"status"`
	Notes       string `gorm:"size:1000" json:"notes"`

	Garments []Garment `gorm:"constraint:OnDelete:CASCADE;" json:"garments,omitempty"`
	Payments []Payment `gorm:"constraint:OnDelete:CASCADE;" json:"payments,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
