package models

import "time"

const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
)

type Payment struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	ShopID  uint `gorm:"index" json:"shop_id"`
	OrderID uint `gorm:"index" json:"order_id"`

	Type        string `gorm:"size:20;default:'remainder'" json:"type"`
	Method      string `gorm:"size:20;default:'cash'" json:"method"`
	AmountCents int64  `json:"amount_cents"`
	Status      string `gorm:"size:20;default:'completed'" json:"status"`

	// Reference returned by the hosted checkout, empty for in-person payments.
	ExternalReference string `gorm:"size:64" json:"external_reference"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
