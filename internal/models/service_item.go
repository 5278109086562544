package models

import "time"

const (
	UnitFlatRate = "flat_rate"
	UnitHour     = "hour"
	UnitDay      = "day"
	UnitItem     = "item"
)

func ValidUnit(u string) bool {
	switch u {
	case UnitFlatRate, UnitHour, UnitDay, UnitItem:
		return true
	}
	return false
}

// ServiceItem is a billable line item attached to a garment. Prices are
// integer cents; LineTotalCents is persisted at write time.
type ServiceItem struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	GarmentID uint `gorm:"index" json:"garment_id"`

	Name           string `gorm:"size:100;not null" json:"name"`
	Quantity       int    `gorm:"default:1" json:"quantity"`
	Unit           string `gorm:"size:20;default:'flat_rate'" json:"unit"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	LineTotalCents int64  `json:"line_total_cents"`

	Removed       bool   `gorm:"default:false" json:"removed"`
	RemovalReason string `gorm:"size:255" json:"removal_reason"`
	Completed     bool   `gorm:"default:false" json:"completed"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
