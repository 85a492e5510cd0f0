package subscription

import (
	"time"
)

const (
	StatusActive    = "Active"
	StatusCancelled = "Cancelled"

	FrequencyMonthly   = "Monthly"
	FrequencyQuarterly = "Quarterly"
)

// PrasadSubscription is keyed by the gateway payment id, same as bookings.
// Temple and prasad names are denormalized name keys so deleting a temple
// never orphans a delivery record.
type PrasadSubscription struct {
	ID               string  `gorm:"primaryKey;type:varchar(64)" json:"id"`
	UserID           uint    `gorm:"not null;index" json:"userId"`
	UserEmail        string  `gorm:"not null" json:"userEmail"`
	PrasadNameKey    string  `gorm:"not null" json:"prasadNameKey"`
	TempleNameKey    string  `gorm:"not null" json:"templeNameKey"`
	Frequency        string  `gorm:"type:varchar(20);not null" json:"frequency"`
	NextDeliveryDate string  `gorm:"type:varchar(10);not null" json:"nextDeliveryDate"` // YYYY-MM-DD
	Status           string  `gorm:"type:varchar(20);not null;default:'Active'" json:"status"`
	Price            float64 `gorm:"not null" json:"price"`
	FullName         string  `gorm:"not null" json:"fullName"`
	PhoneNumber      string  `gorm:"type:varchar(15);not null" json:"phoneNumber"`
	Address          string  `gorm:"not null" json:"address"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (PrasadSubscription) TableName() string {
	return "prasad_subscriptions"
}
