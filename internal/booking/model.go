package booking

import (
	"time"
)

const (
	StatusConfirmed = "Confirmed"
	StatusCompleted = "Completed"
)

// Booking is keyed by the gateway payment id: the server never generates a
// booking identity of its own. Puja and temple names are denormalized so the
// record stays readable after a temple is edited or deleted.
type Booking struct {
	ID             string  `gorm:"primaryKey;type:varchar(64)" json:"id"`
	UserID         uint    `gorm:"not null;index" json:"userId"`
	UserEmail      string  `gorm:"not null" json:"userEmail"`
	PujaNameKey    string  `gorm:"not null" json:"pujaNameKey"`
	TempleNameKey  string  `gorm:"not null" json:"templeNameKey"`
	Date           string  `gorm:"type:varchar(10);not null" json:"date"` // YYYY-MM-DD
	Status         string  `gorm:"type:varchar(20);not null;default:'Confirmed'" json:"status"`
	Price          float64 `gorm:"not null" json:"price"`
	IsEPuja        bool    `gorm:"default:false" json:"isEPuja"`
	LiveStreamLink string  `json:"liveStreamLink,omitempty"`
	NumDevotees    int     `gorm:"not null;default:1" json:"numDevotees"`
	FullName       string  `gorm:"not null" json:"fullName"`
	PhoneNumber    string  `gorm:"type:varchar(15);not null" json:"phoneNumber"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Booking) TableName() string {
	return "bookings"
}
