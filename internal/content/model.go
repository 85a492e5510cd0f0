package content

import (
	"time"
)

type Testimonial struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Quote    string `gorm:"not null" json:"quote"`
	Author   string `gorm:"not null" json:"author"`
	Location string `json:"location"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Testimonial) TableName() string {
	return "testimonials"
}

// SeasonalEvent is the homepage banner. Exactly one row exists; PUT replaces
// it in place.
type SeasonalEvent struct {
	ID          uint   `gorm:"primaryKey" json:"-"`
	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"not null" json:"description"`
	CTA         string `gorm:"column:cta" json:"cta"`
	ImageURL    string `json:"imageUrl"`

	UpdatedAt time.Time `json:"updated_at"`
}

func (SeasonalEvent) TableName() string {
	return "seasonal_events"
}
