package service

import (
	"time"
)

// Icon identifiers the dashboard can render. The set is closed: writes with
// an unknown identifier are rejected instead of falling back at render time.
var AllowedIcons = map[string]bool{
	"Users":          true,
	"Sparkles":       true,
	"Gift":           true,
	"Ticket":         true,
	"Bus":            true,
	"Star":           true,
	"HeartHandshake": true,
	"ShieldCheck":    true,
	"CheckCircle":    true,
	"Construction":   true,
	"Newspaper":      true,
}

// Service is a site offering card (darshan queue, e-puja, prasad delivery).
// Title and description are translation name keys, not display strings.
type Service struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	TitleKey       string `gorm:"not null" json:"titleKey"`
	DescriptionKey string `gorm:"not null" json:"descriptionKey"`
	Icon           string `gorm:"type:varchar(32);not null" json:"icon"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Service) TableName() string {
	return "services"
}
