package auditlog

import (
	"time"
)

// Audit actions recorded by the payment and admin surfaces.
const (
	ActionOrderCreated          = "PAYMENT_ORDER_CREATED"
	ActionWebhookReceived       = "PAYMENT_WEBHOOK_RECEIVED"
	ActionPaymentUnreconciled   = "PAYMENT_UNRECONCILED"
	ActionBookingCreated        = "BOOKING_CREATED"
	ActionBookingCompleted      = "BOOKING_COMPLETED"
	ActionSubscriptionCreated   = "SUBSCRIPTION_CREATED"
	ActionSubscriptionCancelled = "SUBSCRIPTION_CANCELLED"
	ActionAdminMutation         = "ADMIN_MUTATION"
)

// AuditLog is an append-only record of a sensitive action. Unreconciled
// payment entries are the durable trail for captured payments that never got
// a booking or subscription written.
type AuditLog struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    *uint     `gorm:"index" json:"user_id"` // nullable, e.g. webhook events
	Action    string    `gorm:"size:100;not null;index" json:"action"`
	Details   string    `gorm:"type:jsonb" json:"details"`
	IPAddress string    `gorm:"size:45" json:"ip_address"`
	Status    string    `gorm:"size:20;not null;index" json:"status"` // success/failure
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}

// Filter narrows audit log queries for the admin listing.
type Filter struct {
	UserID *uint
	Action string
	Status string
	Page   int
	Limit  int
}
