package auth

import (
	"time"
)

// User is the platform identity. Role is one of user/admin/temple_manager;
// a temple_manager must always carry an assigned temple id.
type User struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	FullName         string    `gorm:"not null" json:"name"`
	Email            string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash     string    `gorm:"not null" json:"-"`
	Role             string    `gorm:"type:varchar(20);not null;default:'user'" json:"role"`
	AssignedTempleID *uint     `json:"assignedTempleId,omitempty"`
	Mobile           string    `gorm:"type:varchar(15)" json:"mobile,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
