package entities

import (
	"github.com/google/uuid"
	"time"
)

type User struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name       string     `json:"name"`
	Email      string     `gorm:"uniqueIndex" json:"email"`
	Password   string     `json:"-"`
	Role       string     `json:"role"`
	IsVerified bool       `json:"is_verified"`
	IsPro      bool       `json:"is_pro"`
	ProUntil   *time.Time `json:"pro_until,omitempty"`

	Timestamp
}
