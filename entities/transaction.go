package entities

import (
	"github.com/google/uuid"
)

type Transaction struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	OrderID     string    `gorm:"uniqueIndex" json:"order_id"`
	GrossAmount int64     `json:"gross_amount"`
	Plan        string    `json:"plan"`   // "pro_monthly", "pro_yearly"
	Status      string    `json:"status"` // "Pending", "Settled", "Failed"
	SnapToken   string    `json:"snap_token,omitempty"`
	RedirectURL string    `json:"redirect_url,omitempty"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
