package entities

import (
	"github.com/google/uuid"
	"time"
)

type InventoryItem struct {
	ID                  uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID              uuid.UUID `json:"user_id"`
	Name                string    `json:"name"`
	Quantity            string    `json:"quantity"` // free text, e.g. "2 lbs"
	Category            string    `json:"category"` // Produce, Dairy, Meat, Grains, Condiments, Frozen, Beverages, Snacks, Other
	DaysUntilExpiration int       `json:"days_until_expiration"` // negative means already expired
	ExpirationDate      time.Time `json:"expiration_date"`
	Status              string    `json:"status"` // "Fresh", "Good", "Use Soon", "Expiring", "Spoiled"
	EstimatedValue      float64   `json:"estimated_value"` // USD
	AddedManually       bool      `json:"added_manually"`
	ScanRecordID        *string   `json:"scan_record_id,omitempty"`
	AIAnalysis          string    `json:"ai_analysis,omitempty" gorm:"type:text"` // JSON provenance bundle, empty for manual entries

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
