package entities

import (
	"github.com/google/uuid"
)

type Recipe struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	MealType      string    `json:"meal_type,omitempty"` // breakfast, lunch, dinner, snack
	PrepTime      string    `json:"prep_time"`
	CookTime      string    `json:"cook_time"`
	TotalTime     string    `json:"total_time"`
	Servings      int       `json:"servings"`
	Difficulty    string    `json:"difficulty"` // Easy, Medium, Hard, Chef
	Savings       float64   `json:"savings"`
	RescueMode    bool      `json:"rescue_mode"`
	Ingredients   string    `json:"ingredients" gorm:"type:text"`
	Instructions  string    `json:"instructions" gorm:"type:text"`
	Substitutions string    `json:"substitutions,omitempty" gorm:"type:text"`
	Nutrition     string    `json:"nutrition" gorm:"type:text"`
	Cost          string    `json:"cost" gorm:"type:text"`
	Tags          string    `json:"tags,omitempty" gorm:"type:text"`
	TechnicalData string    `json:"technical_data,omitempty" gorm:"type:text"` // model id, tokens, latency, constraints
	IsGenerated   bool      `json:"is_generated"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
