package inventory

import (
	"encoding/json"
	"time"

	"fridgesmart/domain"
	"fridgesmart/entities"

	"github.com/google/uuid"
)

type demoSeed struct {
	name     string
	quantity string
	category string
	days     int
	value    float64
	status   string
	analysis domain.AIAnalysis
}

var demoSeeds = []demoSeed{
	{
		name: "Organic Spinach", quantity: "1 bag", category: "Produce",
		days: 1, value: 4.99, status: domain.StatusExpiring,
		analysis: domain.AIAnalysis{
			Confidence:       98,
			Reasoning:        "Visual wilting detected. Best by date matches visual assessment.",
			FreshnessCues:    []string{"Slight wilting", "Condensation in bag"},
			VisualIndicators: "Use Soon",
			OCRText:          "Organic Spinach - Best By 12/16",
			ProcessingTimeMs: 450,
		},
	},
	{
		name: "Greek Yogurt", quantity: "1/2 container", category: "Dairy",
		days: 2, value: 3.50, status: domain.StatusExpiring,
		analysis: domain.AIAnalysis{
			Confidence:       92,
			Reasoning:        "Container opened. OCR detects sell-by date 5 days ago. Safe consumption window narrowing.",
			FreshnessCues:    []string{"Seal broken", "Rim clean"},
			VisualIndicators: "Good",
			OCRText:          "Fage Total 2%",
			ProcessingTimeMs: 450,
		},
	},
	{
		name: "Chicken Breast", quantity: "1 lb", category: "Meat",
		days: 1, value: 8.99, status: domain.StatusExpiring,
		analysis: domain.AIAnalysis{
			Confidence:       99,
			Reasoning:        "High priority item. Color is normal pink, no graying. Use immediately.",
			FreshnessCues:    []string{"Normal color", "Package sealed"},
			VisualIndicators: "Fresh",
			OCRText:          "Use or Freeze By 12/16",
			ProcessingTimeMs: 450,
		},
	},
	{
		name: "Avocados", quantity: "3 count", category: "Produce",
		days: 3, value: 5.00, status: domain.StatusUseSoon,
		analysis: domain.AIAnalysis{
			Confidence:       88,
			Reasoning:        "Darkening skin indicates ripeness. One shows slight bruising.",
			FreshnessCues:    []string{"Dark skin", "Soft texture"},
			VisualIndicators: "Ripe",
			OCRText:          "Mexico #4046",
			ProcessingTimeMs: 450,
		},
	},
	{
		name: "Almond Milk", quantity: "1 carton", category: "Dairy",
		days: 14, value: 4.29, status: domain.StatusGood,
		analysis: domain.AIAnalysis{
			Confidence:       96,
			Reasoning:        "Sealed container, distant expiration date.",
			FreshnessCues:    []string{"Sealed"},
			VisualIndicators: "Fresh",
			OCRText:          "Exp 12/30/24",
			ProcessingTimeMs: 450,
		},
	},
}

// DemoItems builds the simulated inventory used by demo mode. Loading it
// replaces the whole store for the user.
func DemoItems(userID uuid.UUID, now time.Time) []*entities.InventoryItem {
	items := make([]*entities.InventoryItem, 0, len(demoSeeds))
	for _, seed := range demoSeeds {
		analysisJSON, _ := json.Marshal(seed.analysis)
		items = append(items, &entities.InventoryItem{
			ID:                  uuid.New(),
			UserID:              userID,
			Name:                seed.name,
			Quantity:            seed.quantity,
			Category:            seed.category,
			DaysUntilExpiration: seed.days,
			ExpirationDate:      now.AddDate(0, 0, seed.days),
			Status:              seed.status,
			EstimatedValue:      seed.value,
			AIAnalysis:          string(analysisJSON),
			Timestamp: entities.Timestamp{
				CreatedAt: now,
				UpdatedAt: now,
			},
		})
	}
	return items
}
