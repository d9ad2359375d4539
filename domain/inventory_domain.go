package domain

import (
	"errors"
	"time"
)

// Urgency states derived from days until expiration. Spoiled is part of the
// enumeration but no classification rule currently produces it.
const (
	StatusFresh    = "Fresh"
	StatusGood     = "Good"
	StatusUseSoon  = "Use Soon"
	StatusExpiring = "Expiring"
	StatusSpoiled  = "Spoiled"
)

var (
	MessageSuccessAddItem       = "inventory item added successfully"
	MessageSuccessUpdateItem    = "inventory item updated successfully"
	MessageSuccessDeleteItem    = "inventory item deleted successfully"
	MessageSuccessGetItems      = "inventory items retrieved successfully"
	MessageSuccessSaveScanned   = "scanned items saved successfully"
	MessageSuccessLoadDemo      = "demo inventory loaded successfully"
	MessageSuccessGetDashboard  = "dashboard statistics retrieved successfully"
	MessageSuccessGetImpact     = "impact statistics retrieved successfully"

	MessageFailedAddItem      = "failed to add inventory item"
	MessageFailedUpdateItem   = "failed to update inventory item"
	MessageFailedDeleteItem   = "failed to delete inventory item"
	MessageFailedGetItems     = "failed to retrieve inventory items"
	MessageFailedSaveScanned  = "failed to save scanned items"
	MessageFailedLoadDemo     = "failed to load demo inventory"
	MessageFailedGetDashboard = "failed to retrieve dashboard statistics"
	MessageFailedGetImpact    = "failed to retrieve impact statistics"

	ErrItemNotFound       = errors.New("inventory item not found")
	ErrInvalidQuantity    = errors.New("quantity must not be empty")
	ErrUnauthorizedAccess = errors.New("unauthorized access to inventory item")
)

type (
	// AIAnalysis is the provenance bundle attached to items created from a
	// scan. Informational only; it never feeds back into classification
	// after the initial mapping.
	AIAnalysis struct {
		Confidence       float64  `json:"confidence"` // 0-100
		Reasoning        string   `json:"reasoning"`
		FreshnessCues    []string `json:"freshness_cues"`
		VisualIndicators string   `json:"visual_indicators"`
		OCRText          string   `json:"ocr_text,omitempty"`
		ProcessingTimeMs float64  `json:"processing_time_ms,omitempty"`
	}

	AddItemRequest struct {
		Name                string `json:"name" validate:"required"`
		Quantity            string `json:"quantity" validate:"required"`
		Category            string `json:"category" validate:"omitempty"`
		DaysUntilExpiration int    `json:"days_until_expiration"`
	}

	UpdateItemRequest struct {
		Name                string `json:"name" validate:"omitempty"`
		Quantity            string `json:"quantity" validate:"omitempty"`
		Category            string `json:"category" validate:"omitempty"`
		DaysUntilExpiration *int   `json:"days_until_expiration" validate:"omitempty"`
	}

	InventoryItemResponse struct {
		ID                  string      `json:"id"`
		Name                string      `json:"name"`
		Quantity            string      `json:"quantity"`
		Category            string      `json:"category"`
		DaysUntilExpiration int         `json:"days_until_expiration"`
		ExpirationDate      time.Time   `json:"expiration_date"`
		Status              string      `json:"status"`
		EstimatedValue      float64     `json:"estimated_value"`
		AddedDate           time.Time   `json:"added_date"`
		AIAnalysis          *AIAnalysis `json:"ai_analysis,omitempty"`
	}

	SaveScannedItemsRequest struct {
		ScanID string        `json:"scan_id" validate:"omitempty,uuid"`
		Items  []ScannedItem `json:"items" validate:"required,min=1,dive"`
	}

	DashboardStatsResponse struct {
		TotalItems     int     `json:"total_items"`
		ExpiringItems  int     `json:"expiring_items"` // Expiring + Use Soon
		FreshItems     int     `json:"fresh_items"`
		GoodItems      int     `json:"good_items"`
		ExpiredItems   int     `json:"expired_items"` // negative days remaining
		TotalValue     float64 `json:"total_value"`
		ValueAtRisk    float64 `json:"value_at_risk"`
	}

	ImpactStatsResponse struct {
		MoneySaved     float64 `json:"money_saved"`
		WasteReduction float64 `json:"waste_reduction"` // percentage of items rescued in time
		CO2SavedLbs    float64 `json:"co2_saved_lbs"`
		ItemsTracked   int     `json:"items_tracked"`
	}
)
